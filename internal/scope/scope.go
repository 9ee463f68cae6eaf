package scope

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCity filters rows by city_id. A nil id applies no restriction.
func ByCity(cityID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cityID == nil {
			return db
		}
		return db.Where("city_id = ?", *cityID)
	}
}

// ByChapter filters rows by chapter_id. A nil id applies no restriction.
func ByChapter(chapterID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if chapterID == nil {
			return db
		}
		return db.Where("chapter_id = ?", *chapterID)
	}
}

// InRange restricts column to [start, end).
func InRange(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?", start, end)
	}
}

// Paginate applies sanitized limit/offset paging.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset((page - 1) * limit)
	}
}
