package reports

import "math"

// Normalize clamps paging inputs to their effective values: pages are
// 1-based and limits outside 1..100 fall back to 20. Callers echo the
// result so the payload always reflects the slicing actually applied.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// Page slices rows after the full-set sort has been applied. Out-of-range
// pages yield an empty slice, never an error.
func Page[T any](rows []T, page, limit int) (pageRows []T, totalRecords int64, totalPages int) {
	page, limit = Normalize(page, limit)

	totalRecords = int64(len(rows))
	totalPages = int(math.Ceil(float64(totalRecords) / float64(limit)))

	start := (page - 1) * limit
	if start >= len(rows) {
		return []T{}, totalRecords, totalPages
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalRecords, totalPages
}
