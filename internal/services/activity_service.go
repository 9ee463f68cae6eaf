package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var ErrMemberRefInvalid = errors.New("referenced member does not exist")

// ActivityService covers the member activity metrics: business exchanges,
// reference passes and one-to-one meetings, plus the dashboard totals.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) CreateExchange(req *dto.CreateExchangeRequest) (*models.BusinessExchange, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	giverID, receiverID, err := s.memberPair(req.GiverID, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	exchange := models.BusinessExchange{
		ID:          uuid.New(),
		GiverID:     giverID,
		ReceiverID:  receiverID,
		Amount:      req.Amount,
		Notes:       req.Notes,
		ExchangedAt: parseDayOrNow(req.ExchangedAt),
	}
	if err := s.db.Create(&exchange).Error; err != nil {
		return nil, fmt.Errorf("failed to create exchange: %w", err)
	}
	return &exchange, nil
}

func (s *ActivityService) ListExchanges() ([]models.BusinessExchange, error) {
	var exchanges []models.BusinessExchange
	if err := s.db.Order("exchanged_at DESC").Find(&exchanges).Error; err != nil {
		return nil, err
	}
	return exchanges, nil
}

// TotalRevenue sums all exchanged business value.
func (s *ActivityService) TotalRevenue() (float64, error) {
	var total float64
	err := s.db.Model(&models.BusinessExchange{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (s *ActivityService) CreateReference(req *dto.CreateReferenceRequest) (*models.ReferencePass, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	giverID, receiverID, err := s.memberPair(req.GiverID, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	ref := models.ReferencePass{
		ID:         uuid.New(),
		GiverID:    giverID,
		ReceiverID: receiverID,
		Notes:      req.Notes,
		PassedAt:   parseDayOrNow(req.PassedAt),
	}
	if err := s.db.Create(&ref).Error; err != nil {
		return nil, fmt.Errorf("failed to create reference pass: %w", err)
	}
	return &ref, nil
}

func (s *ActivityService) ListReferences() ([]models.ReferencePass, error) {
	var refs []models.ReferencePass
	if err := s.db.Order("passed_at DESC").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (s *ActivityService) TotalPasses() (int64, error) {
	var total int64
	err := s.db.Model(&models.ReferencePass{}).Count(&total).Error
	return total, err
}

func (s *ActivityService) CreatePersonalMeeting(req *dto.CreatePersonalMeetingRequest) (*models.PersonalMeeting, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	memberID, withMemberID, err := s.memberPair(req.MemberID, req.WithMemberID)
	if err != nil {
		return nil, err
	}
	if memberID == withMemberID {
		return nil, dto.NewValidationError("a one-to-one needs two distinct members")
	}

	meeting := models.PersonalMeeting{
		ID:           uuid.New(),
		MemberID:     memberID,
		WithMemberID: withMemberID,
		Notes:        req.Notes,
		MetAt:        parseDayOrNow(req.MetAt),
	}
	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, fmt.Errorf("failed to create personal meeting: %w", err)
	}
	return &meeting, nil
}

func (s *ActivityService) ListPersonalMeetings() ([]models.PersonalMeeting, error) {
	var meetings []models.PersonalMeeting
	if err := s.db.Order("met_at DESC").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *ActivityService) TotalPersonalMeetings() (int64, error) {
	var total int64
	err := s.db.Model(&models.PersonalMeeting{}).Count(&total).Error
	return total, err
}

func (s *ActivityService) memberPair(a, b string) (uuid.UUID, uuid.UUID, error) {
	aID, err := uuid.Parse(a)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrMemberRefInvalid
	}
	bID, err := uuid.Parse(b)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrMemberRefInvalid
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id IN ?", []uuid.UUID{aID, bID}).Count(&count).Error; err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	want := int64(2)
	if aID == bID {
		want = 1
	}
	if count < want {
		return uuid.Nil, uuid.Nil, ErrMemberRefInvalid
	}
	return aID, bID, nil
}

func parseDayOrNow(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Now()
	}
	return t
}
