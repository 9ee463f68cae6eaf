package dto

type CreateExchangeRequest struct {
	GiverID     string  `json:"giver_id" validate:"required,uuid"`
	ReceiverID  string  `json:"receiver_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
	ExchangedAt string  `json:"exchanged_at" validate:"omitempty,datetime=2006-01-02"`
}

type CreateReferenceRequest struct {
	GiverID    string `json:"giver_id" validate:"required,uuid"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
	PassedAt   string `json:"passed_at" validate:"omitempty,datetime=2006-01-02"`
}

type CreatePersonalMeetingRequest struct {
	MemberID     string `json:"member_id" validate:"required,uuid"`
	WithMemberID string `json:"with_member_id" validate:"required,uuid"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
	MetAt        string `json:"met_at" validate:"omitempty,datetime=2006-01-02"`
}
