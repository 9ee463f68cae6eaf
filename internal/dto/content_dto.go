package dto

type UpsertContentRequest struct {
	Title   string `json:"title" validate:"omitempty,max=255"`
	Content string `json:"content" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}
