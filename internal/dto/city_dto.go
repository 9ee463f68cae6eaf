package dto

type CreateCityRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCityRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateChapterRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	CityID string `json:"city_id" validate:"required,uuid"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateChapterRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	CityID *string `json:"city_id" validate:"omitempty,uuid"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}
