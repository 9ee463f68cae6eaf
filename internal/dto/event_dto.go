package dto

type EventLocationPayload struct {
	Venue     string  `json:"venue" validate:"omitempty,max=255"`
	Address   string  `json:"address" validate:"omitempty,max=500"`
	City      string  `json:"city" validate:"omitempty,max=100"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateEventRequest struct {
	Title       string               `json:"title" validate:"required,max=255"`
	Subtitle    string               `json:"subtitle" validate:"omitempty,max=255"`
	Description string               `json:"description"`
	StartAt     string               `json:"start_at" validate:"required"`
	EndAt       string               `json:"end_at" validate:"required"`
	Location    EventLocationPayload `json:"location"`
}

type UpdateEventRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=255"`
	Subtitle    *string               `json:"subtitle" validate:"omitempty,max=255"`
	Description *string               `json:"description"`
	StartAt     *string               `json:"start_at"`
	EndAt       *string               `json:"end_at"`
	Location    *EventLocationPayload `json:"location"`
}
