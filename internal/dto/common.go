package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TotalResponse is the shape of the dashboard scalar endpoints
// (total-members, total-revenue, total-passes, total-meetings).
type TotalResponse struct {
	Success bool    `json:"success"`
	Total   float64 `json:"total"`
}

// UploadRequest carries a base64 data URI plus an optional destination folder.
type UploadRequest struct {
	File   string `json:"file" validate:"required"`
	Folder string `json:"folder"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
