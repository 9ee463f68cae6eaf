package dto

// AddressPayload mirrors the Address block; pincode and coordinates are
// optional at the schema level, pincodes validated as 6 digits when present.
type AddressPayload struct {
	Address   string  `json:"address" validate:"omitempty,max=500"`
	City      string  `json:"city" validate:"omitempty,max=100"`
	District  string  `json:"district" validate:"omitempty,max=100"`
	Pincode   string  `json:"pincode" validate:"omitempty,len=6,numeric"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateBusinessRequest is the onboarding step 8 submission. Media fields may
// carry data URIs; the service uploads them and persists the resulting URLs.
type CreateBusinessRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	CityID      string `json:"city_id" validate:"required,uuid"`
	ChapterID   string `json:"chapter_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,max=255"`
	Tagline     string `json:"tagline" validate:"omitempty,max=255"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"omitempty,email"`
	Mobile      string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Website     string `json:"website" validate:"omitempty,max=255"`

	Hometown  AddressPayload `json:"hometown"`
	Residence AddressPayload `json:"residence"`
	Office    AddressPayload `json:"office"`

	ProfilePicture string   `json:"profile_picture"`
	Logo           string   `json:"logo"`
	CardFront      string   `json:"card_front"`
	CardBack       string   `json:"card_back"`
	Portfolio      []string `json:"portfolio"`

	// Comma-joined offerings, split into BusinessService rows server-side.
	Services string `json:"services"`
}

type UpdateBusinessRequest struct {
	CityID      *string `json:"city_id" validate:"omitempty,uuid"`
	ChapterID   *string `json:"chapter_id" validate:"omitempty,uuid"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Tagline     *string `json:"tagline" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Mobile      *string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Website     *string `json:"website" validate:"omitempty,max=255"`

	Hometown  *AddressPayload `json:"hometown"`
	Residence *AddressPayload `json:"residence"`
	Office    *AddressPayload `json:"office"`

	ProfilePicture *string `json:"profile_picture"`
	Logo           *string `json:"logo"`
	CardFront      *string `json:"card_front"`
	CardBack       *string `json:"card_back"`
}

type CreateBusinessServiceRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=255"`
}

type UpdateBusinessServiceRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}
