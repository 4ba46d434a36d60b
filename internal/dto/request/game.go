package request

// GameRequest is the full catalog payload, used for both create and
// update. Payment allow-list membership is checked against the closed
// enumerations in the service, not by tag.
type GameRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description"`
	Platforms      []string `json:"platforms" validate:"required,min=1,dive,required"`
	Categories     []string `json:"categories" validate:"dive,required"`
	Price          float64  `json:"price" validate:"gte=0"`
	ImageURL       string   `json:"image_url"`
	IsActive       *bool    `json:"is_active,omitempty"`
	PaymentMethods []string `json:"payment_methods" validate:"required,min=1,dive,required"`
	PaymentModes   []string `json:"payment_modes" validate:"required,min=1,dive,required"`
}

type GameQuery struct {
	Text     string
	Platform string
}
