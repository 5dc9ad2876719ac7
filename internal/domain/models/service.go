package models

// Service is a purchasable catalog entry. Only price is mutable, and only
// by an admin; bookings copy the price at creation and never re-read it.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	RegionType  string  `json:"type,omitempty"`
	Category    string  `json:"category"`
	IconName    string  `json:"iconName,omitempty"`
}

const (
	CategoryVehicle        = "Vehicle"
	CategoryDrivingLicence = "Driving Licence"
)
