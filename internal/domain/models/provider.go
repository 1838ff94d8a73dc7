package models

import "github.com/shopspring/decimal"

// Service is a bookable offering of a provider.
type Service struct {
	ID              string          `json:"id"`
	ProviderID      string          `json:"providerId"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
}

type Provider struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Address      string    `json:"address"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	HomeService  bool      `json:"homeService"`
	SalonService bool      `json:"salonService"`
	Specialties  []string  `json:"specialties"`
	Services     []Service `json:"services,omitempty"`
}

// FindService returns the provider's service with id, if any.
func (p Provider) FindService(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ProviderFilter mirrors the search filters panel.
type ProviderFilter struct {
	Service      string
	PriceRange   string
	MinRating    float64
	HomeService  bool
	SalonService bool
}

// ServiceInput is what a provider submits to add or edit a menu entry.
type ServiceInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
}
