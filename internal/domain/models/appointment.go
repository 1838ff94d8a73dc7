package models

import (
	"time"

	"github.com/shopspring/decimal"

	"salonmarket/internal/domain"
)

type Appointment struct {
	ID              int64                    `json:"id"`
	CustomerID      int64                    `json:"customerId"`
	ProviderID      string                   `json:"providerId"`
	ServiceID       string                   `json:"serviceId"`
	ServiceName     string                   `json:"serviceName"`
	AppointmentDate string                   `json:"appointmentDate"`
	StartTime       string                   `json:"startTime"`
	Status          domain.AppointmentStatus `json:"status"`
	LocationType    domain.Location          `json:"locationType"`
	CustomerAddress string                   `json:"customerAddress,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	Price           decimal.Decimal          `json:"price"`
	TravelFee       decimal.Decimal          `json:"travelFee"`
	TotalAmount     decimal.Decimal          `json:"totalAmount"`
	PaymentMethod   string                   `json:"paymentMethod"`
	CreatedAt       time.Time                `json:"createdAt"`
}
