package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Location string

const (
	LocationSalon Location = "salon"
	LocationHome  Location = "home"
)

// HomeTravelFee is added to the service price for home visits.
var HomeTravelFee = decimal.NewFromInt(15)

// Step is a position in the four-step booking wizard.
type Step int

const (
	StepService Step = iota + 1
	StepDateTime
	StepLocation
	StepPayment
)

const (
	FirstStep = StepService
	LastStep  = StepPayment
)

func (s Step) Title() string {
	switch s {
	case StepService:
		return "Select Service"
	case StepDateTime:
		return "Choose Date & Time"
	case StepLocation:
		return "Location"
	case StepPayment:
		return "Payment"
	}
	return ""
}

func (s Step) Valid() bool { return s >= FirstStep && s <= LastStep }

// Payment methods offered at the payment step.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// BookingDraft accumulates the wizard input. It is never an appointment by itself.
type BookingDraft struct {
	ServiceID       string   `json:"serviceId"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        Location `json:"location"`
	CustomerAddress string   `json:"customerAddress,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	PaymentMethod   string   `json:"paymentMethod,omitempty"`
}

// NewBookingDraft starts a draft at the salon, optionally with a preselected service.
func NewBookingDraft(serviceID string) BookingDraft {
	return BookingDraft{
		ServiceID: strings.TrimSpace(serviceID),
		Location:  LocationSalon,
	}
}

// CanProceed reports whether the fields required by step are filled in.
func CanProceed(step Step, d BookingDraft) bool {
	switch step {
	case StepService:
		return d.ServiceID != ""
	case StepDateTime:
		return d.Date != "" && d.Time != ""
	case StepLocation:
		return d.Location == LocationSalon ||
			(d.Location == LocationHome && d.CustomerAddress != "")
	case StepPayment:
		return d.PaymentMethod != ""
	}
	return false
}

// NextStep advances one step when the current guard holds. It never passes LastStep.
func NextStep(step Step, d BookingDraft) Step {
	if step < LastStep && CanProceed(step, d) {
		return step + 1
	}
	return step
}

// PrevStep goes back one step without checking anything. It never goes below FirstStep.
func PrevStep(step Step) Step {
	if step > FirstStep {
		return step - 1
	}
	return FirstStep
}

// ValidateDraft checks every step guard and returns the first failing field.
func ValidateDraft(d BookingDraft) error {
	if !CanProceed(StepService, d) {
		return ValidationError{Field: "serviceId", Msg: "select a service"}
	}
	if d.Date == "" {
		return ValidationError{Field: "date", Msg: "select a date"}
	}
	if d.Time == "" {
		return ValidationError{Field: "time", Msg: "select a time"}
	}
	if !CanProceed(StepLocation, d) {
		if d.Location == LocationHome {
			return ValidationError{Field: "customerAddress", Msg: "address required for home service"}
		}
		return ValidationError{Field: "location", Msg: "choose salon or home"}
	}
	if !CanProceed(StepPayment, d) {
		return ValidationError{Field: "paymentMethod", Msg: "select a payment method"}
	}
	if d.PaymentMethod != PaymentCard && d.PaymentMethod != PaymentCash {
		return ValidationError{Field: "paymentMethod", Msg: "unsupported payment method"}
	}
	return nil
}

// TravelFeeFor returns the extra charge for the chosen location.
func TravelFeeFor(loc Location) decimal.Decimal {
	if loc == LocationHome {
		return HomeTravelFee
	}
	return decimal.Zero
}

// LocationLabel is the human label of a location.
func LocationLabel(loc Location) string {
	switch loc {
	case LocationSalon:
		return "At Salon/Studio"
	case LocationHome:
		return "Mobile Service"
	}
	return "Not selected"
}

// FormatDuration renders minutes as "1h 30m", "2h" or "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}
