package state

import (
	"strings"

	"salonmarket/internal/domain"
)

type WizardState struct {
	Step  domain.Step         `json:"step"`
	Draft domain.BookingDraft `json:"draft"`
}

// NewWizard starts at the first step with a salon draft.
func NewWizard(serviceID string) WizardState {
	return WizardState{Step: domain.FirstStep, Draft: domain.NewBookingDraft(serviceID)}
}

// CanProceed reports whether the current step's guard holds.
func (s WizardState) CanProceed() bool {
	return domain.CanProceed(s.Step, s.Draft)
}

// DraftPatch carries the fields a client changed; nil means untouched.
type DraftPatch struct {
	ServiceID       *string          `json:"serviceId"`
	Date            *string          `json:"date"`
	Time            *string          `json:"time"`
	Location        *domain.Location `json:"location"`
	CustomerAddress *string          `json:"customerAddress"`
	Notes           *string          `json:"notes"`
	PaymentMethod   *string          `json:"paymentMethod"`
}

type WizardAction interface{ wizardAction() }

type UpdateDraft struct{ Patch DraftPatch }

// Advance moves forward only when the current guard holds.
type Advance struct{}

// GoBack moves backward unconditionally.
type GoBack struct{}

func (UpdateDraft) wizardAction() {}
func (Advance) wizardAction()     {}
func (GoBack) wizardAction()      {}

// ReduceWizard applies a to s. Passed guards are not re-checked when fields change later.
func ReduceWizard(s WizardState, a WizardAction) WizardState {
	next := s
	switch act := a.(type) {
	case UpdateDraft:
		next.Draft = applyPatch(s.Draft, act.Patch)
	case Advance:
		next.Step = domain.NextStep(s.Step, s.Draft)
	case GoBack:
		next.Step = domain.PrevStep(s.Step)
	}
	return next
}

func applyPatch(d domain.BookingDraft, p DraftPatch) domain.BookingDraft {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&d.ServiceID, p.ServiceID)
	set(&d.Date, p.Date)
	set(&d.Time, p.Time)
	set(&d.Notes, p.Notes)
	set(&d.PaymentMethod, p.PaymentMethod)

	if p.Location != nil {
		d.Location = *p.Location
		// choosing the salon drops any home address
		if *p.Location == domain.LocationSalon && p.CustomerAddress == nil {
			d.CustomerAddress = ""
		}
	}
	set(&d.CustomerAddress, p.CustomerAddress)
	return d
}
