package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"salonmarket/internal/cache"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/state"
	"salonmarket/internal/utils"
)

// WizardView is what clients see of a wizard session.
type WizardView struct {
	SessionID  string              `json:"sessionId"`
	ProviderID string              `json:"providerId"`
	Step       domain.Step         `json:"step"`
	StepTitle  string              `json:"stepTitle"`
	CanProceed bool                `json:"canProceed"`
	Draft      domain.BookingDraft `json:"draft"`
}

func newWizardView(ws cache.WizardSession) WizardView {
	return WizardView{
		SessionID:  ws.ID,
		ProviderID: ws.ProviderID,
		Step:       ws.Wizard.Step,
		StepTitle:  ws.Wizard.Step.Title(),
		CanProceed: ws.Wizard.CanProceed(),
		Draft:      ws.Wizard.Draft,
	}
}

// BookingSummary is the read-only review shown before confirming.
type BookingSummary struct {
	ProviderID      string          `json:"providerId"`
	BusinessName    string          `json:"businessName"`
	ServiceID       string          `json:"serviceId,omitempty"`
	ServiceName     string          `json:"serviceName,omitempty"`
	Category        string          `json:"category,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Duration        string          `json:"duration,omitempty"`
	Date            string          `json:"date,omitempty"`
	DateLabel       string          `json:"dateLabel,omitempty"`
	Time            string          `json:"time,omitempty"`
	Location        domain.Location `json:"location"`
	LocationLabel   string          `json:"locationLabel"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TravelFee       decimal.Decimal `json:"travelFee"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
}

// BuildSummary derives the summary from a draft. Fields the draft lacks stay empty.
func BuildSummary(p models.Provider, d domain.BookingDraft) BookingSummary {
	sum := BookingSummary{
		ProviderID:      p.ID,
		BusinessName:    p.BusinessName,
		Price:           decimal.Zero,
		Date:            d.Date,
		Time:            d.Time,
		Location:        d.Location,
		LocationLabel:   domain.LocationLabel(d.Location),
		CustomerAddress: d.CustomerAddress,
		Notes:           d.Notes,
		TravelFee:       domain.TravelFeeFor(d.Location),
		PaymentMethod:   d.PaymentMethod,
	}
	if d.Date != "" {
		sum.DateLabel = utils.FormatLongDate(d.Date)
	}
	if svc, ok := p.FindService(d.ServiceID); ok {
		sum.ServiceID = svc.ID
		sum.ServiceName = svc.Name
		sum.Category = svc.Category
		sum.Price = svc.Price
		sum.Duration = domain.FormatDuration(svc.DurationMinutes)
	}
	sum.Total = sum.Price.Add(sum.TravelFee)
	return sum
}

// BookingService drives the booking wizard and turns confirmed drafts into appointments.
type BookingService struct {
	Drafts       DraftStore
	Providers    ProviderStore
	Appointments AppointmentStore
	RequestID    string
	Now          func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start opens a wizard session for a provider, optionally with a preselected service.
func (s BookingService) Start(ctx context.Context, userID int64, providerID, serviceID string) (WizardView, error) {
	p, err := s.Providers.GetByID(ctx, strings.TrimSpace(providerID))
	if err != nil {
		return WizardView{}, err
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID != "" {
		if _, ok := p.FindService(serviceID); !ok {
			return WizardView{}, domain.ValidationError{Field: "serviceId", Msg: "provider does not offer this service"}
		}
	}

	ws := cache.WizardSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		ProviderID: p.ID,
		Wizard:     state.NewWizard(serviceID),
	}
	if err := s.Drafts.Save(ctx, ws); err != nil {
		return WizardView{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "wizard_start", fmt.Sprintf("user_id=%d provider_id=%s", userID, p.ID))
	return newWizardView(ws), nil
}

// load returns the session only to its owner.
func (s BookingService) load(ctx context.Context, userID int64, sessionID string) (cache.WizardSession, error) {
	ws, err := s.Drafts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return cache.WizardSession{}, domain.NotFoundError{Resource: "booking session", Err: err}
		}
		return cache.WizardSession{}, err
	}
	if ws.UserID != userID {
		return cache.WizardSession{}, domain.NotFoundError{Resource: "booking session"}
	}
	return ws, nil
}

func (s BookingService) reduce(ctx context.Context, userID int64, sessionID string, action state.WizardAction) (WizardView, error) {
	ws, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	ws.Wizard = state.ReduceWizard(ws.Wizard, action)
	if err := s.Drafts.Save(ctx, ws); err != nil {
		return WizardView{}, err
	}
	return newWizardView(ws), nil
}

func (s BookingService) Get(ctx context.Context, userID int64, sessionID string) (WizardView, error) {
	ws, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	return newWizardView(ws), nil
}

// Update merges a partial draft. It checks field formats but not step guards.
func (s BookingService) Update(ctx context.Context, userID int64, sessionID string, patch state.DraftPatch) (WizardView, error) {
	ws, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return WizardView{}, err
	}
	if err := s.checkPatch(ctx, ws.ProviderID, patch); err != nil {
		return WizardView{}, err
	}
	ws.Wizard = state.ReduceWizard(ws.Wizard, state.UpdateDraft{Patch: patch})
	if err := s.Drafts.Save(ctx, ws); err != nil {
		return WizardView{}, err
	}
	return newWizardView(ws), nil
}

func (s BookingService) checkPatch(ctx context.Context, providerID string, patch state.DraftPatch) error {
	if patch.ServiceID != nil && strings.TrimSpace(*patch.ServiceID) != "" {
		p, err := s.Providers.GetByID(ctx, providerID)
		if err != nil {
			return err
		}
		if _, ok := p.FindService(strings.TrimSpace(*patch.ServiceID)); !ok {
			return domain.ValidationError{Field: "serviceId", Msg: "provider does not offer this service"}
		}
	}
	if patch.Date != nil && strings.TrimSpace(*patch.Date) != "" {
		if _, err := utils.ParseDate(*patch.Date); err != nil {
			return domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
		}
	}
	if patch.Time != nil && strings.TrimSpace(*patch.Time) != "" && !slices.Contains(domain.DailySlots, strings.TrimSpace(*patch.Time)) {
		return domain.ValidationError{Field: "time", Msg: "not a bookable slot"}
	}
	if patch.Location != nil && *patch.Location != domain.LocationSalon && *patch.Location != domain.LocationHome {
		return domain.ValidationError{Field: "location", Msg: "must be salon or home"}
	}
	return nil
}

// checkSlot requires the drafted date and time to still be an open slot at now.
func checkSlot(d domain.BookingDraft, now time.Time) error {
	day, err := utils.ParseDate(d.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	slots := domain.AvailableSlots(day, now)
	if len(slots) == 0 {
		return domain.ValidationError{Field: "date", Msg: "no availability on this date"}
	}
	if !slices.Contains(slots, d.Time) {
		return domain.ValidationError{Field: "time", Msg: "slot not available"}
	}
	return nil
}

func (s BookingService) Next(ctx context.Context, userID int64, sessionID string) (WizardView, error) {
	return s.reduce(ctx, userID, sessionID, state.Advance{})
}

func (s BookingService) Prev(ctx context.Context, userID int64, sessionID string) (WizardView, error) {
	return s.reduce(ctx, userID, sessionID, state.GoBack{})
}

func (s BookingService) Summary(ctx context.Context, userID int64, sessionID string) (BookingSummary, error) {
	ws, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return BookingSummary{}, err
	}
	p, err := s.Providers.GetByID(ctx, ws.ProviderID)
	if err != nil {
		return BookingSummary{}, err
	}
	return BuildSummary(p, ws.Wizard.Draft), nil
}

// Confirm validates the whole draft, stores a pending appointment and discards the draft.
func (s BookingService) Confirm(ctx context.Context, userID int64, sessionID string) (models.Appointment, error) {
	ws, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return models.Appointment{}, err
	}
	d := ws.Wizard.Draft
	if err := domain.ValidateDraft(d); err != nil {
		return models.Appointment{}, err
	}
	if err := checkSlot(d, s.now()); err != nil {
		return models.Appointment{}, err
	}
	p, err := s.Providers.GetByID(ctx, ws.ProviderID)
	if err != nil {
		return models.Appointment{}, err
	}
	sum := BuildSummary(p, d)
	if sum.ServiceID == "" {
		return models.Appointment{}, domain.ValidationError{Field: "serviceId", Msg: "provider does not offer this service"}
	}

	appt, err := s.Appointments.Create(ctx, models.Appointment{
		CustomerID:      userID,
		ProviderID:      p.ID,
		ServiceID:       sum.ServiceID,
		ServiceName:     sum.ServiceName,
		AppointmentDate: d.Date,
		StartTime:       d.Time,
		Status:          domain.AppointmentPending,
		LocationType:    d.Location,
		CustomerAddress: d.CustomerAddress,
		Notes:           d.Notes,
		Price:           sum.Price,
		TravelFee:       sum.TravelFee,
		TotalAmount:     sum.Total,
		PaymentMethod:   d.PaymentMethod,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		return models.Appointment{}, err
	}
	if err := s.Drafts.Delete(ctx, ws.ID); err != nil {
		utils.LogWarn(s.RequestID, "booking", "confirm", "appointment stored but draft not discarded", err)
	}
	utils.LogEvent(s.RequestID, "booking", "confirm", fmt.Sprintf("appointment_id=%d user_id=%d provider_id=%s", appt.ID, userID, p.ID))
	return appt, nil
}
