package services

import (
	"context"
	"fmt"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

type AppointmentService struct {
	Appointments AppointmentStore
	Providers    ProviderStore
	RequestID    string
}

// providerFor finds the listing owned by a provider/salon account.
func (s AppointmentService) providerFor(ctx context.Context, rc domain.RequestContext) (models.Provider, error) {
	p, err := s.Providers.GetByUserID(ctx, int64(rc.UserID))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Provider{}, domain.ForbiddenError{Msg: "no provider listing for this account"}
		}
		return models.Provider{}, err
	}
	return p, nil
}

// List returns the caller's appointments: as a customer, or as the provider receiving them.
func (s AppointmentService) List(ctx context.Context, rc domain.RequestContext) ([]models.Appointment, error) {
	if rc.Role.OffersServices() {
		p, err := s.providerFor(ctx, rc)
		if err != nil {
			return nil, err
		}
		return s.Appointments.ListByProvider(ctx, p.ID)
	}
	return s.Appointments.ListByCustomer(ctx, int64(rc.UserID))
}

// GetForOwner loads an appointment visible to its customer or its provider.
func (s AppointmentService) GetForOwner(ctx context.Context, rc domain.RequestContext, id int64) (models.Appointment, error) {
	a, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}
	if a.CustomerID == int64(rc.UserID) {
		return a, nil
	}
	if rc.Role.OffersServices() {
		if p, err := s.providerFor(ctx, rc); err == nil && p.ID == a.ProviderID {
			return a, nil
		}
	}
	return models.Appointment{}, domain.NotFoundError{Resource: "appointment"}
}

// UpdateStatus lets the receiving provider move an appointment along its lifecycle.
func (s AppointmentService) UpdateStatus(ctx context.Context, rc domain.RequestContext, id int64, status string) (models.Appointment, error) {
	to, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		return models.Appointment{}, err
	}
	if !rc.Role.OffersServices() {
		return models.Appointment{}, domain.ForbiddenError{Msg: "only providers can change appointment status"}
	}
	p, err := s.providerFor(ctx, rc)
	if err != nil {
		return models.Appointment{}, err
	}
	a, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}
	if a.ProviderID != p.ID {
		return models.Appointment{}, domain.NotFoundError{Resource: "appointment"}
	}
	if !domain.CanTransition(a.Status, to) {
		return models.Appointment{}, domain.ConflictError{
			Resource: "appointment",
			Msg:      fmt.Sprintf("cannot move from %s to %s", a.Status, to),
		}
	}
	if err := s.Appointments.UpdateStatus(ctx, id, a.Status, to); err != nil {
		return models.Appointment{}, err
	}
	utils.LogEvent(s.RequestID, "appointments", "update_status", fmt.Sprintf("appointment_id=%d %s->%s", id, a.Status, to))
	a.Status = to
	return a, nil
}
