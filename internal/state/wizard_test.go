package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonmarket/internal/domain"
)

func strp(s string) *string { return &s }

func locp(l domain.Location) *domain.Location { return &l }

func TestReduceWizard_FullFlow(t *testing.T) {
	s := NewWizard("")
	assert.Equal(t, domain.StepService, s.Step)

	s = ReduceWizard(s, Advance{})
	assert.Equal(t, domain.StepService, s.Step, "guard blocks without a service")

	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{ServiceID: strp("1")}})
	s = ReduceWizard(s, Advance{})
	assert.Equal(t, domain.StepDateTime, s.Step)

	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{Date: strp("2026-10-20"), Time: strp("10:00 AM")}})
	s = ReduceWizard(s, Advance{})
	assert.Equal(t, domain.StepLocation, s.Step)

	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{Location: locp(domain.LocationHome)}})
	assert.False(t, s.CanProceed())
	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{CustomerAddress: strp("12 Elm St")}})
	s = ReduceWizard(s, Advance{})
	assert.Equal(t, domain.StepPayment, s.Step)

	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{PaymentMethod: strp("card")}})
	s = ReduceWizard(s, Advance{})
	assert.Equal(t, domain.StepPayment, s.Step, "never passes the last step")
}

func TestReduceWizard_BackIsUnconditional(t *testing.T) {
	s := WizardState{Step: domain.StepPayment}
	s = ReduceWizard(s, GoBack{})
	s = ReduceWizard(s, GoBack{})
	s = ReduceWizard(s, GoBack{})
	s = ReduceWizard(s, GoBack{})
	assert.Equal(t, domain.StepService, s.Step)
}

func TestReduceWizard_SalonClearsAddress(t *testing.T) {
	s := NewWizard("1")
	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{Location: locp(domain.LocationHome), CustomerAddress: strp("12 Elm St")}})
	assert.Equal(t, "12 Elm St", s.Draft.CustomerAddress)

	s = ReduceWizard(s, UpdateDraft{Patch: DraftPatch{Location: locp(domain.LocationSalon)}})
	assert.Equal(t, "", s.Draft.CustomerAddress)
}
