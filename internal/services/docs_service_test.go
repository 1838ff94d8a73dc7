package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

func TestDocsServiceConfirmationAndInvoice(t *testing.T) {
	ctx := context.Background()
	appts := newFakeAppointments()
	a, _ := appts.Create(ctx, models.Appointment{
		CustomerID: 7, ProviderID: "1", ServiceName: "Signature Haircut & Style",
		AppointmentDate: "2026-10-20", StartTime: "10:00 AM", Status: domain.AppointmentPending,
		LocationType: domain.LocationHome, CustomerAddress: "12 Elm St", Notes: "first visit",
		Price: price("85"), TravelFee: price("15"), TotalAmount: price("100"), PaymentMethod: domain.PaymentCard,
	})
	orders := newFakeOrders()
	o, _ := orders.CreateWithItems(ctx, models.Order{
		CustomerID: 7, OrderNumber: "ORD-1A2B3C4D", Status: "pending",
		Subtotal: price("71.98"), TaxAmount: price("5.76"), ShippingAmount: price("0"),
		DiscountAmount: price("5"), TotalAmount: price("72.74"), CouponCode: "FLAT5",
		Items: []models.OrderItem{{ProductID: "1", Name: "Premium Hair Oil", Quantity: 2, Price: price("35.99")}},
	})

	providers := newFakeProviders()
	svc := DocsService{
		Appointments: AppointmentService{Appointments: appts, Providers: providers},
		Orders:       OrderService{Orders: orders},
		Providers:    providers,
		Now:          func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) },
	}

	pdf, filename, err := svc.AppointmentConfirmation(ctx, domain.RequestContext{UserID: 7, Role: domain.RoleCustomer}, a.ID)
	if err != nil {
		t.Fatalf("AppointmentConfirmation returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("AppointmentConfirmation did not return a PDF")
	}
	if filename != "APPOINTMENT_1_2026-10-20.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}

	if _, _, err := svc.AppointmentConfirmation(ctx, domain.RequestContext{UserID: 50, Role: domain.RoleProvider}, a.ID); err != nil {
		t.Fatalf("provider should read the confirmation: %v", err)
	}

	invoice, invName, err := svc.OrderInvoice(ctx, 7, o.ID)
	if err != nil {
		t.Fatalf("OrderInvoice returned error: %v", err)
	}
	if !bytes.HasPrefix(invoice, []byte("%PDF")) || invName != "INVOICE_ORD-1A2B3C4D.pdf" {
		t.Fatalf("OrderInvoice returned %q with %d bytes", invName, len(invoice))
	}
}

func TestDocsServiceHidesOtherCustomersDocuments(t *testing.T) {
	ctx := context.Background()
	appts := newFakeAppointments()
	a, _ := appts.Create(ctx, models.Appointment{CustomerID: 7, ProviderID: "1"})
	orders := newFakeOrders()
	o, _ := orders.CreateWithItems(ctx, models.Order{CustomerID: 7, OrderNumber: "ORD-X"})

	svc := DocsService{
		Appointments: AppointmentService{Appointments: appts, Providers: newFakeProviders()},
		Orders:       OrderService{Orders: orders},
		Providers:    newFakeProviders(),
	}

	if _, _, err := svc.AppointmentConfirmation(ctx, domain.RequestContext{UserID: 8, Role: domain.RoleCustomer}, a.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := svc.OrderInvoice(ctx, 8, o.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"":             "NA",
		" a/b:c ":      "a_b_c",
		"ORD-1234ABCD": "ORD-1234ABCD",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Errorf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
}
