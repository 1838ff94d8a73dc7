package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

// DocsService renders appointment confirmations and order invoices as PDF.
type DocsService struct {
	Appointments AppointmentService
	Orders       OrderService
	Providers    ProviderStore
	RequestID    string
	Now          func() time.Time
}

type confirmationDocData struct {
	Appointment  models.Appointment
	BusinessName string
	Address      string
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AppointmentConfirmation is available to the appointment's customer and provider.
func (s DocsService) AppointmentConfirmation(ctx context.Context, rc domain.RequestContext, id int64) ([]byte, string, error) {
	a, err := s.Appointments.GetForOwner(ctx, rc, id)
	if err != nil {
		return nil, "", err
	}
	data := confirmationDocData{Appointment: a}
	if p, err := s.Providers.GetByID(ctx, a.ProviderID); err == nil {
		data.BusinessName = p.BusinessName
		data.Address = p.Address
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("appointment_id=%d", id))
	return buildConfirmationPDF(data, s.now())
}

// OrderInvoice is available to the ordering customer only.
func (s DocsService) OrderInvoice(ctx context.Context, userID, id int64) ([]byte, string, error) {
	o, err := s.Orders.GetForOwner(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("order_id=%d", id))
	return buildInvoicePDF(o, s.now())
}

func buildConfirmationPDF(d confirmationDocData, issued time.Time) ([]byte, string, error) {
	a := d.Appointment
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Appointment Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "APPOINTMENT CONFIRMATION")
	pdf.Ln(12)

	location := domain.LocationLabel(a.LocationType)
	if a.LocationType == domain.LocationHome {
		location += " - " + safe(a.CustomerAddress, "-")
	} else if d.Address != "" {
		location += " - " + d.Address
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference   : APT-%06d", a.ID),
		fmt.Sprintf("Provider    : %s", safe(d.BusinessName, a.ProviderID)),
		fmt.Sprintf("Service     : %s", safe(a.ServiceName, "-")),
		fmt.Sprintf("Date        : %s", safe(utils.FormatLongDate(a.AppointmentDate), "-")),
		fmt.Sprintf("Time        : %s", safe(a.StartTime, "-")),
		fmt.Sprintf("Location    : %s", location),
		fmt.Sprintf("Payment     : %s", safe(paymentLabel(a.PaymentMethod), "-")),
		fmt.Sprintf("Status      : %s", a.Status),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, "Service price : "+utils.FormatUSD(a.Price))
	pdf.Ln(7)
	if a.TravelFee.IsPositive() {
		pdf.Cell(0, 7, "Travel fee    : "+utils.FormatUSD(a.TravelFee))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total         : "+utils.FormatUSD(a.TotalAmount))
	pdf.Ln(12)

	if strings.TrimSpace(a.Notes) != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "Notes: "+a.Notes, "", "", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Issued "+issued.Format("2006-01-02 15:04")+". Please arrive 5 minutes early or be ready at the given address.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("APPOINTMENT_%d_%s.pdf", a.ID, safeFilenamePart(a.AppointmentDate))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(o models.Order, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Order No   : "+o.OrderNumber)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Order date : "+o.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+issued.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, it := range o.Items {
		name := it.Name
		if it.Variant != "" {
			name += " (" + it.Variant + ")"
		}
		lineTotal := it.Price.Mul(decimalFromInt(it.Quantity))
		pdf.MultiCell(0, 6, fmt.Sprintf("%d) %s  x%d @ %s = %s", i+1, name, it.Quantity, utils.FormatUSD(it.Price), utils.FormatUSD(lineTotal)), "", "", false)
	}
	pdf.Ln(4)

	pdf.Cell(0, 6, "Subtotal : "+utils.FormatUSD(o.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Shipping : "+shippingLabel(o))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Tax      : "+utils.FormatUSD(o.TaxAmount))
	pdf.Ln(6)
	if o.DiscountAmount.IsPositive() {
		pdf.Cell(0, 6, fmt.Sprintf("Discount : -%s (%s)", utils.FormatUSD(o.DiscountAmount), safe(o.CouponCode, "coupon")))
		pdf.Ln(6)
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatUSD(o.TotalAmount))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(o.OrderNumber))
	return buf.Bytes(), filename, nil
}

func shippingLabel(o models.Order) string {
	if o.ShippingAmount.IsZero() {
		return "FREE"
	}
	return utils.FormatUSD(o.ShippingAmount)
}

func paymentLabel(method string) string {
	switch method {
	case domain.PaymentCard:
		return "Credit/Debit Card"
	case domain.PaymentCash:
		return "Cash (pay at appointment)"
	}
	return method
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
