package repositories

import (
	"context"
	"database/sql"
	"time"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

type AppointmentRepo struct {
	DB *sql.DB
}

const appointmentColumns = `id, customer_id, provider_id, service_id, service_name, appointment_date, start_time, status,
	location_type, customer_address, notes, price, travel_fee, total_amount, payment_method, created_at`

func scanAppointment(row interface{ Scan(...any) error }) (models.Appointment, error) {
	var a models.Appointment
	var date time.Time
	var status, location string
	var address, notes sql.NullString
	if err := row.Scan(&a.ID, &a.CustomerID, &a.ProviderID, &a.ServiceID, &a.ServiceName, &date, &a.StartTime, &status,
		&location, &address, &notes, &a.Price, &a.TravelFee, &a.TotalAmount, &a.PaymentMethod, &a.CreatedAt); err != nil {
		return models.Appointment{}, err
	}
	a.AppointmentDate = date.Format("2006-01-02")
	a.Status = domain.AppointmentStatus(status)
	a.LocationType = domain.Location(location)
	a.CustomerAddress = intdb.StringOrEmpty(address)
	a.Notes = intdb.StringOrEmpty(notes)
	return a, nil
}

// Create inserts a new appointment and returns it with its id.
func (r AppointmentRepo) Create(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Appointment{}, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO appointments
			(customer_id, provider_id, service_id, service_name, appointment_date, start_time, status,
			 location_type, customer_address, notes, price, travel_fee, total_amount, payment_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.CustomerID, a.ProviderID, a.ServiceID, a.ServiceName, a.AppointmentDate, a.StartTime, string(a.Status),
		string(a.LocationType), intdb.NullIfEmpty(a.CustomerAddress), intdb.NullIfEmpty(a.Notes),
		a.Price, a.TravelFee, a.TotalAmount, a.PaymentMethod,
	)
	if err != nil {
		return models.Appointment{}, err
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return models.Appointment{}, err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return a, nil
}

func (r AppointmentRepo) GetByID(ctx context.Context, id int64) (models.Appointment, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Appointment{}, err
	}
	a, err := scanAppointment(db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Appointment{}, notFound("appointment", err)
	}
	return a, nil
}

func (r AppointmentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Appointment, error) {
	return r.list(ctx, `WHERE customer_id = ?`, customerID)
}

func (r AppointmentRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return r.list(ctx, `WHERE provider_id = ?`, providerID)
}

func (r AppointmentRepo) list(ctx context.Context, where string, arg any) ([]models.Appointment, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+appointmentColumns+` FROM appointments `+where+` ORDER BY appointment_date DESC, id DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus moves an appointment only if it is still in the expected status.
func (r AppointmentRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `UPDATE appointments SET status = ? WHERE id = ? AND status = ?`, string(to), id, string(from))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: "appointment", Msg: "status changed concurrently"}
	}
	return nil
}
