package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

type ProviderRepo struct {
	DB *sql.DB
}

const providerColumns = `id, user_id, name, business_name, avatar_url, address, rating, total_reviews,
	home_service, salon_service, specialties`

func scanProvider(row interface{ Scan(...any) error }) (models.Provider, error) {
	var p models.Provider
	var userID sql.NullInt64
	var avatar sql.NullString
	var specialties string
	if err := row.Scan(&p.ID, &userID, &p.Name, &p.BusinessName, &avatar, &p.Address, &p.Rating, &p.TotalReviews,
		&p.HomeService, &p.SalonService, &specialties); err != nil {
		return models.Provider{}, err
	}
	p.UserID = userID.Int64
	p.AvatarURL = intdb.StringOrEmpty(avatar)
	p.Specialties = intdb.SplitList(specialties)
	return p, nil
}

const serviceColumns = `id, provider_id, name, description, category, price, duration_minutes`

func scanService(row interface{ Scan(...any) error }) (models.Service, error) {
	var s models.Service
	var desc sql.NullString
	if err := row.Scan(&s.ID, &s.ProviderID, &s.Name, &desc, &s.Category, &s.Price, &s.DurationMinutes); err != nil {
		return models.Service{}, err
	}
	s.Description = intdb.StringOrEmpty(desc)
	return s, nil
}

// List loads all providers with their services attached.
func (r ProviderRepo) List(ctx context.Context) ([]models.Provider, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	out := []models.Provider{}
	index := map[string]int{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	services, err := r.listServices(ctx, db, "", nil)
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		if i, ok := index[s.ProviderID]; ok {
			out[i].Services = append(out[i].Services, s)
		}
	}
	return out, nil
}

func (r ProviderRepo) GetByID(ctx context.Context, id string) (models.Provider, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

// GetByUserID finds the provider listing owned by a provider/salon account.
func (r ProviderRepo) GetByUserID(ctx context.Context, userID int64) (models.Provider, error) {
	return r.getOne(ctx, `WHERE user_id = ?`, userID)
}

func (r ProviderRepo) getOne(ctx context.Context, where string, arg any) (models.Provider, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Provider{}, err
	}
	p, err := scanProvider(db.QueryRowContext(ctx, `SELECT `+providerColumns+` FROM providers `+where+` LIMIT 1`, arg))
	if err != nil {
		return models.Provider{}, notFound("provider", err)
	}
	p.Services, err = r.listServices(ctx, db, "WHERE provider_id = ?", []any{p.ID})
	if err != nil {
		return models.Provider{}, err
	}
	return p, nil
}

// GetService loads a single bookable service.
func (r ProviderRepo) GetService(ctx context.Context, id string) (models.Service, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Service{}, err
	}
	s, err := scanService(db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ? LIMIT 1`, strings.TrimSpace(id)))
	if err != nil {
		return models.Service{}, notFound("service", err)
	}
	return s, nil
}

func (r ProviderRepo) listServices(ctx context.Context, db *sql.DB, where string, args []any) ([]models.Service, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateService adds a bookable service to a provider's menu.
func (r ProviderRepo) CreateService(ctx context.Context, s models.Service) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO services (id, provider_id, name, description, category, price, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.ProviderID, s.Name, intdb.NullIfEmpty(s.Description), s.Category, s.Price, s.DurationMinutes)
	if isDuplicate(err) {
		return domain.ConflictError{Resource: "service", Msg: "id already exists", Err: err}
	}
	return err
}

// UpdateService rewrites a service that belongs to s.ProviderID.
func (r ProviderRepo) UpdateService(ctx context.Context, s models.Service) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		UPDATE services
		SET name = ?, description = ?, category = ?, price = ?, duration_minutes = ?
		WHERE id = ? AND provider_id = ?
	`, s.Name, intdb.NullIfEmpty(s.Description), s.Category, s.Price, s.DurationMinutes, s.ID, s.ProviderID)
	return err
}

// DeleteService removes a service only from its own provider's menu.
// Past appointments keep their copied service name.
func (r ProviderRepo) DeleteService(ctx context.Context, providerID, id string) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM services WHERE id = ? AND provider_id = ?`, id, providerID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "service"}
	}
	return nil
}
