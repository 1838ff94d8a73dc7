package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

// UserRepo covers sign-in accounts and their profile rows.
type UserRepo struct {
	DB *sql.DB
}

// CreateAccount stores credentials and returns the new id.
func (r UserRepo) CreateAccount(ctx context.Context, email, passwordHash string) (int64, error) {
	db, err := conn(r.DB)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `INSERT INTO accounts (email, password_hash) VALUES (?, ?)`, email, passwordHash)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "account", Msg: "email already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.getAccount(ctx, `WHERE email = ?`, strings.ToLower(strings.TrimSpace(email)))
}

func (r UserRepo) GetAccountByID(ctx context.Context, id int64) (models.Account, error) {
	return r.getAccount(ctx, `WHERE id = ?`, id)
}

func (r UserRepo) getAccount(ctx context.Context, where string, arg any) (models.Account, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Account{}, err
	}
	var a models.Account
	err = db.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM accounts `+where+` LIMIT 1`, arg).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return models.Account{}, notFound("account", err)
	}
	return a, nil
}

func (r UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `UPDATE accounts SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "account"}
	}
	return nil
}

const profileColumns = `id, email, full_name, role, phone, avatar_url, address, city, bio, is_verified, is_active, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	var role string
	var phone, avatar, address, city, bio sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &role, &phone, &avatar, &address, &city, &bio,
		&u.IsVerified, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	u.Role = domain.Role(role)
	u.Phone = intdb.StringOrEmpty(phone)
	u.AvatarURL = intdb.StringOrEmpty(avatar)
	u.Address = intdb.StringOrEmpty(address)
	u.City = intdb.StringOrEmpty(city)
	u.Bio = intdb.StringOrEmpty(bio)
	return u, nil
}

// GetProfile returns domain.NotFoundError when the profile row does not exist.
func (r UserRepo) GetProfile(ctx context.Context, id int64) (models.User, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.User{}, err
	}
	u, err := scanProfile(db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM users WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.User{}, notFound("user", err)
	}
	return u, nil
}

// CreateProfile inserts the profile row; an existing row is left untouched.
func (r UserRepo) CreateProfile(ctx context.Context, u models.User) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT IGNORE INTO users (id, email, full_name, role, phone, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Email, u.FullName, string(u.Role), intdb.NullIfEmpty(u.Phone), intdb.NullIfEmpty(u.AvatarURL))
	return err
}

// UpdateProfile performs PATCH-style updates based on key presence.
func (r UserRepo) UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}

	sets := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	add("full_name", upd.FullName)
	add("phone", upd.Phone)
	add("avatar_url", upd.AvatarURL)
	add("address", upd.Address)
	add("city", upd.City)
	add("bio", upd.Bio)
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// ListUsers pages over all profiles, newest first.
func (r UserRepo) ListUsers(ctx context.Context, p domain.Pagination) ([]models.User, int, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, 0, err
	}
	p = p.Normalize()

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, `SELECT `+profileColumns+` FROM users ORDER BY id DESC LIMIT ? OFFSET ?`, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}
