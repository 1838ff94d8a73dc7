package services

import (
	"context"
	"time"

	"salonmarket/internal/cache"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/state"
)

// The services depend on these narrow views of the repositories and Redis stores.

type UserStore interface {
	CreateAccount(ctx context.Context, email, passwordHash string) (int64, error)
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	GetAccountByID(ctx context.Context, id int64) (models.Account, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	GetProfile(ctx context.Context, id int64) (models.User, error)
	CreateProfile(ctx context.Context, u models.User) error
	UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error
	ListUsers(ctx context.Context, p domain.Pagination) ([]models.User, int, error)
}

type TokenStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	SaveResetToken(ctx context.Context, token string, accountID int64) error
	ConsumeResetToken(ctx context.Context, token string) (int64, error)
}

type CartStore interface {
	Get(ctx context.Context, userID int64) (state.CartState, error)
	Save(ctx context.Context, userID int64, cart state.CartState) error
	Delete(ctx context.Context, userID int64) error
}

type DraftStore interface {
	Get(ctx context.Context, sessionID string) (cache.WizardSession, error)
	Save(ctx context.Context, ws cache.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	Create(ctx context.Context, p models.Product) error
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, sellerID, id string) error
}

type ProviderStore interface {
	List(ctx context.Context) ([]models.Provider, error)
	GetByID(ctx context.Context, id string) (models.Provider, error)
	GetByUserID(ctx context.Context, userID int64) (models.Provider, error)
	GetService(ctx context.Context, id string) (models.Service, error)
	CreateService(ctx context.Context, s models.Service) error
	UpdateService(ctx context.Context, s models.Service) error
	DeleteService(ctx context.Context, providerID, id string) error
}

type AppointmentStore interface {
	Create(ctx context.Context, a models.Appointment) (models.Appointment, error)
	GetByID(ctx context.Context, id int64) (models.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Appointment, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
}

type OrderStore interface {
	CreateWithItems(ctx context.Context, o models.Order) (models.Order, error)
	GetByID(ctx context.Context, id int64) (models.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	CountBySeller(ctx context.Context, sellerID string) (int, error)
}

type FavoritesStore interface {
	Toggle(ctx context.Context, userID int64, targetID string) (bool, error)
	List(ctx context.Context, userID int64) ([]string, error)
}
