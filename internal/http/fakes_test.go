package api

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

type memUsers struct {
	mu       sync.Mutex
	accounts []models.Account
	profiles map[int64]models.User
}

func newMemUsers() *memUsers { return &memUsers{profiles: map[int64]models.User{}} }

func (m *memUsers) CreateAccount(_ context.Context, email, hash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return 0, domain.ConflictError{Resource: "account", Msg: "email already registered"}
		}
	}
	id := int64(len(m.accounts) + 1)
	m.accounts = append(m.accounts, models.Account{ID: id, Email: email, PasswordHash: hash, CreatedAt: time.Now()})
	return id, nil
}

func (m *memUsers) find(match func(models.Account) bool) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if match(a) {
			return a, nil
		}
	}
	return models.Account{}, domain.NotFoundError{Resource: "account"}
}

func (m *memUsers) GetAccountByEmail(_ context.Context, email string) (models.Account, error) {
	return m.find(func(a models.Account) bool { return a.Email == email })
}

func (m *memUsers) GetAccountByID(_ context.Context, id int64) (models.Account, error) {
	return m.find(func(a models.Account) bool { return a.ID == id })
}

func (m *memUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.accounts {
		if m.accounts[i].ID == id {
			m.accounts[i].PasswordHash = hash
			return nil
		}
	}
	return domain.NotFoundError{Resource: "account"}
}

func (m *memUsers) GetProfile(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.profiles[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (m *memUsers) CreateProfile(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[u.ID]; !ok {
		m.profiles[u.ID] = u
	}
	return nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id int64, upd models.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.profiles[id]
	if !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	m.profiles[id] = u
	return nil
}

func (m *memUsers) ListUsers(_ context.Context, _ domain.Pagination) ([]models.User, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.profiles {
		out = append(out, u)
	}
	return out, len(out), nil
}

var salePrice = decimal.RequireFromString("35.99")

var catalogProducts = []models.Product{
	{ID: "1", SellerID: "seller-1", Name: "Premium Hair Oil", Brand: "NaturalGlow", Category: "hair-care",
		Price: decimal.RequireFromString("45.99"), SalePrice: &salePrice, Rating: 4.8, IsFeatured: true, StockQuantity: 25},
	{ID: "2", SellerID: "seller-2", Name: "Professional Hair Clippers", Brand: "ProCut", Category: "tools",
		Price: decimal.RequireFromString("129.99"), Rating: 4.9, StockQuantity: 12},
}

type memProducts struct {
	mu   sync.Mutex
	list []models.Product
}

func newMemProducts() *memProducts {
	return &memProducts{list: append([]models.Product(nil), catalogProducts...)}
}

func (m *memProducts) List(context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Product{}, m.list...), nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.list {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, domain.NotFoundError{Resource: "product"}
}

func (m *memProducts) ListBySeller(_ context.Context, sellerID string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.list {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Create(_ context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = append(m.list, p)
	return nil
}

func (m *memProducts) Update(_ context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.list {
		if m.list[i].ID == p.ID && m.list[i].SellerID == p.SellerID {
			m.list[i] = p
		}
	}
	return nil
}

func (m *memProducts) Delete(_ context.Context, sellerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.list {
		if p.ID == id && p.SellerID == sellerID {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "product"}
}

// the studio is owned by the second account created in a test
var studio = models.Provider{
	ID: "1", UserID: 2, BusinessName: "Elite Hair Studio", Address: "123 Beauty Ave", Rating: 4.9,
	HomeService: true, SalonService: true, Specialties: []string{"Balayage"},
	Services: []models.Service{
		{ID: "1", ProviderID: "1", Name: "Signature Haircut & Style", Category: "Haircut", Price: decimal.NewFromInt(85), DurationMinutes: 90},
	},
}

// memProviders holds the single studio listing.
type memProviders struct {
	mu       sync.Mutex
	provider models.Provider
}

func newMemProviders() *memProviders {
	p := studio
	p.Services = append([]models.Service(nil), studio.Services...)
	return &memProviders{provider: p}
}

func (m *memProviders) snapshot() models.Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.provider
	p.Services = append([]models.Service(nil), m.provider.Services...)
	return p
}

func (m *memProviders) List(context.Context) ([]models.Provider, error) {
	return []models.Provider{m.snapshot()}, nil
}

func (m *memProviders) GetByID(_ context.Context, id string) (models.Provider, error) {
	if p := m.snapshot(); id == p.ID {
		return p, nil
	}
	return models.Provider{}, domain.NotFoundError{Resource: "provider"}
}

func (m *memProviders) GetByUserID(_ context.Context, userID int64) (models.Provider, error) {
	if p := m.snapshot(); userID == p.UserID {
		return p, nil
	}
	return models.Provider{}, domain.NotFoundError{Resource: "provider"}
}

func (m *memProviders) GetService(_ context.Context, id string) (models.Service, error) {
	if s, ok := m.snapshot().FindService(id); ok {
		return s, nil
	}
	return models.Service{}, domain.NotFoundError{Resource: "service"}
}

func (m *memProviders) CreateService(_ context.Context, s models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provider.Services = append(m.provider.Services, s)
	return nil
}

func (m *memProviders) UpdateService(_ context.Context, s models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.provider.Services {
		if m.provider.Services[i].ID == s.ID {
			m.provider.Services[i] = s
		}
	}
	return nil
}

func (m *memProviders) DeleteService(_ context.Context, providerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.provider.Services {
		if s.ID == id && providerID == m.provider.ID {
			m.provider.Services = append(m.provider.Services[:i], m.provider.Services[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "service"}
}

type memAppointments struct {
	mu   sync.Mutex
	rows []models.Appointment
}

func (m *memAppointments) Create(_ context.Context, a models.Appointment) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, a)
	return a, nil
}

func (m *memAppointments) GetByID(_ context.Context, id int64) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.rows) {
		return models.Appointment{}, domain.NotFoundError{Resource: "appointment"}
	}
	return m.rows[id-1], nil
}

func (m *memAppointments) filter(keep func(models.Appointment) bool) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range m.rows {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m *memAppointments) ListByCustomer(_ context.Context, id int64) ([]models.Appointment, error) {
	return m.filter(func(a models.Appointment) bool { return a.CustomerID == id }), nil
}

func (m *memAppointments) ListByProvider(_ context.Context, id string) ([]models.Appointment, error) {
	return m.filter(func(a models.Appointment) bool { return a.ProviderID == id }), nil
}

func (m *memAppointments) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.rows) || m.rows[id-1].Status != from {
		return domain.ConflictError{Resource: "appointment", Msg: "status changed concurrently"}
	}
	m.rows[id-1].Status = to
	return nil
}

type memOrders struct {
	mu   sync.Mutex
	rows []models.Order
}

func (m *memOrders) CreateWithItems(_ context.Context, o models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = int64(len(m.rows) + 1)
	o.CreatedAt = time.Now()
	m.rows = append(m.rows, o)
	return o, nil
}

func (m *memOrders) GetByID(_ context.Context, id int64) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.rows) {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return m.rows[id-1], nil
}

func (m *memOrders) ListByCustomer(_ context.Context, id int64) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.rows {
		if o.CustomerID == id {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) CountBySeller(context.Context, string) (int, error) { return 0, nil }

type memFavorites struct {
	mu  sync.Mutex
	ids map[int64][]string
}

func (m *memFavorites) Toggle(_ context.Context, userID int64, target string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[int64][]string{}
	}
	list := m.ids[userID]
	for i, id := range list {
		if id == target {
			m.ids[userID] = append(list[:i:i], list[i+1:]...)
			return false, nil
		}
	}
	m.ids[userID] = append(list, target)
	return true, nil
}

func (m *memFavorites) List(_ context.Context, userID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.ids[userID]...), nil
}
