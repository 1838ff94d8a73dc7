package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"salonmarket/internal/cache"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func priceP(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

type fakeUsers struct {
	mu         sync.Mutex
	accounts   map[int64]models.Account
	profiles   map[int64]models.User
	profileErr error
	created    chan models.User
	nextID     int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		accounts: map[int64]models.Account{},
		profiles: map[int64]models.User{},
		created:  make(chan models.User, 4),
	}
}

func (f *fakeUsers) CreateAccount(_ context.Context, email, hash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			return 0, domain.ConflictError{Resource: "account", Msg: "email already registered"}
		}
	}
	f.nextID++
	f.accounts[f.nextID] = models.Account{ID: f.nextID, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	return f.nextID, nil
}

func (f *fakeUsers) GetAccountByEmail(_ context.Context, email string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, domain.NotFoundError{Resource: "account"}
}

func (f *fakeUsers) GetAccountByID(_ context.Context, id int64) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return models.Account{}, domain.NotFoundError{Resource: "account"}
	}
	return a, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return domain.NotFoundError{Resource: "account"}
	}
	a.PasswordHash = hash
	f.accounts[id] = a
	return nil
}

func (f *fakeUsers) GetProfile(_ context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profileErr != nil {
		return models.User{}, f.profileErr
	}
	u, ok := f.profiles[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (f *fakeUsers) CreateProfile(_ context.Context, u models.User) error {
	f.mu.Lock()
	if _, ok := f.profiles[u.ID]; !ok {
		f.profiles[u.ID] = u
	}
	f.mu.Unlock()
	select {
	case f.created <- u:
	default:
	}
	return nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id int64, upd models.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[id]
	if !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.City != nil {
		u.City = *upd.City
	}
	f.profiles[id] = u
	return nil
}

func (f *fakeUsers) ListUsers(_ context.Context, p domain.Pagination) ([]models.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.User{}
	for _, u := range f.profiles {
		out = append(out, u)
	}
	return out, len(out), nil
}

var (
	hairOil = models.Product{
		ID: "1", SellerID: "seller-1", Name: "Premium Hair Oil", Brand: "NaturalGlow", Category: "hair-care",
		Price: price("45.99"), SalePrice: priceP("35.99"), Rating: 4.8, IsFeatured: true, StockQuantity: 25,
		Tags: []string{"organic", "vegan"},
	}
	clippers = models.Product{
		ID: "2", SellerID: "seller-2", Name: "Professional Hair Clippers", Brand: "ProCut", Category: "tools",
		Price: price("129.99"), Rating: 4.9, IsFeatured: true, StockQuantity: 12, Tags: []string{"cordless"},
	}
	faceCream = models.Product{
		ID: "3", SellerID: "seller-3", Name: "Moisturizing Face Cream", Brand: "SkinLux", Category: "skincare",
		Price: price("28.99"), Rating: 4.6, StockQuantity: 45, Tags: []string{"hyaluronic-acid"},
	}
	pomade = models.Product{
		ID: "4", SellerID: "7", Name: "Styling Pomade", Brand: "StyleMaster", Category: "styling",
		Price: price("22.99"), Rating: 4.4, StockQuantity: 3,
	}
	soldOut = models.Product{ID: "9", Name: "Sold Out Serum", Price: price("10"), StockQuantity: 0}
)

type fakeProducts struct {
	list  []models.Product
	calls int
	mu    sync.Mutex
	gate  chan struct{}
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{list: []models.Product{hairOil, clippers, faceCream, pomade, soldOut}}
}

func (f *fakeProducts) List(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Product, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (models.Product, error) {
	for _, p := range f.list {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, domain.NotFoundError{Resource: "product"}
}

func (f *fakeProducts) Create(_ context.Context, p models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, p)
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == p.ID && f.list[i].SellerID == p.SellerID {
			f.list[i] = p
		}
	}
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, sellerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.list {
		if p.ID == id && p.SellerID == sellerID {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "product"}
}

func (f *fakeProducts) ListBySeller(_ context.Context, sellerID string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.list {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

var eliteHair = models.Provider{
	ID: "1", UserID: 50, Name: "Sarah Johnson", BusinessName: "Elite Hair Studio", Address: "123 Beauty Ave",
	Rating: 4.9, TotalReviews: 127, HomeService: true, SalonService: true,
	Specialties: []string{"Balayage", "Color Correction"},
	Services: []models.Service{
		{ID: "1", ProviderID: "1", Name: "Signature Haircut & Style", Category: "Haircut", Price: price("85"), DurationMinutes: 90},
		{ID: "2", ProviderID: "1", Name: "Balayage Highlights", Category: "Coloring", Price: price("180"), DurationMinutes: 180},
		{ID: "3", ProviderID: "1", Name: "Color Correction", Category: "Coloring", Price: price("250"), DurationMinutes: 240},
	},
}

var classicCuts = models.Provider{
	ID: "2", Name: "Michael Davis", BusinessName: "Classic Cuts Barbershop", Rating: 4.8, SalonService: true,
	Specialties: []string{"Classic Cuts", "Beard Styling"},
	Services: []models.Service{
		{ID: "4", ProviderID: "2", Name: "Classic Haircut", Category: "Haircut", Price: price("25"), DurationMinutes: 45},
		{ID: "5", ProviderID: "2", Name: "Beard Trim", Category: "Beard Trim", Price: price("20"), DurationMinutes: 30},
	},
}

type fakeProviders struct {
	mu   sync.Mutex
	list []models.Provider
}

func newFakeProviders() *fakeProviders {
	f := &fakeProviders{}
	for _, p := range []models.Provider{eliteHair, classicCuts} {
		p.Services = append([]models.Service(nil), p.Services...)
		f.list = append(f.list, p)
	}
	return f
}

func (f *fakeProviders) List(context.Context) ([]models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Provider(nil), f.list...), nil
}

func (f *fakeProviders) GetByID(_ context.Context, id string) (models.Provider, error) {
	return f.find(func(p models.Provider) bool { return p.ID == id })
}

func (f *fakeProviders) GetByUserID(_ context.Context, userID int64) (models.Provider, error) {
	return f.find(func(p models.Provider) bool { return p.UserID == userID && userID != 0 })
}

func (f *fakeProviders) find(match func(models.Provider) bool) (models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.list {
		if match(p) {
			p.Services = append([]models.Service(nil), p.Services...)
			return p, nil
		}
	}
	return models.Provider{}, domain.NotFoundError{Resource: "provider"}
}

func (f *fakeProviders) GetService(_ context.Context, id string) (models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.list {
		if s, ok := p.FindService(id); ok {
			return s, nil
		}
	}
	return models.Service{}, domain.NotFoundError{Resource: "service"}
}

func (f *fakeProviders) CreateService(_ context.Context, s models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == s.ProviderID {
			f.list[i].Services = append(f.list[i].Services, s)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "provider"}
}

func (f *fakeProviders) UpdateService(_ context.Context, s models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		for j := range f.list[i].Services {
			if f.list[i].ID == s.ProviderID && f.list[i].Services[j].ID == s.ID {
				f.list[i].Services[j] = s
			}
		}
	}
	return nil
}

func (f *fakeProviders) DeleteService(_ context.Context, providerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID != providerID {
			continue
		}
		for j, s := range f.list[i].Services {
			if s.ID == id {
				f.list[i].Services = append(f.list[i].Services[:j], f.list[i].Services[j+1:]...)
				return nil
			}
		}
	}
	return domain.NotFoundError{Resource: "service"}
}

type fakeAppointments struct {
	mu   sync.Mutex
	rows map[int64]models.Appointment
	next int64
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{rows: map[int64]models.Appointment{}}
}

func (f *fakeAppointments) Create(_ context.Context, a models.Appointment) (models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	a.ID = f.next
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return models.Appointment{}, domain.NotFoundError{Resource: "appointment"}
	}
	return a, nil
}

func (f *fakeAppointments) ListByCustomer(_ context.Context, customerID int64) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Appointment{}
	for id := int64(1); id <= f.next; id++ {
		if a, ok := f.rows[id]; ok && a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) ListByProvider(_ context.Context, providerID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Appointment{}
	for id := int64(1); id <= f.next; id++ {
		if a, ok := f.rows[id]; ok && a.ProviderID == providerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok || a.Status != from {
		return domain.ConflictError{Resource: "appointment"}
	}
	a.Status = to
	f.rows[id] = a
	return nil
}

type fakeOrders struct {
	mu   sync.Mutex
	rows map[int64]models.Order
	next int64
}

func newFakeOrders() *fakeOrders { return &fakeOrders{rows: map[int64]models.Order{}} }

func (f *fakeOrders) CreateWithItems(_ context.Context, o models.Order) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	o.ID = f.next
	o.CreatedAt = time.Now()
	f.rows[o.ID] = o
	return o, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.rows[id]
	if !ok {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return o, nil
}

func (f *fakeOrders) ListByCustomer(_ context.Context, customerID int64) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Order{}
	for _, o := range f.rows {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) CountBySeller(_ context.Context, sellerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, o := range f.rows {
		for _, it := range o.Items {
			if it.SellerID == sellerID {
				n++
				break
			}
		}
	}
	return n, nil
}

type fakeFavorites struct {
	mu  sync.Mutex
	ids map[int64][]string
}

func newFakeFavorites() *fakeFavorites { return &fakeFavorites{ids: map[int64][]string{}} }

func (f *fakeFavorites) Toggle(_ context.Context, userID int64, target string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.ids[userID]
	for i, id := range list {
		if id == target {
			f.ids[userID] = append(list[:i:i], list[i+1:]...)
			return false, nil
		}
	}
	f.ids[userID] = append(list, target)
	return true, nil
}

func (f *fakeFavorites) List(_ context.Context, userID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.ids[userID]...), nil
}

var _ TokenStore = (*cache.TokenStore)(nil)
var _ CartStore = (*cache.CartStore)(nil)
var _ DraftStore = (*cache.DraftStore)(nil)
