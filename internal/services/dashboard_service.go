package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

// QuickAction is a dashboard shortcut.
type QuickAction struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

type CustomerDashboard struct {
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	RecentOrders         []models.Order       `json:"recentOrders"`
	FavoritesCount       int                  `json:"favoritesCount"`
}

type ProviderDashboard struct {
	Provider        models.Provider      `json:"provider"`
	Pending         int                  `json:"pending"`
	Upcoming        []models.Appointment `json:"upcoming"`
	CompletedEarned decimal.Decimal      `json:"completedEarned"`
}

type SellerDashboard struct {
	ProductCount int              `json:"productCount"`
	LowStock     []models.Product `json:"lowStock"`
	OrderCount   int              `json:"orderCount"`
}

type AdminDashboard struct {
	TotalUsers  int           `json:"totalUsers"`
	RecentUsers []models.User `json:"recentUsers"`
}

// Dashboard carries exactly one role section.
type Dashboard struct {
	Role     domain.Role        `json:"role"`
	Greeting string             `json:"greeting"`
	Actions  []QuickAction      `json:"actions"`
	Customer *CustomerDashboard `json:"customer,omitempty"`
	Provider *ProviderDashboard `json:"provider,omitempty"`
	Seller   *SellerDashboard   `json:"seller,omitempty"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
}

const lowStockThreshold = 5

type DashboardService struct {
	Users        UserStore
	Appointments AppointmentStore
	Orders       OrderStore
	Products     ProductStore
	Providers    ProviderStore
	Favorites    FavoritesStore
}

// Build renders the dashboard for the user's role.
func (s DashboardService) Build(ctx context.Context, user models.User) (Dashboard, error) {
	return domain.VisitRole[Dashboard](user.Role, dashboardBuilder{ctx: ctx, s: s, user: user})
}

type dashboardBuilder struct {
	ctx  context.Context
	s    DashboardService
	user models.User
}

func (b dashboardBuilder) base(actions ...QuickAction) Dashboard {
	name := b.user.FullName
	if name == "" {
		name = b.user.Email
	}
	return Dashboard{Role: b.user.Role, Greeting: fmt.Sprintf("Welcome back, %s", name), Actions: actions}
}

func (b dashboardBuilder) Customer() (Dashboard, error) {
	appts, err := b.s.Appointments.ListByCustomer(b.ctx, b.user.ID)
	if err != nil {
		return Dashboard{}, err
	}
	orders, err := b.s.Orders.ListByCustomer(b.ctx, b.user.ID)
	if err != nil {
		return Dashboard{}, err
	}
	favs, err := b.s.Favorites.List(b.ctx, b.user.ID)
	if err != nil {
		return Dashboard{}, err
	}

	upcoming := []models.Appointment{}
	for _, a := range appts {
		if a.Status == domain.AppointmentPending || a.Status == domain.AppointmentConfirmed {
			upcoming = append(upcoming, a)
		}
	}
	if len(orders) > 5 {
		orders = orders[:5]
	}

	d := b.base(
		QuickAction{Title: "Book Appointment", Href: "/search"},
		QuickAction{Title: "Shop Products", Href: "/products"},
		QuickAction{Title: "Find Providers", Href: "/search"},
	)
	d.Customer = &CustomerDashboard{UpcomingAppointments: upcoming, RecentOrders: orders, FavoritesCount: len(favs)}
	return d, nil
}

func (b dashboardBuilder) Provider() (Dashboard, error) {
	p, err := b.s.Providers.GetByUserID(b.ctx, b.user.ID)
	if err != nil && !domain.IsNotFound(err) {
		return Dashboard{}, err
	}

	section := &ProviderDashboard{Provider: p, Upcoming: []models.Appointment{}, CompletedEarned: decimal.Zero}
	if p.ID != "" {
		appts, err := b.s.Appointments.ListByProvider(b.ctx, p.ID)
		if err != nil {
			return Dashboard{}, err
		}
		for _, a := range appts {
			switch a.Status {
			case domain.AppointmentPending:
				section.Pending++
				section.Upcoming = append(section.Upcoming, a)
			case domain.AppointmentConfirmed, domain.AppointmentInProgress:
				section.Upcoming = append(section.Upcoming, a)
			case domain.AppointmentCompleted:
				section.CompletedEarned = section.CompletedEarned.Add(a.TotalAmount)
			}
		}
	}

	d := b.base(
		QuickAction{Title: "Manage Bookings", Href: "/provider/bookings"},
		QuickAction{Title: "Update Portfolio", Href: "/provider/portfolio"},
		QuickAction{Title: "Manage Services", Href: "/provider/services"},
		QuickAction{Title: "Set Availability", Href: "/provider/availability"},
	)
	d.Provider = section
	return d, nil
}

// Salon accounts run the same business view as individual providers.
func (b dashboardBuilder) Salon() (Dashboard, error) {
	return b.Provider()
}

func (b dashboardBuilder) Seller() (Dashboard, error) {
	sellerID := SellerKey(b.user.ID)
	products, err := b.s.Products.ListBySeller(b.ctx, sellerID)
	if err != nil {
		return Dashboard{}, err
	}
	orders, err := b.s.Orders.CountBySeller(b.ctx, sellerID)
	if err != nil {
		return Dashboard{}, err
	}
	low := []models.Product{}
	for _, p := range products {
		if p.StockQuantity < lowStockThreshold {
			low = append(low, p)
		}
	}

	d := b.base(
		QuickAction{Title: "Add New Product", Href: "/seller/products/new"},
		QuickAction{Title: "Manage Products", Href: "/seller/products"},
		QuickAction{Title: "View Analytics", Href: "/seller/analytics"},
	)
	d.Seller = &SellerDashboard{ProductCount: len(products), LowStock: low, OrderCount: orders}
	return d, nil
}

func (b dashboardBuilder) Admin() (Dashboard, error) {
	users, total, err := b.s.Users.ListUsers(b.ctx, domain.Pagination{Page: 1, PageSize: 10})
	if err != nil {
		return Dashboard{}, err
	}
	d := b.base(
		QuickAction{Title: "User Management", Href: "/admin/users"},
		QuickAction{Title: "Provider Verification", Href: "/admin/verifications"},
		QuickAction{Title: "Content Moderation", Href: "/admin/moderation"},
		QuickAction{Title: "Platform Settings", Href: "/admin/settings"},
	)
	d.Admin = &AdminDashboard{TotalUsers: total, RecentUsers: users}
	return d, nil
}
