package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"salonmarket/internal/cache"
	intconfig "salonmarket/internal/config"
	"salonmarket/internal/domain"
	"salonmarket/internal/http/middleware"
	"salonmarket/internal/repositories"
	"salonmarket/internal/services"
)

// App holds the stores shared by all handlers. Services are built per request
// so each one carries the request id.
type App struct {
	DB    *sql.DB
	Redis *redis.Client

	Users        services.UserStore
	Tokens       services.TokenStore
	Carts        services.CartStore
	Drafts       services.DraftStore
	Products     services.ProductStore
	Providers    services.ProviderStore
	Appointments services.AppointmentStore
	Orders       services.OrderStore
	Favorites    services.FavoritesStore

	JWTSecret []byte
	JWTTTL    time.Duration
	Policy    domain.DiscountPolicy
	// Now is the booking clock; nil means time.Now.
	Now func() time.Time

	Catalog services.CatalogService
}

// NewApp wires MySQL repositories and Redis stores.
func NewApp(env intconfig.Env, db *sql.DB, rdb *redis.Client) *App {
	products := repositories.ProductRepo{DB: db}
	providers := repositories.ProviderRepo{DB: db}
	return &App{
		DB:           db,
		Redis:        rdb,
		Users:        repositories.UserRepo{DB: db},
		Tokens:       cache.NewTokenStore(rdb),
		Carts:        cache.NewCartStore(rdb),
		Drafts:       cache.NewDraftStore(rdb),
		Products:     products,
		Providers:    providers,
		Appointments: repositories.AppointmentRepo{DB: db},
		Orders:       repositories.OrderRepo{DB: db},
		Favorites:    repositories.FavoritesRepo{DB: db},
		JWTSecret:    []byte(env.JWTSecret),
		JWTTTL:       env.JWTTTL,
		Policy:       env.DiscountPolicy,
		Catalog:      services.NewCatalogService(products, providers),
	}
}

func (a *App) AuthService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     a.Users,
		Tokens:    a.Tokens,
		Secret:    a.JWTSecret,
		TTL:       a.JWTTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *App) cartService(c *gin.Context) services.CartService {
	return services.CartService{
		Carts:     a.Carts,
		Products:  a.Products,
		Orders:    a.Orders,
		Policy:    a.Policy,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *App) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Drafts:       a.Drafts,
		Providers:    a.Providers,
		Appointments: a.Appointments,
		RequestID:    middleware.GetRequestID(c),
		Now:          a.Now,
	}
}

func (a *App) appointmentService(c *gin.Context) services.AppointmentService {
	return services.AppointmentService{
		Appointments: a.Appointments,
		Providers:    a.Providers,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a *App) profileService(c *gin.Context) services.ProfileService {
	return services.ProfileService{
		Users:     a.Users,
		Favorites: a.Favorites,
		Products:  a.Products,
		Providers: a.Providers,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *App) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Appointments: a.appointmentService(c),
		Orders:       services.OrderService{Orders: a.Orders},
		Providers:    a.Providers,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a *App) listingService(c *gin.Context) services.ListingService {
	return services.ListingService{
		Users:     a.Users,
		Products:  a.Products,
		Providers: a.Providers,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *App) dashboardService() services.DashboardService {
	return services.DashboardService{
		Users:        a.Users,
		Appointments: a.Appointments,
		Orders:       a.Orders,
		Products:     a.Products,
		Providers:    a.Providers,
		Favorites:    a.Favorites,
	}
}
