package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "salonmarket/internal/config"
	"salonmarket/internal/domain"
	h "salonmarket/internal/http/handlers"
	"salonmarket/internal/http/middleware"
	"salonmarket/internal/utils"
)

func NewRouter(env intconfig.Env, app *h.App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authed := middleware.Auth(tokenParser{app})
	limiter := middleware.NewIPRateLimiter(env.AuthRateLimitRPS, env.AuthRateLimitBurst)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", app.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth", limiter.Middleware())
		auth.POST("/signup", app.SignUp)
		auth.POST("/signin", app.SignIn)
		auth.POST("/signout", authed, app.SignOut)
		auth.POST("/reset-password", app.ResetPassword)
		auth.POST("/reset-password/confirm", app.ConfirmPasswordReset)
		auth.GET("/me", authed, app.Me)

		// Catalog
		products := api.Group("/products")
		products.GET("", app.ListProducts)
		products.GET("/:id", app.GetProduct)

		providers := api.Group("/providers")
		providers.GET("", app.ListProviders)
		providers.GET("/:id", app.GetProvider)
		providers.GET("/:id/availability", app.ProviderAvailability)

		// Cart
		cart := api.Group("/cart", authed)
		cart.GET("", app.GetCart)
		cart.DELETE("", app.ClearCart)
		cart.POST("/items", app.AddCartItem)
		cart.PATCH("/items/:lineId", app.UpdateCartItem)
		cart.DELETE("/items/:lineId", app.RemoveCartItem)
		cart.POST("/coupon", app.ApplyCoupon)
		cart.DELETE("/coupon", app.RemoveCoupon)
		cart.POST("/checkout", app.Checkout)

		// Booking wizard
		wizard := api.Group("/bookings/wizard", authed)
		wizard.POST("", app.StartWizard)
		wizard.GET("/:sid", app.GetWizard)
		wizard.PATCH("/:sid", app.UpdateWizard)
		wizard.POST("/:sid/next", app.NextWizardStep)
		wizard.POST("/:sid/prev", app.PrevWizardStep)
		wizard.GET("/:sid/summary", app.WizardSummary)
		wizard.POST("/:sid/confirm", app.ConfirmBooking)

		// Appointments
		appts := api.Group("/appointments", authed)
		appts.GET("", app.ListAppointments)
		appts.GET("/:id/confirmation.pdf", app.AppointmentConfirmationPDF)
		appts.PUT("/:id/status", middleware.RequireRoles(domain.RoleProvider, domain.RoleSalon), app.UpdateAppointmentStatus)

		// Orders
		orders := api.Group("/orders", authed)
		orders.GET("", app.ListOrders)
		orders.GET("/:id", app.GetOrder)
		orders.GET("/:id/invoice.pdf", app.OrderInvoicePDF)

		// Profile & favorites
		me := api.Group("", authed)
		me.GET("/profile", app.GetProfile)
		me.PUT("/profile", app.UpdateProfile)
		me.GET("/favorites", app.ListFavorites)
		me.POST("/favorites/:targetId", app.ToggleFavorite)
		me.GET("/dashboard", app.Dashboard)

		// Seller products
		seller := api.Group("/seller", authed, middleware.RequireRoles(domain.RoleSeller))
		seller.GET("/products", app.ListSellerProducts)
		seller.POST("/products", app.CreateSellerProduct)
		seller.PUT("/products/:id", app.UpdateSellerProduct)
		seller.DELETE("/products/:id", app.DeleteSellerProduct)

		// Provider service menu
		provider := api.Group("/provider", authed, middleware.RequireRoles(domain.RoleProvider, domain.RoleSalon))
		provider.GET("/services", app.ListProviderServices)
		provider.POST("/services", app.CreateProviderService)
		provider.PUT("/services/:id", app.UpdateProviderService)
		provider.DELETE("/services/:id", app.DeleteProviderService)

		// Admin
		admin := api.Group("/admin", authed, middleware.RequireRoles(domain.RoleAdmin))
		admin.GET("/users", app.ListUsers)
	}

	h.SetRouter(r)
	return r
}
