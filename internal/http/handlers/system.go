package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/http/middleware"
	"salonmarket/internal/utils"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "salonmarket backend running"})
}

// DBCheck pings MySQL and Redis and reports whether the schema is in place.
func (a *App) DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if a.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "database_unavailable", "database not connected", nil)
		return
	}
	if err := a.DB.PingContext(ctx); err != nil {
		utils.LogWarn(middleware.GetRequestID(c), "system", "db_check", "database ping failed", err)
		respondError(c, http.StatusServiceUnavailable, "database_unavailable", "database ping failed", nil)
		return
	}

	tables := gin.H{}
	for _, t := range []string{"users", "products", "providers", "appointments", "orders"} {
		tables[t] = intdb.HasTable(ctx, a.DB, t)
	}

	redisOK := false
	if a.Redis != nil {
		redisOK = a.Redis.Ping(ctx).Err() == nil
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": tables, "redis": redisOK})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
