package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/http/middleware"
)

// GET /api/profile
func (a *App) GetProfile(c *gin.Context) {
	u, err := a.profileService(c).Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/profile
func (a *App) UpdateProfile(c *gin.Context) {
	var upd models.ProfileUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	u, err := a.profileService(c).Update(c.Request.Context(), currentUserID(c), upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/favorites
func (a *App) ListFavorites(c *gin.Context) {
	favs, err := a.profileService(c).ListFavorites(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, favs)
}

// POST /api/favorites/:targetId
func (a *App) ToggleFavorite(c *gin.Context) {
	target := c.Param("targetId")
	favs, err := a.profileService(c).ToggleFavorite(c.Request.Context(), currentUserID(c), target)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": favs.IDs, "favorite": favs.Has(target)})
}

// GET /api/dashboard
func (a *App) Dashboard(c *gin.Context) {
	rc := middleware.RequestContext(c)
	user, _, err := a.AuthService(c).Me(c.Request.Context(), int64(rc.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// dispatch on the role the token was issued with
	user.Role = rc.Role
	d, err := a.dashboardService().Build(c.Request.Context(), user)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/admin/users
func (a *App) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	users, p, err := a.profileService(c).ListUsers(c.Request.Context(), domain.Pagination{Page: page, PageSize: size})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "pagination": p})
}
