package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain/models"
	"salonmarket/internal/http/middleware"
)

type signUpRequest struct {
	Email    string                `json:"email"`
	Password string                `json:"password"`
	Metadata models.SignUpMetadata `json:"metadata"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// POST /api/auth/signup
func (a *App) SignUp(c *gin.Context) {
	var req signUpRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := a.AuthService(c).SignUp(c.Request.Context(), req.Email, req.Password, req.Metadata)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// POST /api/auth/signin
func (a *App) SignIn(c *gin.Context) {
	var req credentialsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := a.AuthService(c).SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// POST /api/auth/signout
func (a *App) SignOut(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := a.AuthService(c).SignOut(c.Request.Context(), claims); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/auth/reset-password
func (a *App) ResetPassword(c *gin.Context) {
	var req resetRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.AuthService(c).ResetPassword(c.Request.Context(), req.Email); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "If an account exists for this email, a reset link has been issued."})
}

// POST /api/auth/reset-password/confirm
func (a *App) ConfirmPasswordReset(c *gin.Context) {
	var req resetConfirmRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := a.AuthService(c).ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// GET /api/auth/me
func (a *App) Me(c *gin.Context) {
	user, source, err := a.AuthService(c).Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "role": user.Role, "role_source": source})
}
