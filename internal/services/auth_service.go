package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"salonmarket/internal/cache"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

// Where a resolved role came from.
const (
	RoleSourceProfile = "profile"
	RoleSourceDefault = "default"
)

const minPasswordLength = 6

var errInvalidCredentials = domain.UnauthorizedError{Msg: "Invalid login credentials"}

// Claims is the JWT payload issued at sign in.
type Claims struct {
	UserID int64       `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Session is returned by SignIn.
type Session struct {
	Token      string      `json:"token"`
	ExpiresAt  time.Time   `json:"expiresAt"`
	User       models.User `json:"user"`
	RoleSource string      `json:"roleSource"`
}

type AuthService struct {
	Users     UserStore
	Tokens    TokenStore
	Secret    []byte
	TTL       time.Duration
	RequestID string
	Now       func() time.Time

	// Background runs best-effort work outside the request. Defaults to a goroutine.
	Background func(func())
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

func (s AuthService) background(fn func()) {
	if s.Background != nil {
		s.Background(fn)
		return
	}
	go fn()
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return "", domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	return email, nil
}

func validatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	return nil
}

// SignUp creates credentials and the profile row. Admin cannot be self-assigned.
func (s AuthService) SignUp(ctx context.Context, email, password string, meta models.SignUpMetadata) (models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return models.User{}, err
	}

	role := domain.RoleCustomer
	if strings.TrimSpace(meta.Role) != "" {
		role, err = domain.ParseRole(meta.Role)
		if err != nil {
			return models.User{}, err
		}
	}
	if !role.SelfService() {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "role cannot be chosen at sign up"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	id, err := s.Users.CreateAccount(ctx, email, string(hash))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       id,
		Email:    email,
		FullName: utils.NormalizeSpace(meta.FullName),
		Role:     role,
		IsActive: true,
	}
	if err := s.Users.CreateProfile(ctx, user); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "signup", fmt.Sprintf("user_id=%d role=%s", id, role))
	return user, nil
}

// SignIn verifies credentials and issues a token.
func (s AuthService) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := s.Users.GetAccountByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return Session{}, errInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return Session{}, errInvalidCredentials
	}

	user, source, err := s.ResolveRole(ctx, acc)
	if err != nil {
		return Session{}, err
	}

	token, exp, err := s.issueToken(user)
	if err != nil {
		return Session{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "signin", fmt.Sprintf("user_id=%d role=%s source=%s", user.ID, user.Role, source))
	return Session{Token: token, ExpiresAt: exp, User: user, RoleSource: source}, nil
}

func (s AuthService) issueToken(u models.User) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl())
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, exp, nil
}

// ParseToken validates signature, expiry and revocation.
func (s AuthService) ParseToken(ctx context.Context, raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, domain.UnauthorizedError{Msg: "invalid or expired token", Err: err}
	}
	if !claims.Role.Valid() || claims.UserID <= 0 {
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	if s.Tokens != nil && claims.ID != "" {
		revoked, err := s.Tokens.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Claims{}, err
		}
		if revoked {
			return Claims{}, domain.UnauthorizedError{Msg: "token has been revoked"}
		}
	}
	return claims, nil
}

// SignOut revokes the token until it would have expired.
func (s AuthService) SignOut(ctx context.Context, claims Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.Tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "auth", "signout", fmt.Sprintf("user_id=%d", claims.UserID))
	return nil
}

// ResolveRole reads the profile role. A missing profile falls back to customer
// and is recreated in the background; a lookup error is returned as is.
func (s AuthService) ResolveRole(ctx context.Context, acc models.Account) (models.User, string, error) {
	user, err := s.Users.GetProfile(ctx, acc.ID)
	if err == nil {
		if !user.Role.Valid() {
			return models.User{}, "", domain.InternalError{Msg: fmt.Sprintf("profile %d has unknown role %q", acc.ID, user.Role)}
		}
		return user, RoleSourceProfile, nil
	}
	if !domain.IsNotFound(err) {
		return models.User{}, "", err
	}

	user = models.User{ID: acc.ID, Email: acc.Email, Role: domain.RoleCustomer, IsActive: true, CreatedAt: acc.CreatedAt}
	utils.LogWarn(s.RequestID, "auth", "resolve_role", fmt.Sprintf("profile missing for user_id=%d, defaulting to customer", acc.ID), err)

	users, requestID := s.Users, s.RequestID
	s.background(func() {
		bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := users.CreateProfile(bg, user); err != nil {
			utils.LogWarn(requestID, "auth", "create_default_profile", fmt.Sprintf("user_id=%d", user.ID), err)
		}
	})
	return user, RoleSourceDefault, nil
}

// Me returns the current profile with its role source.
func (s AuthService) Me(ctx context.Context, userID int64) (models.User, string, error) {
	acc, err := s.Users.GetAccountByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.UnauthorizedError{Msg: "account no longer exists", Err: err}
		}
		return models.User{}, "", err
	}
	return s.ResolveRole(ctx, acc)
}

// ResetPassword never reveals whether the account exists.
func (s AuthService) ResetPassword(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	acc, err := s.Users.GetAccountByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "auth", "reset_password", "no account for requested email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.Tokens.SaveResetToken(ctx, token, acc.ID); err != nil {
		return err
	}
	// delivery is out of scope; the token is only recorded as issued
	utils.LogEvent(s.RequestID, "auth", "reset_password", fmt.Sprintf("reset token issued user_id=%d", acc.ID))
	return nil
}

// ConfirmPasswordReset consumes a reset token and stores the new password.
func (s AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	accountID, err := s.Tokens.ConsumeResetToken(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return domain.ValidationError{Field: "token", Msg: "invalid or expired reset token"}
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	if err := s.Users.UpdatePassword(ctx, accountID, string(hash)); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "auth", "reset_password_confirm", fmt.Sprintf("user_id=%d", accountID))
	return nil
}
