package api

import (
	"context"

	"salonmarket/internal/http/handlers"
	"salonmarket/internal/services"
)

// tokenParser validates bearer tokens with the app's auth settings.
type tokenParser struct{ app *handlers.App }

func (p tokenParser) ParseToken(ctx context.Context, raw string) (services.Claims, error) {
	return services.AuthService{Tokens: p.app.Tokens, Secret: p.app.JWTSecret}.ParseToken(ctx, raw)
}
