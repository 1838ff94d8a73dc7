package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salonmarket/internal/domain"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("CART_ALLOW_NEGATIVE_TOTAL", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, domain.ClampDiscount, env.DiscountPolicy)
	assert.Equal(t, 24*time.Hour, env.JWTTTL)
	assert.NotEmpty(t, env.CORSAllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CART_ALLOW_NEGATIVE_TOTAL", "true")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTH_RATE_LIMIT_BURST", "3")

	env := LoadEnv()
	assert.Equal(t, domain.AllowNegativeTotal, env.DiscountPolicy)
	assert.Equal(t, 2*time.Hour, env.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSAllowedOrigins)
	assert.Equal(t, 3, env.AuthRateLimitBurst)
}

func TestMySQLDSN(t *testing.T) {
	env := Env{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "3306", DBName: "salon"}
	assert.Contains(t, env.MySQLDSN(), "u:p@tcp(db:3306)/salon?")
	assert.Contains(t, env.MySQLDSN(), "multiStatements=true")

	env.DBDSN = "x:y@tcp(h)/d"
	assert.Equal(t, "x:y@tcp(h)/d", env.MySQLDSN())
}
