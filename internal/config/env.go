package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"salonmarket/internal/domain"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	DiscountPolicy domain.DiscountPolicy

	LogLevel  string
	LogFormat string

	RunMigrations bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	policy := domain.ClampDiscount
	if envBool("CART_ALLOW_NEGATIVE_TOTAL", false) {
		policy = domain.AllowNegativeTotal
	}

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,

		DBDSN:      strings.TrimSpace(os.Getenv("DB_DSN")),
		DBHost:     envString("DB_HOST", "127.0.0.1"),
		DBPort:     envString("DB_PORT", "3306"),
		DBUser:     envString("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envString("DB_NAME", "salonmarket"),

		RedisAddr:     envString("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		JWTSecret: envString("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:    envDuration("JWT_TTL", 24*time.Hour),

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		AuthRateLimitRPS:   envFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst: envInt("AUTH_RATE_LIMIT_BURST", 10),

		DiscountPolicy: policy,

		LogLevel:  envString("LOG_LEVEL", "info"),
		LogFormat: envString("LOG_FORMAT", "json"),

		RunMigrations: envBool("RUN_MIGRATIONS", true),
	}
}

// MySQLDSN returns DB_DSN as-is or builds one from the DB_* parts.
// multiStatements is required by the migration runner.
func (e Env) MySQLDSN() string {
	if e.DBDSN != "" {
		return e.DBDSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&multiStatements=true&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
