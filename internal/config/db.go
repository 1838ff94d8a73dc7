package config

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"salonmarket/internal/utils"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex

	dbDSN string
)

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(dsn string) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()
	return connectLocked(dsn)
}

func connectLocked(dsn string) (*sql.DB, error) {
	if DB != nil {
		return DB, nil
	}
	if dsn == "" {
		dsn = dbDSN
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	DB = db
	dbDSN = dsn
	utils.Logger().Info("connected to mysql")
	return DB, nil
}

// EnsureDB pings the shared connection, reconnecting if it was never opened.
func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		_, err := connectLocked("")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		utils.Logger().Warn("db ping failed", zap.Error(err))
		return err
	}
	return nil
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
