package repositories

import (
	"database/sql"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"

	intconfig "salonmarket/internal/config"
	"salonmarket/internal/domain"
)

// conn resolves the repository DB, falling back to the shared connection.
func conn(db *sql.DB) (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, domain.InternalError{Msg: "database not connected"}
}

func notFound(resource string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return err
}

const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var me *mysqldriver.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
