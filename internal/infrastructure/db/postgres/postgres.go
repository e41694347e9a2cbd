// Package postgres implements the user and department repositories on
// PostgreSQL via GORM. Uniqueness of emails and department names, and the
// department foreign keys, are owned by the database schema; constraint
// violations are translated into domain errors here.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a GORM connection to PostgreSQL. GORM's own logger is
// silenced; query-level logging happens through the application logger.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all persisted records.
// Departments migrate first so the user foreign key can be created.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&departmentRecord{}, &userRecord{}); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}

// pgErrorCode extracts the PostgreSQL error code from a driver error, or
// returns the empty string when err is not a PostgreSQL server error.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.ForeignKeyViolation
}
