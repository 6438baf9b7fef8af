// Package db opens the MySQL connection used by both binaries.
package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. The DSN is normalized so
// datetime columns always scan into time.Time.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(normalizeDSN(dsn)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// normalizeDSN appends parseTime=True when the DSN does not set it. Loan
// dates and the model timestamps fail to scan without it.
func normalizeDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "parseTime=True"
}
