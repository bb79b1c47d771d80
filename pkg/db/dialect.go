package db

import (
	"fmt"
	"strings"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Dialect builds the SQLite dialector for the configured database file.
// The clinic runs against a single embedded database, so there is no
// driver switch here.
func Dialect(cfg config.Config) (gorm.Dialector, error) {
	path := strings.TrimSpace(cfg.DBPath)
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return sqlite.Open(path), nil
}
