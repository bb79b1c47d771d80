package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, provider *Provider) error
	// UpdateFields assigns only the supplied columns.
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Provider, error)
	// List returns active providers with their appointment counts.
	List(ctx context.Context, db *gorm.DB) ([]ProviderSummary, error)
}
