package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, svc *CatalogService) error
	UpdateName(ctx context.Context, db *gorm.DB, id snowflake.ID, name string) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status ServiceStatus) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CatalogService, error)
	ListActive(ctx context.Context, db *gorm.DB) ([]CatalogService, error)
}
