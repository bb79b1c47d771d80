package repository

import (
	"context"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/catalog/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, svc *domain.CatalogService) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO services (id, name, status, createdAt) VALUES (?, ?, ?, ?)`,
		svc.ID,
		svc.Name,
		svc.Status,
		svc.CreatedAt,
	).Error
}

func (r *repo) UpdateName(ctx context.Context, db *gorm.DB, id snowflake.ID, name string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE services SET name = ? WHERE id = ?`, name, id,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.ServiceStatus) error {
	return db.WithContext(ctx).Exec(
		`UPDATE services SET status = ? WHERE id = ?`, status, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.CatalogService, error) {
	var svc domain.CatalogService
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM services WHERE id = ?`, id,
	).Scan(&svc).Error
	if err != nil {
		return nil, err
	}
	if svc.ID == 0 {
		return nil, nil
	}
	return &svc, nil
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB) ([]domain.CatalogService, error) {
	var services []domain.CatalogService
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM services WHERE status = 'active' ORDER BY name`,
	).Scan(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
