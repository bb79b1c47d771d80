package repository

import (
	"context"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, provider *domain.Provider) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO providers (id, firstName, lastName, specialty, email, phone, color, status, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		provider.ID,
		provider.FirstName,
		provider.LastName,
		provider.Specialty,
		provider.Email,
		provider.Phone,
		provider.Color,
		provider.Status,
		provider.CreatedAt,
	).Error
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Provider{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Provider, error) {
	var provider domain.Provider
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM providers WHERE id = ?`, id,
	).Scan(&provider).Error
	if err != nil {
		return nil, err
	}
	if provider.ID == 0 {
		return nil, nil
	}
	return &provider, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.ProviderSummary, error) {
	var summaries []domain.ProviderSummary
	err := db.WithContext(ctx).Raw(
		`SELECT
			p.*,
			(SELECT COUNT(*) FROM appointments a WHERE a.providerId = p.id) AS appointmentCount
		 FROM providers p
		 WHERE p.status = 'active'
		 ORDER BY p.firstName, p.lastName`,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
