package domain

import (
	"context"
	"errors"
)

type CreateServiceRequest struct {
	Name string
}

type UpdateServiceRequest struct {
	ID   string
	Name string
}

type Service interface {
	// List returns active catalog entries ordered by name.
	List(ctx context.Context) ([]CatalogService, error)
	Create(ctx context.Context, req CreateServiceRequest) (CatalogService, error)
	Update(ctx context.Context, req UpdateServiceRequest) (CatalogService, error)
	// Deactivate soft-deletes the catalog entry.
	Deactivate(ctx context.Context, id string) error
}

var (
	ErrInvalidID   = errors.New("invalid_service_id")
	ErrInvalidName = errors.New("invalid_service_name")
	ErrNotFound    = errors.New("service_not_found")
)
