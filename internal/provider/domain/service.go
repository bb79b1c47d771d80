package domain

import (
	"context"
	"errors"
)

type CreateProviderRequest struct {
	FirstName string
	LastName  string
	Specialty string
	Email     string
	Phone     string
	Color     string
}

// UpdateProviderRequest carries a partial update: only non-nil fields are
// assigned.
type UpdateProviderRequest struct {
	ID        string
	FirstName *string
	LastName  *string
	Specialty *string
	Email     *string
	Phone     *string
	Color     *string
	Status    *string
}

type Service interface {
	List(ctx context.Context) ([]ProviderSummary, error)
	Create(ctx context.Context, req CreateProviderRequest) (Provider, error)
	Update(ctx context.Context, req UpdateProviderRequest) (Provider, error)
	// Deactivate soft-deletes the provider. Appointments referencing it are
	// left untouched.
	Deactivate(ctx context.Context, id string) error
}

var (
	ErrInvalidID        = errors.New("invalid_provider_id")
	ErrInvalidFirstName = errors.New("invalid_provider_first_name")
	ErrInvalidLastName  = errors.New("invalid_provider_last_name")
	ErrInvalidSpecialty = errors.New("invalid_specialty")
	ErrInvalidColor     = errors.New("invalid_color")
	ErrInvalidStatus    = errors.New("invalid_provider_status")
	ErrNotFound         = errors.New("provider_not_found")
)
