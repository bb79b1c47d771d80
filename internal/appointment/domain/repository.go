package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, appointment *Appointment) error
	Update(ctx context.Context, db *gorm.DB, appointment *Appointment) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status AppointmentStatus) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Appointment, error)
	List(ctx context.Context, db *gorm.DB) ([]AppointmentSummary, error)
	// ListForProviderDate returns the non-cancelled appointments of a
	// provider on a date, minus the excluded appointment when excludeID is
	// non-zero.
	ListForProviderDate(ctx context.Context, db *gorm.DB, providerID snowflake.ID, date string, excludeID snowflake.ID) ([]Appointment, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
