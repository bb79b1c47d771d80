package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, patient *Patient) error
	Update(ctx context.Context, db *gorm.DB, patient *Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Patient, error)
	ExistsByDNI(ctx context.Context, db *gorm.DB, dni string, excludeID snowflake.ID) (bool, error)
	List(ctx context.Context, db *gorm.DB) ([]PatientSummary, error)
	// PurgeCascade hard-deletes the patient together with its appointments,
	// invoices and invoice items. Callers run it inside a transaction.
	PurgeCascade(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
