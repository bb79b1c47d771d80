package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// InvoiceRow is an invoice header joined with patient display fields.
type InvoiceRow struct {
	Invoice
	PatientName string `gorm:"column:patientName"`
	PatientDNI  string `gorm:"column:patientDNI"`
}

// ItemRow is a line item joined with its catalog service name.
type ItemRow struct {
	InvoiceItem
	ServiceName string `gorm:"column:serviceName"`
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	UpdateHeader(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status InvoiceStatus) error
	InsertItems(ctx context.Context, db *gorm.DB, items []InvoiceItem) error
	DeleteItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*InvoiceRow, error)
	List(ctx context.Context, db *gorm.DB) ([]InvoiceRow, error)
	ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]ItemRow, error)
	// MaxNumberSuffix returns the highest numeric suffix among invoice
	// numbers starting with prefix, or 0 when none exist.
	MaxNumberSuffix(ctx context.Context, db *gorm.DB, prefix string) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
