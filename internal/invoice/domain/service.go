package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one submitted line. ServiceID may be empty for a
// free-text line, in which case Description is required.
type LineItemRequest struct {
	ServiceID    string
	Description  string
	UnitPrice    decimal.Decimal
	Units        int64
	VATRate      decimal.Decimal
	DiscountRate decimal.Decimal
}

type CreateInvoiceRequest struct {
	// Number is normally left empty and generated per fiscal year; imports
	// of historical data supply their own.
	Number    string
	PatientID string
	Date      string
	Status    string
	Items     []LineItemRequest
}

type UpdateInvoiceRequest struct {
	ID string
	CreateInvoiceRequest
}

type UpdateStatusRequest struct {
	ID     string
	Status string
}

type Service interface {
	List(ctx context.Context) ([]InvoiceSummary, error)
	GetByID(ctx context.Context, id string) (InvoiceSummary, error)
	// Create persists the invoice header and its items as one transaction,
	// with totals computed server-side.
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceDetail, error)
	// Update rewrites the header and replaces all items as one transaction.
	Update(ctx context.Context, req UpdateInvoiceRequest) (InvoiceDetail, error)
	// UpdateStatus transitions the invoice; repeating a transition is a
	// no-op that still succeeds.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	// Delete removes the items and the header as one transaction.
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID          = errors.New("invalid_invoice_id")
	ErrInvalidPatient     = errors.New("invalid_invoice_patient")
	ErrInvalidDate        = errors.New("invalid_invoice_date")
	ErrNoItems            = errors.New("invoice_items_required")
	ErrInvalidItemService = errors.New("invalid_item_service")
	ErrInvalidItemPrice   = errors.New("invalid_item_price")
	ErrInvalidItemUnits   = errors.New("invalid_item_units")
	ErrInvalidStatus      = errors.New("invalid_invoice_status")
	ErrDuplicateNumber    = errors.New("duplicate_invoice_number")
	ErrNotFound           = errors.New("invoice_not_found")
)
