// Package domain contains persistence models and the totals/numbering logic
// for invoices.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusCompleted InvoiceStatus = "completed"
	StatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is a bill issued to a patient. The four monetary fields are always
// derived server-side from the line items; client-sent values are ignored.
type Invoice struct {
	ID             snowflake.ID    `gorm:"column:id;primaryKey" json:"id"`
	Number         string          `gorm:"column:number;not null;uniqueIndex" json:"number"`
	PatientID      snowflake.ID    `gorm:"column:patientId" json:"patientId"`
	Date           string          `gorm:"column:date;not null" json:"date"`
	Status         InvoiceStatus   `gorm:"column:status;default:pending" json:"status"`
	TaxableAmount  decimal.Decimal `gorm:"column:taxableAmount;type:decimal(10,2);not null" json:"taxableAmount"`
	VATAmount      decimal.Decimal `gorm:"column:vatAmount;type:decimal(10,2)" json:"vatAmount"`
	DiscountAmount decimal.Decimal `gorm:"column:discountAmount;type:decimal(10,2)" json:"discountAmount"`
	TotalAmount    decimal.Decimal `gorm:"column:totalAmount;type:decimal(10,2);not null" json:"totalAmount"`
	CreatedAt      time.Time       `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is one billable line on an invoice. ServiceID is nil for
// free-text lines that only carry a description.
type InvoiceItem struct {
	ID           snowflake.ID    `gorm:"column:id;primaryKey" json:"-"`
	InvoiceID    snowflake.ID    `gorm:"column:invoiceId;not null" json:"-"`
	ServiceID    *snowflake.ID   `gorm:"column:serviceId" json:"service,omitempty"`
	Description  string          `gorm:"column:description" json:"description,omitempty"`
	UnitPrice    decimal.Decimal `gorm:"column:unitPrice;type:decimal(10,2);not null" json:"unitPrice"`
	Units        int64           `gorm:"column:units;not null" json:"units"`
	VATRate      decimal.Decimal `gorm:"column:vatRate;type:decimal(5,2);not null" json:"vat"`
	DiscountRate decimal.Decimal `gorm:"column:discountRate;type:decimal(5,2)" json:"discount"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

// ItemView is a line item joined with its catalog service name.
type ItemView struct {
	InvoiceItem
	ServiceName string `gorm:"-" json:"serviceName,omitempty"`
}

// InvoiceDetail is an invoice header with its ordered line items.
type InvoiceDetail struct {
	Invoice
	Items []ItemView `json:"items"`
}

// InvoiceSummary is an invoice joined with patient display fields and its
// items, as surfaced by the invoice list screen.
type InvoiceSummary struct {
	Invoice
	PatientName string     `json:"patientName"`
	PatientDNI  string     `json:"patientDNI"`
	Items       []ItemView `json:"items"`
	// Services is the comma-joined names of the billed catalog services.
	Services string `json:"services"`
}
