package repository

import (
	"context"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, number, patientId, date, status, taxableAmount, vatAmount, discountAmount, totalAmount, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.Number,
		invoice.PatientID,
		invoice.Date,
		invoice.Status,
		invoice.TaxableAmount,
		invoice.VATAmount,
		invoice.DiscountAmount,
		invoice.TotalAmount,
		invoice.CreatedAt,
	).Error
}

func (r *repo) UpdateHeader(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices
		 SET patientId = ?, date = ?, status = ?, taxableAmount = ?, vatAmount = ?, discountAmount = ?, totalAmount = ?
		 WHERE id = ?`,
		invoice.PatientID,
		invoice.Date,
		invoice.Status,
		invoice.TaxableAmount,
		invoice.VATAmount,
		invoice.DiscountAmount,
		invoice.TotalAmount,
		invoice.ID,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.InvoiceStatus) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices SET status = ? WHERE id = ?`, status, id,
	).Error
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.InvoiceItem) error {
	for i := range items {
		err := db.WithContext(ctx).Exec(
			`INSERT INTO invoice_items (id, invoiceId, serviceId, description, unitPrice, units, vatRate, discountRate)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			items[i].ID,
			items[i].InvoiceID,
			items[i].ServiceID,
			items[i].Description,
			items[i].UnitPrice,
			items[i].Units,
			items[i].VATRate,
			items[i].DiscountRate,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) DeleteItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoice_items WHERE invoiceId = ?`, invoiceID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.InvoiceRow, error) {
	var row domain.InvoiceRow
	err := db.WithContext(ctx).Raw(
		`SELECT
			i.*,
			p.firstName || ' ' || p.secondLastName || ' ' || p.lastName AS patientName,
			p.dni AS patientDNI
		 FROM invoices i
		 LEFT JOIN patients p ON i.patientId = p.id
		 WHERE i.id = ?`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.InvoiceRow, error) {
	var rows []domain.InvoiceRow
	err := db.WithContext(ctx).Raw(
		`SELECT
			i.*,
			p.firstName || ' ' || p.secondLastName || ' ' || p.lastName AS patientName,
			p.dni AS patientDNI
		 FROM invoices i
		 LEFT JOIN patients p ON i.patientId = p.id
		 ORDER BY i.date DESC, i.number DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]domain.ItemRow, error) {
	var rows []domain.ItemRow
	err := db.WithContext(ctx).Raw(
		`SELECT
			ii.*,
			s.name AS serviceName
		 FROM invoice_items ii
		 LEFT JOIN services s ON ii.serviceId = s.id
		 WHERE ii.invoiceId = ?
		 ORDER BY ii.id`, invoiceID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) MaxNumberSuffix(ctx context.Context, db *gorm.DB, prefix string) (int64, error) {
	var max int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(CAST(SUBSTR(number, 3) AS INTEGER)), 0)
		 FROM invoices
		 WHERE number LIKE ?`, prefix+"%",
	).Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE id = ?`, id,
	).Error
}
