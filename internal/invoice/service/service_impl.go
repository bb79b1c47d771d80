package service

import (
	"context"
	"strings"
	"time"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.InvoiceSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := s.buildSummary(ctx, row)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.InvoiceSummary, error) {
	id, err := parseID(rawID, domain.ErrInvalidID)
	if err != nil {
		return domain.InvoiceSummary{}, err
	}

	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceSummary{}, err
	}
	if row == nil {
		return domain.InvoiceSummary{}, domain.ErrNotFound
	}

	return s.buildSummary(ctx, *row)
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.InvoiceDetail, error) {
	patientID, date, status, items, err := validateRequest(req)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}

	totals := domain.ComputeTotals(lineInputs(items))

	invoice := domain.Invoice{
		ID:             s.genID.Generate(),
		Number:         strings.TrimSpace(req.Number),
		PatientID:      patientID,
		Date:           date,
		Status:         status,
		TaxableAmount:  totals.TaxableAmount,
		VATAmount:      totals.VATAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		CreatedAt:      time.Now().UTC(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Imports bring their own number; otherwise the next number of the
		// invoice's fiscal year is assigned here, inside the transaction.
		if invoice.Number == "" {
			number, err := s.nextNumber(ctx, tx, invoice.Date)
			if err != nil {
				return err
			}
			invoice.Number = number
		}

		if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
			return err
		}

		for i := range items {
			items[i].ID = s.genID.Generate()
			items[i].InvoiceID = invoice.ID
		}
		return s.repo.InsertItems(ctx, tx, items)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.InvoiceDetail{}, domain.ErrDuplicateNumber
		}
		return domain.InvoiceDetail{}, err
	}

	s.log.Info("invoice created",
		zap.String("id", invoice.ID.String()),
		zap.String("number", invoice.Number),
	)
	return detail(invoice, items), nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (domain.InvoiceDetail, error) {
	id, err := parseID(req.ID, domain.ErrInvalidID)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}

	patientID, date, status, items, err := validateRequest(req.CreateInvoiceRequest)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	if current == nil {
		return domain.InvoiceDetail{}, domain.ErrNotFound
	}

	totals := domain.ComputeTotals(lineInputs(items))

	invoice := domain.Invoice{
		ID:             id,
		Number:         current.Number,
		PatientID:      patientID,
		Date:           date,
		Status:         status,
		TaxableAmount:  totals.TaxableAmount,
		VATAmount:      totals.VATAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		CreatedAt:      current.CreatedAt,
	}

	// Header rewrite and full item replacement commit together or not at
	// all; a failure mid-way never leaves the invoice with partial items.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateHeader(ctx, tx, &invoice); err != nil {
			return err
		}
		if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = s.genID.Generate()
			items[i].InvoiceID = id
		}
		return s.repo.InsertItems(ctx, tx, items)
	})
	if err != nil {
		return domain.InvoiceDetail{}, err
	}

	return detail(invoice, items), nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error {
	id, err := parseID(req.ID, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	status := domain.InvoiceStatus(strings.TrimSpace(req.Status))
	switch status {
	case domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled:
	default:
		return domain.ErrInvalidStatus
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}

	return s.repo.UpdateStatus(ctx, s.db, id, status)
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteItems(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("invoice deleted", zap.String("id", id.String()))
	return nil
}

// nextNumber assigns the next sequence for the invoice date's fiscal year:
// two-digit year prefix plus the highest existing suffix incremented,
// zero-padded to four digits. The unique index on number is the final guard.
func (s *Service) nextNumber(ctx context.Context, tx *gorm.DB, date string) (string, error) {
	prefix, err := domain.YearPrefix(date)
	if err != nil {
		return "", domain.ErrInvalidDate
	}
	max, err := s.repo.MaxNumberSuffix(ctx, tx, prefix)
	if err != nil {
		return "", err
	}
	return domain.FormatNumber(prefix, max+1), nil
}

func (s *Service) buildSummary(ctx context.Context, row domain.InvoiceRow) (domain.InvoiceSummary, error) {
	itemRows, err := s.repo.ListItems(ctx, s.db, row.ID)
	if err != nil {
		return domain.InvoiceSummary{}, err
	}

	items := make([]domain.ItemView, 0, len(itemRows))
	names := make([]string, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, domain.ItemView{
			InvoiceItem: item.InvoiceItem,
			ServiceName: item.ServiceName,
		})
		if item.ServiceName != "" {
			names = append(names, item.ServiceName)
		}
	}

	return domain.InvoiceSummary{
		Invoice:     row.Invoice,
		PatientName: row.PatientName,
		PatientDNI:  row.PatientDNI,
		Items:       items,
		Services:    strings.Join(names, ", "),
	}, nil
}

func validateRequest(req domain.CreateInvoiceRequest) (snowflake.ID, string, domain.InvoiceStatus, []domain.InvoiceItem, error) {
	patientID, err := parseID(req.PatientID, domain.ErrInvalidPatient)
	if err != nil {
		return 0, "", "", nil, err
	}

	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, "", "", nil, domain.ErrInvalidDate
	}

	status := domain.StatusPending
	if strings.TrimSpace(req.Status) != "" {
		status = domain.InvoiceStatus(strings.TrimSpace(req.Status))
		switch status {
		case domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled:
		default:
			return 0, "", "", nil, domain.ErrInvalidStatus
		}
	}

	if len(req.Items) == 0 {
		return 0, "", "", nil, domain.ErrNoItems
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, line := range req.Items {
		item := domain.InvoiceItem{
			Description:  strings.TrimSpace(line.Description),
			UnitPrice:    line.UnitPrice,
			Units:        line.Units,
			VATRate:      line.VATRate,
			DiscountRate: line.DiscountRate,
		}

		if strings.TrimSpace(line.ServiceID) != "" {
			serviceID, err := parseID(line.ServiceID, domain.ErrInvalidItemService)
			if err != nil {
				return 0, "", "", nil, err
			}
			item.ServiceID = &serviceID
		} else if item.Description == "" {
			return 0, "", "", nil, domain.ErrInvalidItemService
		}

		if !item.UnitPrice.IsPositive() {
			return 0, "", "", nil, domain.ErrInvalidItemPrice
		}
		if item.Units <= 0 {
			return 0, "", "", nil, domain.ErrInvalidItemUnits
		}

		items = append(items, item)
	}

	return patientID, date, status, items, nil
}

func lineInputs(items []domain.InvoiceItem) []domain.LineInput {
	inputs := make([]domain.LineInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, domain.LineInput{
			UnitPrice:    item.UnitPrice,
			Units:        item.Units,
			VATRate:      item.VATRate,
			DiscountRate: item.DiscountRate,
		})
	}
	return inputs
}

func detail(invoice domain.Invoice, items []domain.InvoiceItem) domain.InvoiceDetail {
	views := make([]domain.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, domain.ItemView{InvoiceItem: item})
	}
	return domain.InvoiceDetail{Invoice: invoice, Items: views}
}

func parseID(value string, invalid error) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, invalid
	}
	return id, nil
}
