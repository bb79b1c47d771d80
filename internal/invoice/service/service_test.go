package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/migration"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.EnsureSchema(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func seedPatient(t *testing.T, db *gorm.DB, node *snowflake.Node) snowflake.ID {
	t.Helper()
	id := node.Generate()
	require.NoError(t, db.Exec(
		`INSERT INTO patients (id, firstName, lastName, secondLastName, dni, dob, cellPhone)
		 VALUES (?, 'Maria', 'Lopez', 'Garcia', '12345678A', '1990-04-12', '600111222')`,
		id.Int64(),
	).Error)
	return id
}

func invoiceRequest(patientID snowflake.ID, date string) domain.CreateInvoiceRequest {
	return domain.CreateInvoiceRequest{
		PatientID: patientID.String(),
		Date:      date,
		Items: []domain.LineItemRequest{
			{
				Description:  "Consultation",
				UnitPrice:    decimal.NewFromInt(100),
				Units:        2,
				VATRate:      decimal.NewFromInt(21),
				DiscountRate: decimal.NewFromInt(10),
			},
		},
	}
}

func TestCreateInvoiceAssignsSequentialNumbers(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	first, err := svc.Create(ctx, invoiceRequest(patientID, "2025-01-10"))
	require.NoError(t, err)
	require.Equal(t, "250001", first.Number)

	second, err := svc.Create(ctx, invoiceRequest(patientID, "2025-02-20"))
	require.NoError(t, err)
	require.Equal(t, "250002", second.Number)

	// The sequence restarts per fiscal year.
	lastYear, err := svc.Create(ctx, invoiceRequest(patientID, "2024-12-31"))
	require.NoError(t, err)
	require.Equal(t, "240001", lastYear.Number)

	third, err := svc.Create(ctx, invoiceRequest(patientID, "2025-03-01"))
	require.NoError(t, err)
	require.Equal(t, "250003", third.Number)
}

func TestCreateInvoiceHonorsExplicitNumber(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	req := invoiceRequest(patientID, "2019-06-01")
	req.Number = "190042"
	imported, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "190042", imported.Number)

	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrDuplicateNumber)
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	created, err := svc.Create(ctx, invoiceRequest(patientID, "2025-01-10"))
	require.NoError(t, err)

	require.True(t, created.DiscountAmount.Equal(decimal.RequireFromString("20")))
	require.True(t, created.TaxableAmount.Equal(decimal.RequireFromString("200")))
	require.True(t, created.VATAmount.Equal(decimal.RequireFromString("37.8")))
	require.True(t, created.TotalAmount.Equal(decimal.RequireFromString("217.8")))

	// The persisted header carries the same amounts.
	fetched, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	require.True(t, fetched.TotalAmount.Equal(decimal.RequireFromString("217.8")), "total = %s", fetched.TotalAmount)
	require.Equal(t, "Maria Garcia Lopez", fetched.PatientName)
	require.Equal(t, "12345678A", fetched.PatientDNI)
	require.Len(t, fetched.Items, 1)
}

func TestUpdateInvoiceReplacesItems(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	req := invoiceRequest(patientID, "2025-01-10")
	req.Items = append(req.Items, domain.LineItemRequest{
		Description: "Cleaning",
		UnitPrice:   decimal.NewFromInt(60),
		Units:       1,
	})
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, created.Items, 2)

	update := invoiceRequest(patientID, "2025-01-10")
	update.Items[0].Description = "Surgery"
	update.Items[0].UnitPrice = decimal.NewFromInt(500)
	update.Items[0].DiscountRate = decimal.Zero
	update.Items[0].Units = 1
	updated, err := svc.Update(ctx, domain.UpdateInvoiceRequest{
		ID:                   created.ID.String(),
		CreateInvoiceRequest: update,
	})
	require.NoError(t, err)
	require.Equal(t, created.Number, updated.Number)
	require.Len(t, updated.Items, 1)
	require.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("605")), "total = %s", updated.TotalAmount)

	fetched, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	require.Equal(t, "Surgery", fetched.Items[0].Description)
}

func TestDeleteInvoiceRemovesItems(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	created, err := svc.Create(ctx, invoiceRequest(patientID, "2025-01-10"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	require.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM invoice_items").Scan(&count).Error)
	require.Zero(t, count)
}

func TestUpdateInvoiceStatusIsIdempotent(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	created, err := svc.Create(ctx, invoiceRequest(patientID, "2025-01-10"))
	require.NoError(t, err)

	req := domain.UpdateStatusRequest{ID: created.ID.String(), Status: "completed"}
	require.NoError(t, svc.UpdateStatus(ctx, req))
	require.NoError(t, svc.UpdateStatus(ctx, req))

	err = svc.UpdateStatus(ctx, domain.UpdateStatusRequest{ID: created.ID.String(), Status: "paid"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()
	patientID := seedPatient(t, db, node)

	req := invoiceRequest(patientID, "2025-01-10")
	req.Items = nil
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrNoItems)

	req = invoiceRequest(patientID, "10/01/2025")
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDate)

	req = invoiceRequest(patientID, "2025-01-10")
	req.Items[0].Description = ""
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidItemService)

	req = invoiceRequest(patientID, "2025-01-10")
	req.Items[0].UnitPrice = decimal.Zero
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidItemPrice)

	req = invoiceRequest(patientID, "2025-01-10")
	req.Items[0].Units = 0
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidItemUnits)
}
