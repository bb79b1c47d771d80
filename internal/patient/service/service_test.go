package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/migration"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
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

func createRequest(dni string) domain.CreatePatientRequest {
	return domain.CreatePatientRequest{
		FirstName: "Maria",
		LastName:  "Lopez",
		DNI:       dni,
		DOB:       "1990-04-12",
		CellPhone: "600111222",
	}
}

func TestCreatePatientRejectsDuplicateDNI(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("12345678A"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("12345678A"))
	require.ErrorIs(t, err, domain.ErrDuplicateDNI)
}

func TestUpdatePatientKeepsOwnDNI(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("12345678A"))
	require.NoError(t, err)

	req := createRequest("12345678A")
	req.FirstName = "Lucia"
	updated, err := svc.Update(ctx, domain.UpdatePatientRequest{
		ID:                   created.ID.String(),
		CreatePatientRequest: req,
	})
	require.NoError(t, err)
	require.Equal(t, "Lucia", updated.FirstName)
	require.Equal(t, created.ID, updated.ID)
}

func TestUpdatePatientRejectsTakenDNI(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("12345678A"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, createRequest("87654321B"))
	require.NoError(t, err)

	req := createRequest("12345678A")
	_, err = svc.Update(ctx, domain.UpdatePatientRequest{
		ID:                   second.ID.String(),
		CreatePatientRequest: req,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateDNI)
}

func TestCheckDNIExcludesOwnRecord(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("12345678A"))
	require.NoError(t, err)

	exists, err := svc.CheckDNI(ctx, domain.CheckDNIRequest{DNI: "12345678A"})
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = svc.CheckDNI(ctx, domain.CheckDNIRequest{
		DNI:       "12345678A",
		ExcludeID: created.ID.String(),
	})
	require.NoError(t, err)
	require.False(t, exists)
}

func TestPurgeCascadesToAppointmentsAndInvoices(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("12345678A"))
	require.NoError(t, err)

	providerID := node.Generate().Int64()
	require.NoError(t, db.Exec(
		`INSERT INTO providers (id, firstName, lastName, color) VALUES (?, 'Ana', 'Ruiz', '#abc123')`,
		providerID,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO appointments (id, patientId, providerId, appointmentDate, appointmentTime, duration)
		 VALUES (?, ?, ?, '2025-03-01', '10:00', 30)`,
		node.Generate().Int64(), created.ID.Int64(), providerID,
	).Error)

	invoiceID := node.Generate().Int64()
	require.NoError(t, db.Exec(
		`INSERT INTO invoices (id, number, patientId, date, taxableAmount, totalAmount)
		 VALUES (?, '250001', ?, '2025-03-01', 100, 121)`,
		invoiceID, created.ID.Int64(),
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO invoice_items (id, invoiceId, description, unitPrice, units, vatRate)
		 VALUES (?, ?, 'Consultation', 100, 1, 21)`,
		node.Generate().Int64(), invoiceID,
	).Error)

	require.NoError(t, svc.Purge(ctx, created.ID.String()))

	for _, table := range []string{"patients", "appointments", "invoices", "invoice_items"} {
		var count int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM "+table).Scan(&count).Error)
		require.Zero(t, count, "table %s not emptied", table)
	}
}

func TestPurgeUnknownPatient(t *testing.T) {
	svc, _, node := setupService(t)

	err := svc.Purge(context.Background(), node.Generate().String())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePatientValidation(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	req := createRequest("12345678A")
	req.FirstName = ""
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidFirstName)

	req = createRequest("")
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDNI)

	req = createRequest("12345678A")
	req.DOB = ""
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDOB)

	req = createRequest("12345678A")
	req.CellPhone = " "
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidCellPhone)
}
