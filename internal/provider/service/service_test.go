package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/migration"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/repository"
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

func createRequest() domain.CreateProviderRequest {
	return domain.CreateProviderRequest{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Specialty: "Dermatology",
		Color:     "#2563eb",
	}
}

func TestUpdateProviderPartial(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	specialty := "Pediatrics"
	updated, err := svc.Update(ctx, domain.UpdateProviderRequest{
		ID:        created.ID.String(),
		Specialty: &specialty,
	})
	require.NoError(t, err)
	require.Equal(t, "Pediatrics", updated.Specialty)
	// Untouched fields survive a partial update.
	require.Equal(t, "Ana", updated.FirstName)
	require.Equal(t, "#2563eb", updated.Color)
}

func TestUpdateProviderRejectsBlankRequiredField(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	blank := "  "
	_, err = svc.Update(ctx, domain.UpdateProviderRequest{
		ID:        created.ID.String(),
		FirstName: &blank,
	})
	require.ErrorIs(t, err, domain.ErrInvalidFirstName)

	bad := "paused"
	_, err = svc.Update(ctx, domain.UpdateProviderRequest{
		ID:     created.ID.String(),
		Status: &bad,
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDeactivateHidesProviderButKeepsAppointments(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	patientID := node.Generate().Int64()
	require.NoError(t, db.Exec(
		`INSERT INTO patients (id, firstName, lastName, dni, dob, cellPhone)
		 VALUES (?, 'Maria', 'Lopez', '12345678A', '1990-04-12', '600111222')`,
		patientID,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO appointments (id, patientId, providerId, appointmentDate, appointmentTime, duration)
		 VALUES (?, ?, ?, '2025-03-01', '10:00', 30)`,
		node.Generate().Int64(), patientID, created.ID.Int64(),
	).Error)

	require.NoError(t, svc.Deactivate(ctx, created.ID.String()))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM appointments").Scan(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestListCountsAppointments(t *testing.T) {
	svc, db, node := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	patientID := node.Generate().Int64()
	require.NoError(t, db.Exec(
		`INSERT INTO patients (id, firstName, lastName, dni, dob, cellPhone)
		 VALUES (?, 'Maria', 'Lopez', '12345678A', '1990-04-12', '600111222')`,
		patientID,
	).Error)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Exec(
			`INSERT INTO appointments (id, patientId, providerId, appointmentDate, appointmentTime, duration)
			 VALUES (?, ?, ?, '2025-03-01', ?, 30)`,
			node.Generate().Int64(), patientID, created.ID.Int64(), fmt.Sprintf("1%d:00", i),
		).Error)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.EqualValues(t, 2, list[0].AppointmentCount)
}

func TestDeactivateUnknownProvider(t *testing.T) {
	svc, _, node := setupService(t)

	err := svc.Deactivate(context.Background(), node.Generate().String())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
