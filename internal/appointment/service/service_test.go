package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/migration"
	providerdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	providerrepository "github.com/TabariqAwabUllah/Clinic-Management/internal/provider/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T, conflictMode string) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s-%s?mode=memory&cache=shared", t.Name(), conflictMode)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.EnsureSchema(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Cfg:          config.Config{ConflictMode: conflictMode},
		DB:           db,
		Log:          zap.NewNop(),
		GenID:        node,
		Repo:         repository.Provide(),
		ProviderRepo: providerrepository.Provide(),
	})
	return svc, db, node
}

func seedProvider(t *testing.T, db *gorm.DB, node *snowflake.Node) snowflake.ID {
	t.Helper()
	id := node.Generate()
	require.NoError(t, db.Exec(
		`INSERT INTO providers (id, firstName, lastName, specialty, color)
		 VALUES (?, 'Ana', 'Ruiz', 'Dermatology', '#2563eb')`,
		id.Int64(),
	).Error)
	return id
}

func bookingRequest(providerID, patientID snowflake.ID, clock string, duration int) domain.CreateAppointmentRequest {
	return domain.CreateAppointmentRequest{
		PatientID:  patientID.String(),
		ProviderID: providerID.String(),
		Date:       "2025-03-01",
		Time:       clock,
		Duration:   duration,
	}
}

func TestCreateAppointmentRejectsOverlappingSlot(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	_, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(ctx, bookingRequest(providerID, patientID, "10:15", 30))
	require.ErrorIs(t, err, domain.ErrSlotTaken)

	// A different provider is free to take the same slot.
	otherProvider := seedProvider(t, db, node)
	_, err = svc.Create(ctx, bookingRequest(otherProvider, patientID, "10:15", 30))
	require.NoError(t, err)
}

func TestCreateAppointmentIgnoresCancelledSlots(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	booked, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, domain.UpdateStatusRequest{
		ID:     booked.ID.String(),
		Status: "cancelled",
	}))

	_, err = svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)
}

func TestConflictModeSelectsContainmentBehavior(t *testing.T) {
	// An existing 30-minute slot strictly inside a 90-minute candidate is
	// invisible to the endpoint test but caught by the overlap test.
	legacy, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	_, err := legacy.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	_, err = legacy.Create(ctx, bookingRequest(providerID, patientID, "09:45", 90))
	require.NoError(t, err)

	strict, db, node := setupService(t, config.ConflictModeOverlap)
	providerID = seedProvider(t, db, node)
	patientID = node.Generate()

	_, err = strict.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	_, err = strict.Create(ctx, bookingRequest(providerID, patientID, "09:45", 90))
	require.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestUpdateAppointmentKeepsOwnSlot(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	booked, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	req := bookingRequest(providerID, patientID, "10:00", 30)
	req.Notes = "follow-up"
	updated, err := svc.Update(ctx, domain.UpdateAppointmentRequest{
		ID:                       booked.ID.String(),
		CreateAppointmentRequest: req,
	})
	require.NoError(t, err)
	require.Equal(t, "follow-up", updated.Notes)
}

func TestCheckConflictExcludesAppointment(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	booked, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	conflict, err := svc.CheckConflict(ctx, domain.CheckConflictRequest{
		Date:       "2025-03-01",
		Time:       "10:00",
		Duration:   30,
		ProviderID: providerID.String(),
	})
	require.NoError(t, err)
	require.True(t, conflict)

	conflict, err = svc.CheckConflict(ctx, domain.CheckConflictRequest{
		Date:       "2025-03-01",
		Time:       "10:00",
		Duration:   30,
		ProviderID: providerID.String(),
		ExcludeID:  booked.ID.String(),
	})
	require.NoError(t, err)
	require.False(t, conflict)
}

func TestCreateAppointmentUnknownProvider(t *testing.T) {
	svc, _, node := setupService(t, config.ConflictModeEndpoints)

	_, err := svc.Create(context.Background(), bookingRequest(node.Generate(), node.Generate(), "10:00", 30))
	require.ErrorIs(t, err, providerdomain.ErrNotFound)
}

func TestUpdateStatusIsIdempotent(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	booked, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 30))
	require.NoError(t, err)

	req := domain.UpdateStatusRequest{ID: booked.ID.String(), Status: "completed"}
	require.NoError(t, svc.UpdateStatus(ctx, req))
	require.NoError(t, svc.UpdateStatus(ctx, req))

	err = svc.UpdateStatus(ctx, domain.UpdateStatusRequest{ID: booked.ID.String(), Status: "done"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	err = svc.UpdateStatus(ctx, domain.UpdateStatusRequest{ID: node.Generate().String(), Status: "completed"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAppointmentDefaultsDurationAndStatus(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	booked, err := svc.Create(ctx, bookingRequest(providerID, patientID, "10:00", 0))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultDuration, booked.Duration)
	require.Equal(t, domain.StatusScheduled, booked.Status)
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, db, node := setupService(t, config.ConflictModeEndpoints)
	ctx := context.Background()
	providerID := seedProvider(t, db, node)
	patientID := node.Generate()

	req := bookingRequest(providerID, patientID, "10:00", 30)
	req.PatientID = ""
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidPatient)

	req = bookingRequest(providerID, patientID, "10:00", 30)
	req.Date = "01/03/2025"
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDate)

	req = bookingRequest(providerID, patientID, "25:00", 30)
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidTime)
}
