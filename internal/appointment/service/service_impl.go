package service

import (
	"context"
	"strings"
	"time"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	providerdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	ProviderRepo providerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	providerRepo providerdomain.Repository
	conflictMode string
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("appointment.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		providerRepo: p.ProviderRepo,
		conflictMode: p.Cfg.ConflictMode,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.AppointmentSummary, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, req domain.CreateAppointmentRequest) (domain.Appointment, error) {
	appointment, err := s.buildAppointment(req)
	if err != nil {
		return domain.Appointment{}, err
	}

	if err := s.ensureProviderExists(ctx, appointment.ProviderID); err != nil {
		return domain.Appointment{}, err
	}

	conflict, err := s.hasConflict(ctx, appointment.Date, appointment.Time, appointment.Duration, appointment.ProviderID, 0)
	if err != nil {
		return domain.Appointment{}, err
	}
	if conflict {
		return domain.Appointment{}, domain.ErrSlotTaken
	}

	appointment.ID = s.genID.Generate()
	appointment.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, s.db, &appointment); err != nil {
		return domain.Appointment{}, err
	}

	s.log.Info("appointment booked",
		zap.String("id", appointment.ID.String()),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time),
	)
	return appointment, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateAppointmentRequest) (domain.Appointment, error) {
	id, err := parseID(req.ID, domain.ErrInvalidID)
	if err != nil {
		return domain.Appointment{}, err
	}

	appointment, err := s.buildAppointment(req.CreateAppointmentRequest)
	if err != nil {
		return domain.Appointment{}, err
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if current == nil {
		return domain.Appointment{}, domain.ErrNotFound
	}

	if err := s.ensureProviderExists(ctx, appointment.ProviderID); err != nil {
		return domain.Appointment{}, err
	}

	// The appointment being edited is excluded so it can keep its own slot.
	conflict, err := s.hasConflict(ctx, appointment.Date, appointment.Time, appointment.Duration, appointment.ProviderID, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if conflict {
		return domain.Appointment{}, domain.ErrSlotTaken
	}

	appointment.ID = id
	appointment.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, s.db, &appointment); err != nil {
		return domain.Appointment{}, err
	}

	return appointment, nil
}

func (s *Service) CheckConflict(ctx context.Context, req domain.CheckConflictRequest) (bool, error) {
	providerID, err := parseID(req.ProviderID, domain.ErrInvalidProvider)
	if err != nil {
		return false, err
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		return false, domain.ErrInvalidDate
	}

	clock := strings.TrimSpace(req.Time)
	if _, err := domain.ParseClock(clock); err != nil {
		return false, domain.ErrInvalidTime
	}

	duration := req.Duration
	if duration <= 0 {
		duration = domain.DefaultDuration
	}

	var excludeID snowflake.ID
	if strings.TrimSpace(req.ExcludeID) != "" {
		excludeID, err = parseID(req.ExcludeID, domain.ErrInvalidID)
		if err != nil {
			return false, err
		}
	}

	return s.hasConflict(ctx, date, clock, duration, providerID, excludeID)
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) error {
	id, err := parseID(req.ID, domain.ErrInvalidID)
	if err != nil {
		return err
	}

	status := domain.AppointmentStatus(strings.TrimSpace(req.Status))
	switch status {
	case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled:
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

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) hasConflict(ctx context.Context, date, clock string, duration int, providerID, excludeID snowflake.ID) (bool, error) {
	start, err := domain.ParseClock(clock)
	if err != nil {
		return false, domain.ErrInvalidTime
	}
	candidate := domain.Slot{Start: start, Duration: duration}

	booked, err := s.repo.ListForProviderDate(ctx, s.db, providerID, date, excludeID)
	if err != nil {
		return false, err
	}

	existing := make([]domain.Slot, 0, len(booked))
	for _, appointment := range booked {
		bookedStart, err := domain.ParseClock(appointment.Time)
		if err != nil {
			s.log.Warn("skipping appointment with malformed time",
				zap.String("id", appointment.ID.String()),
				zap.String("time", appointment.Time),
			)
			continue
		}
		bookedDuration := appointment.Duration
		if bookedDuration <= 0 {
			bookedDuration = domain.DefaultDuration
		}
		existing = append(existing, domain.Slot{Start: bookedStart, Duration: bookedDuration})
	}

	if s.conflictMode == config.ConflictModeOverlap {
		return domain.HasOverlapConflict(candidate, existing), nil
	}
	return domain.HasEndpointConflict(candidate, existing), nil
}

func (s *Service) ensureProviderExists(ctx context.Context, providerID snowflake.ID) error {
	provider, err := s.providerRepo.FindByID(ctx, s.db, providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return providerdomain.ErrNotFound
	}
	return nil
}

func (s *Service) buildAppointment(req domain.CreateAppointmentRequest) (domain.Appointment, error) {
	patientID, err := parseID(req.PatientID, domain.ErrInvalidPatient)
	if err != nil {
		return domain.Appointment{}, err
	}
	providerID, err := parseID(req.ProviderID, domain.ErrInvalidProvider)
	if err != nil {
		return domain.Appointment{}, err
	}

	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.Appointment{}, domain.ErrInvalidDate
	}

	clock := strings.TrimSpace(req.Time)
	if _, err := domain.ParseClock(clock); err != nil {
		return domain.Appointment{}, domain.ErrInvalidTime
	}

	duration := req.Duration
	if duration <= 0 {
		duration = domain.DefaultDuration
	}

	status := domain.StatusScheduled
	if strings.TrimSpace(req.Status) != "" {
		status = domain.AppointmentStatus(strings.TrimSpace(req.Status))
		switch status {
		case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled:
		default:
			return domain.Appointment{}, domain.ErrInvalidStatus
		}
	}

	return domain.Appointment{
		PatientID:   patientID,
		ProviderID:  providerID,
		ServiceType: strings.TrimSpace(req.ServiceType),
		Date:        date,
		Time:        clock,
		Duration:    duration,
		Notes:       req.Notes,
		Status:      status,
	}, nil
}

func parseID(value string, invalid error) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, invalid
	}
	return id, nil
}
