package service

import (
	"context"
	"strings"
	"time"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/domain"
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
		log:   p.Log.Named("patient.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.PatientSummary, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, req domain.CreatePatientRequest) (domain.Patient, error) {
	patient, err := buildPatient(req)
	if err != nil {
		return domain.Patient{}, err
	}

	exists, err := s.repo.ExistsByDNI(ctx, s.db, patient.DNI, 0)
	if err != nil {
		return domain.Patient{}, err
	}
	if exists {
		return domain.Patient{}, domain.ErrDuplicateDNI
	}

	patient.ID = s.genID.Generate()
	patient.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, s.db, &patient); err != nil {
		return domain.Patient{}, err
	}

	s.log.Info("patient created", zap.String("id", patient.ID.String()))
	return patient, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePatientRequest) (domain.Patient, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Patient{}, err
	}

	patient, err := buildPatient(req.CreatePatientRequest)
	if err != nil {
		return domain.Patient{}, err
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Patient{}, err
	}
	if current == nil {
		return domain.Patient{}, domain.ErrNotFound
	}

	// DNI uniqueness is only re-checked when the DNI actually changes.
	if current.DNI != patient.DNI {
		exists, err := s.repo.ExistsByDNI(ctx, s.db, patient.DNI, id)
		if err != nil {
			return domain.Patient{}, err
		}
		if exists {
			return domain.Patient{}, domain.ErrDuplicateDNI
		}
	}

	patient.ID = id
	patient.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, s.db, &patient); err != nil {
		return domain.Patient{}, err
	}

	return patient, nil
}

func (s *Service) Purge(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
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
		return s.repo.PurgeCascade(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("patient purged", zap.String("id", id.String()))
	return nil
}

func (s *Service) CheckDNI(ctx context.Context, req domain.CheckDNIRequest) (bool, error) {
	dni := strings.TrimSpace(req.DNI)
	if dni == "" {
		return false, domain.ErrInvalidDNI
	}

	var excludeID snowflake.ID
	if strings.TrimSpace(req.ExcludeID) != "" {
		id, err := parseID(req.ExcludeID)
		if err != nil {
			return false, err
		}
		excludeID = id
	}

	return s.repo.ExistsByDNI(ctx, s.db, dni, excludeID)
}

func buildPatient(req domain.CreatePatientRequest) (domain.Patient, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return domain.Patient{}, domain.ErrInvalidFirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return domain.Patient{}, domain.ErrInvalidLastName
	}
	dni := strings.TrimSpace(req.DNI)
	if dni == "" {
		return domain.Patient{}, domain.ErrInvalidDNI
	}
	dob := strings.TrimSpace(req.DOB)
	if dob == "" {
		return domain.Patient{}, domain.ErrInvalidDOB
	}
	cellPhone := strings.TrimSpace(req.CellPhone)
	if cellPhone == "" {
		return domain.Patient{}, domain.ErrInvalidCellPhone
	}

	return domain.Patient{
		FirstName:      firstName,
		LastName:       lastName,
		SecondLastName: strings.TrimSpace(req.SecondLastName),
		DNI:            dni,
		DOB:            dob,
		CellPhone:      cellPhone,
		Email:          strings.TrimSpace(req.Email),
		Address:        strings.TrimSpace(req.Address),
	}, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
