package service

import (
	"context"
	"strings"
	"time"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
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
		log:   p.Log.Named("provider.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ProviderSummary, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, req domain.CreateProviderRequest) (domain.Provider, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return domain.Provider{}, domain.ErrInvalidFirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return domain.Provider{}, domain.ErrInvalidLastName
	}
	specialty := strings.TrimSpace(req.Specialty)
	if specialty == "" {
		return domain.Provider{}, domain.ErrInvalidSpecialty
	}
	color := strings.TrimSpace(req.Color)
	if color == "" {
		return domain.Provider{}, domain.ErrInvalidColor
	}

	provider := domain.Provider{
		ID:        s.genID.Generate(),
		FirstName: firstName,
		LastName:  lastName,
		Specialty: specialty,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Color:     color,
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &provider); err != nil {
		return domain.Provider{}, err
	}

	s.log.Info("provider created", zap.String("id", provider.ID.String()))
	return provider, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProviderRequest) (domain.Provider, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Provider{}, err
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Provider{}, err
	}
	if current == nil {
		return domain.Provider{}, domain.ErrNotFound
	}

	fields, err := updateFields(req)
	if err != nil {
		return domain.Provider{}, err
	}

	if err := s.repo.UpdateFields(ctx, s.db, id, fields); err != nil {
		return domain.Provider{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Provider{}, err
	}
	if updated == nil {
		return domain.Provider{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Deactivate(ctx context.Context, rawID string) error {
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

	err = s.repo.UpdateFields(ctx, s.db, id, map[string]any{"status": domain.StatusInactive})
	if err != nil {
		return err
	}

	s.log.Info("provider deactivated", zap.String("id", id.String()))
	return nil
}

// updateFields validates the partial update and emits assignments only for
// supplied fields.
func updateFields(req domain.UpdateProviderRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.FirstName != nil {
		v := strings.TrimSpace(*req.FirstName)
		if v == "" {
			return nil, domain.ErrInvalidFirstName
		}
		fields["firstName"] = v
	}
	if req.LastName != nil {
		v := strings.TrimSpace(*req.LastName)
		if v == "" {
			return nil, domain.ErrInvalidLastName
		}
		fields["lastName"] = v
	}
	if req.Specialty != nil {
		v := strings.TrimSpace(*req.Specialty)
		if v == "" {
			return nil, domain.ErrInvalidSpecialty
		}
		fields["specialty"] = v
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Color != nil {
		v := strings.TrimSpace(*req.Color)
		if v == "" {
			return nil, domain.ErrInvalidColor
		}
		fields["color"] = v
	}
	if req.Status != nil {
		switch domain.ProviderStatus(strings.TrimSpace(*req.Status)) {
		case domain.StatusActive, domain.StatusInactive:
			fields["status"] = strings.TrimSpace(*req.Status)
		default:
			return nil, domain.ErrInvalidStatus
		}
	}
	return fields, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
