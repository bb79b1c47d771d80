package service

import (
	"context"
	"strings"
	"time"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/catalog/domain"
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
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.CatalogService, error) {
	return s.repo.ListActive(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, req domain.CreateServiceRequest) (domain.CatalogService, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CatalogService{}, domain.ErrInvalidName
	}

	svc := domain.CatalogService{
		ID:        s.genID.Generate(),
		Name:      name,
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &svc); err != nil {
		return domain.CatalogService{}, err
	}

	return svc, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateServiceRequest) (domain.CatalogService, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.CatalogService{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CatalogService{}, domain.ErrInvalidName
	}

	current, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.CatalogService{}, err
	}
	if current == nil {
		return domain.CatalogService{}, domain.ErrNotFound
	}

	if err := s.repo.UpdateName(ctx, s.db, id, name); err != nil {
		return domain.CatalogService{}, err
	}

	current.Name = name
	return *current, nil
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

	err = s.repo.UpdateStatus(ctx, s.db, id, domain.StatusInactive)
	if err != nil {
		return err
	}

	s.log.Info("service deactivated", zap.String("id", id.String()))
	return nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
