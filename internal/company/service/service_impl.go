package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/company/domain"
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
		log:   p.Log.Named("company.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCompanyRequest) (domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Company{}, domain.ErrInvalidName
	}

	company := domain.Company{
		ID:        s.genID.Generate(),
		Name:      name,
		Website:   strings.TrimSpace(req.Website),
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &company); err != nil {
		return domain.Company{}, err
	}
	return company, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCompanyRequest) (domain.Company, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Company{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Company{}, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Company{}, err
	}
	if existing == nil {
		return domain.Company{}, domain.ErrNotFound
	}

	existing.Name = name
	existing.Website = strings.TrimSpace(req.Website)
	existing.Address = strings.TrimSpace(req.Address)
	existing.Phone = strings.TrimSpace(req.Phone)

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Company{}, err
	}
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Company, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Company{}, err
	}

	company, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Company{}, err
	}
	if company == nil {
		return domain.Company{}, domain.ErrNotFound
	}
	return *company, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCompanyRequest) (domain.ListCompanyResponse, error) {
	companies, info, err := s.repo.List(ctx, s.db, req.Page)
	if err != nil {
		return domain.ListCompanyResponse{}, err
	}
	return domain.ListCompanyResponse{PageInfo: info, Companies: companies}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Company, error) {
	return s.repo.ListAll(ctx, s.db)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
