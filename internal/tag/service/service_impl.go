package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/tag/domain"
	"github.com/thelightspeed/crm/pkg/db"
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
		log:   p.Log.Named("tag.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTagRequest) (domain.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Tag{}, domain.ErrInvalidName
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = domain.DefaultColor
	}

	tag := domain.Tag{
		ID:    s.genID.Generate(),
		Name:  name,
		Color: color,
	}

	if err := s.repo.Insert(ctx, s.db, &tag); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Tag{}, domain.ErrDuplicateName
		}
		return domain.Tag{}, err
	}
	return tag, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTagRequest) (domain.Tag, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Tag{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Tag{}, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tag{}, err
	}
	if existing == nil {
		return domain.Tag{}, domain.ErrNotFound
	}

	existing.Name = name
	if color := strings.TrimSpace(req.Color); color != "" {
		existing.Color = color
	}

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Tag{}, domain.ErrDuplicateName
		}
		return domain.Tag{}, err
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Tag, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Tag{}, err
	}

	tag, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tag{}, err
	}
	if tag == nil {
		return domain.Tag{}, domain.ErrNotFound
	}
	return *tag, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.ListAll(ctx, s.db)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
