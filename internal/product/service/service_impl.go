package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/product/domain"
	"github.com/thelightspeed/crm/pkg/money"
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
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	fields, err := validate(req.Name, req.Quantity, req.Price)
	if err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:         s.genID.Generate(),
		Name:       fields.name,
		Quantity:   fields.quantity,
		PriceCents: fields.priceCents,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	fields, err := validate(req.Name, req.Quantity, req.Price)
	if err != nil {
		return domain.Product{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if existing == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	existing.Name = fields.name
	existing.Quantity = fields.quantity
	existing.PriceCents = fields.priceCents

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Product{}, err
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx, s.db)
}

type validated struct {
	name       string
	quantity   int64
	priceCents int64
}

func validate(name, quantity, price string) (validated, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return validated{}, domain.ErrInvalidName
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(quantity), 10, 64)
	if err != nil || qty < 0 {
		return validated{}, domain.ErrInvalidQuantity
	}

	cents, err := money.ParseCents(price)
	if err != nil || cents < 0 {
		return validated{}, domain.ErrInvalidPrice
	}

	return validated{name: name, quantity: qty, priceCents: cents}, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
