package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/contact/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
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
		log:   p.Log.Named("contact.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContactRequest) (domain.Contact, error) {
	name, email, err := validateIdentity(req.Name, req.Email)
	if err != nil {
		return domain.Contact{}, err
	}

	companyID, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return domain.Contact{}, err
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return domain.Contact{}, err
	}

	now := time.Now().UTC()
	contact := domain.Contact{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		CompanyID: companyID,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &contact); err != nil {
		return domain.Contact{}, err
	}
	if err := s.repo.ReplaceTags(ctx, s.db, &contact, tags); err != nil {
		return domain.Contact{}, err
	}
	contact.Tags = tags
	return contact, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateContactRequest) (domain.Contact, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Contact{}, err
	}

	name, email, err := validateIdentity(req.Name, req.Email)
	if err != nil {
		return domain.Contact{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Contact{}, err
	}
	if existing == nil {
		return domain.Contact{}, domain.ErrNotFound
	}

	companyID, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return domain.Contact{}, err
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return domain.Contact{}, err
	}

	existing.Name = name
	existing.Email = email
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.CompanyID = companyID
	existing.Notes = strings.TrimSpace(req.Notes)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Contact{}, err
	}
	// An empty submitted set clears every tag.
	if err := s.repo.ReplaceTags(ctx, s.db, existing, tags); err != nil {
		return domain.Contact{}, err
	}
	existing.Tags = tags
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Contact, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Contact{}, err
	}

	contact, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Contact{}, err
	}
	if contact == nil {
		return domain.Contact{}, domain.ErrNotFound
	}
	return *contact, nil
}

func (s *Service) List(ctx context.Context, req domain.ListContactRequest) (domain.ListContactResponse, error) {
	filter := domain.ListContactFilter{
		Query: strings.TrimSpace(req.Query),
	}

	// Unknown ids or grouping modes on a list screen never error, the
	// filter is simply not applied.
	if raw := strings.TrimSpace(req.CompanyID); raw != "" {
		if id, err := snowflake.ParseString(raw); err == nil && id != 0 {
			filter.CompanyID = &id
		}
	}
	if raw := strings.TrimSpace(req.TagID); raw != "" {
		if id, err := snowflake.ParseString(raw); err == nil && id != 0 {
			filter.TagID = &id
		}
	}
	switch req.Group {
	case domain.GroupByCompany, domain.GroupByTag:
		filter.Group = req.Group
	}

	contacts, info, err := s.repo.List(ctx, s.db, filter, req.Page)
	if err != nil {
		return domain.ListContactResponse{}, err
	}
	return domain.ListContactResponse{PageInfo: info, Contacts: contacts, Group: filter.Group}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.ListAll(ctx, s.db)
}

func (s *Service) resolveCompany(ctx context.Context, raw string) (*snowflake.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(raw)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidCompany
	}
	exists, err := s.repo.CompanyExists(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidCompany
	}
	return &id, nil
}

func (s *Service) resolveTags(ctx context.Context, rawIDs []string) ([]tagdomain.Tag, error) {
	seen := make(map[snowflake.ID]struct{}, len(rawIDs))
	ids := make([]snowflake.ID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return nil, domain.ErrInvalidTag
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	tags, err := s.repo.FindTags(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, domain.ErrInvalidTag
	}
	return tags, nil
}

func validateIdentity(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", domain.ErrInvalidName
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", domain.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", domain.ErrInvalidEmail
	}
	return name, email, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
