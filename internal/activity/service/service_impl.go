package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/activity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout          = "2006-01-02"
	datetimeLocalLayout = "2006-01-02T15:04"
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
		log:   p.Log.Named("activity.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateActivityRequest) (domain.Activity, error) {
	fields, err := s.validate(ctx, req.Type, req.Title, req.When, req.ContactID, req.OpportunityID)
	if err != nil {
		return domain.Activity{}, err
	}

	activity := domain.Activity{
		ID:            s.genID.Generate(),
		Type:          fields.activityType,
		Title:         fields.title,
		Description:   strings.TrimSpace(req.Description),
		OccursAt:      fields.occursAt,
		ContactID:     fields.contactID,
		OpportunityID: fields.opportunityID,
		Completed:     req.Completed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &activity); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateActivityRequest) (domain.Activity, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Activity{}, err
	}

	fields, err := s.validate(ctx, req.Type, req.Title, req.When, req.ContactID, req.OpportunityID)
	if err != nil {
		return domain.Activity{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Activity{}, err
	}
	if existing == nil {
		return domain.Activity{}, domain.ErrNotFound
	}

	existing.Type = fields.activityType
	existing.Title = fields.title
	existing.Description = strings.TrimSpace(req.Description)
	existing.OccursAt = fields.occursAt
	existing.ContactID = fields.contactID
	existing.OpportunityID = fields.opportunityID
	existing.Completed = req.Completed

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Activity{}, err
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Activity, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Activity{}, err
	}

	activity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Activity{}, err
	}
	if activity == nil {
		return domain.Activity{}, domain.ErrNotFound
	}
	return *activity, nil
}

func (s *Service) List(ctx context.Context, req domain.ListActivityRequest) (domain.ListActivityResponse, error) {
	filter := domain.ListActivityFilter{Completed: req.Completed}

	// Unknown types, bad ids and unparsable dates leave the filter
	// unapplied rather than erroring.
	if t := strings.TrimSpace(req.Type); domain.IsValidType(t) {
		filter.Type = t
	}
	if raw := strings.TrimSpace(req.ContactID); raw != "" {
		if id, err := snowflake.ParseString(raw); err == nil && id != 0 {
			filter.ContactID = &id
		}
	}
	if raw := strings.TrimSpace(req.OpportunityID); raw != "" {
		if id, err := snowflake.ParseString(raw); err == nil && id != 0 {
			filter.OpportunityID = &id
		}
	}
	if raw := strings.TrimSpace(req.DateFrom); raw != "" {
		if parsed, err := time.Parse(dateLayout, raw); err == nil {
			from := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			filter.From = &from
		}
	}
	if raw := strings.TrimSpace(req.DateTo); raw != "" {
		if parsed, err := time.Parse(dateLayout, raw); err == nil {
			// Inclusive of the entire end day.
			before := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
			filter.Before = &before
		}
	}

	activities, info, err := s.repo.List(ctx, s.db, filter, req.Page)
	if err != nil {
		return domain.ListActivityResponse{}, err
	}
	return domain.ListActivityResponse{PageInfo: info, Activities: activities}, nil
}

func (s *Service) ListByContact(ctx context.Context, rawContactID string) ([]domain.Activity, error) {
	contactID, err := parseID(rawContactID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByContact(ctx, s.db, contactID)
}

func (s *Service) ToggleCompleted(ctx context.Context, rawID string) error {
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

	return s.repo.SetCompleted(ctx, s.db, id, !existing.Completed)
}

type validated struct {
	activityType  string
	title         string
	occursAt      time.Time
	contactID     *snowflake.ID
	opportunityID *snowflake.ID
}

func (s *Service) validate(ctx context.Context, activityType, title, when, contactID, opportunityID string) (validated, error) {
	activityType = strings.TrimSpace(activityType)
	if !domain.IsValidType(activityType) {
		return validated{}, domain.ErrInvalidType
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return validated{}, domain.ErrInvalidTitle
	}

	occursAt, err := parseWhen(when)
	if err != nil {
		return validated{}, err
	}

	fields := validated{activityType: activityType, title: title, occursAt: occursAt}

	if raw := strings.TrimSpace(contactID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return validated{}, domain.ErrInvalidContact
		}
		exists, err := s.repo.ContactExists(ctx, s.db, id)
		if err != nil {
			return validated{}, err
		}
		if !exists {
			return validated{}, domain.ErrInvalidContact
		}
		fields.contactID = &id
	}

	if raw := strings.TrimSpace(opportunityID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return validated{}, domain.ErrInvalidOpportunity
		}
		exists, err := s.repo.OpportunityExists(ctx, s.db, id)
		if err != nil {
			return validated{}, err
		}
		if !exists {
			return validated{}, domain.ErrInvalidOpportunity
		}
		fields.opportunityID = &id
	}

	return fields, nil
}

func parseWhen(when string) (time.Time, error) {
	when = strings.TrimSpace(when)
	if when == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range []string{datetimeLocalLayout, "2006-01-02 15:04", dateLayout} {
		if parsed, err := time.Parse(layout, when); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrInvalidWhen
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
