package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/opportunity/domain"
	"github.com/thelightspeed/crm/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const closeDateLayout = "2006-01-02"

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
		log:   p.Log.Named("opportunity.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOpportunityRequest) (domain.Opportunity, error) {
	fields, err := s.validate(ctx, req.Title, req.Value, req.State, req.CloseDate, req.ContactID)
	if err != nil {
		return domain.Opportunity{}, err
	}

	now := time.Now().UTC()
	opportunity := domain.Opportunity{
		ID:         s.genID.Generate(),
		Title:      fields.title,
		ValueCents: fields.valueCents,
		State:      fields.state,
		CloseDate:  fields.closeDate,
		ContactID:  fields.contactID,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &opportunity); err != nil {
		return domain.Opportunity{}, err
	}
	return opportunity, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateOpportunityRequest) (domain.Opportunity, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Opportunity{}, err
	}

	fields, err := s.validate(ctx, req.Title, req.Value, req.State, req.CloseDate, req.ContactID)
	if err != nil {
		return domain.Opportunity{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Opportunity{}, err
	}
	if existing == nil {
		return domain.Opportunity{}, domain.ErrNotFound
	}

	existing.Title = fields.title
	existing.ValueCents = fields.valueCents
	existing.State = fields.state
	existing.CloseDate = fields.closeDate
	existing.ContactID = fields.contactID
	existing.Notes = strings.TrimSpace(req.Notes)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Opportunity{}, err
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Opportunity, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Opportunity{}, err
	}

	opportunity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Opportunity{}, err
	}
	if opportunity == nil {
		return domain.Opportunity{}, domain.ErrNotFound
	}
	return *opportunity, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOpportunityRequest) (domain.ListOpportunityResponse, error) {
	filter := domain.ListOpportunityFilter{}

	// Unknown filter values on a list screen are simply not applied.
	if state := strings.TrimSpace(req.State); domain.IsValidState(state) {
		filter.State = state
	}
	if raw := strings.TrimSpace(req.ContactID); raw != "" {
		if id, err := snowflake.ParseString(raw); err == nil && id != 0 {
			filter.ContactID = &id
		}
	}

	opportunities, info, err := s.repo.List(ctx, s.db, filter, req.Page)
	if err != nil {
		return domain.ListOpportunityResponse{}, err
	}
	return domain.ListOpportunityResponse{PageInfo: info, Opportunities: opportunities}, nil
}

func (s *Service) ListByContact(ctx context.Context, rawContactID string) ([]domain.Opportunity, error) {
	contactID, err := parseID(rawContactID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByContact(ctx, s.db, contactID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Opportunity, error) {
	return s.repo.ListAll(ctx, s.db)
}

func (s *Service) Pipeline(ctx context.Context) (domain.Pipeline, error) {
	all, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.Pipeline{}, err
	}

	byState := make(map[string][]domain.Opportunity, 4)
	for _, opportunity := range all {
		byState[opportunity.State] = append(byState[opportunity.State], opportunity)
	}

	pipeline := domain.Pipeline{}
	for _, state := range domain.States() {
		pipeline.Buckets = append(pipeline.Buckets, domain.PipelineBucket{
			State:         state,
			Opportunities: byState[state],
		})
	}
	return pipeline, nil
}

func (s *Service) UpdateState(ctx context.Context, rawID, state string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	state = strings.TrimSpace(state)
	if !domain.IsValidState(state) {
		return domain.ErrInvalidState
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	return s.repo.UpdateState(ctx, s.db, id, state)
}

type validated struct {
	title      string
	valueCents int64
	state      string
	closeDate  datatypes.Date
	contactID  snowflake.ID
}

// validate checks the required fields. The state is stored as typed; only
// the dedicated UpdateState action restricts it to the known members.
func (s *Service) validate(ctx context.Context, title, value, state, closeDate, contactID string) (validated, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return validated{}, domain.ErrInvalidTitle
	}

	cents, err := money.ParseCents(value)
	if err != nil {
		return validated{}, domain.ErrInvalidValue
	}

	state = strings.TrimSpace(state)
	if state == "" {
		state = domain.StateNew
	}

	parsed, err := time.Parse(closeDateLayout, strings.TrimSpace(closeDate))
	if err != nil {
		return validated{}, domain.ErrInvalidCloseDate
	}

	id, err := snowflake.ParseString(strings.TrimSpace(contactID))
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

	return validated{
		title:      title,
		valueCents: cents,
		state:      state,
		closeDate:  datatypes.Date(parsed),
		contactID:  id,
	}, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
