package service

import (
	"context"

	"github.com/thelightspeed/crm/internal/dashboard/domain"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("dashboard.service"),
		repo: p.Repo,
	}
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	contacts, err := s.repo.CountContacts(ctx, s.db)
	if err != nil {
		return domain.Summary{}, err
	}

	opportunities, err := s.repo.CountOpportunities(ctx, s.db)
	if err != nil {
		return domain.Summary{}, err
	}

	pipelineValue, err := s.repo.SumOpportunityValueExcluding(ctx, s.db, opportunitydomain.StateLost)
	if err != nil {
		return domain.Summary{}, err
	}

	byState, err := s.repo.CountOpportunitiesByState(ctx, s.db)
	if err != nil {
		return domain.Summary{}, err
	}
	// Every bucket shows up, even when empty.
	for _, state := range opportunitydomain.States() {
		if _, ok := byState[state]; !ok {
			byState[state] = 0
		}
	}

	recent, err := s.repo.RecentActivities(ctx, s.db, domain.RecentActivityLimit)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{
		ContactCount:       contacts,
		OpportunityCount:   opportunities,
		PipelineValueCents: pipelineValue,
		CountsByState:      byState,
		RecentActivities:   recent,
	}, nil
}
