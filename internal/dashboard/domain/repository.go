package domain

import (
	"context"

	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	"gorm.io/gorm"
)

type Repository interface {
	CountContacts(ctx context.Context, db *gorm.DB) (int64, error)
	CountOpportunities(ctx context.Context, db *gorm.DB) (int64, error)
	SumOpportunityValueExcluding(ctx context.Context, db *gorm.DB, state string) (int64, error)
	CountOpportunitiesByState(ctx context.Context, db *gorm.DB) (map[string]int64, error)
	RecentActivities(ctx context.Context, db *gorm.DB, limit int) ([]activitydomain.Activity, error)
}
