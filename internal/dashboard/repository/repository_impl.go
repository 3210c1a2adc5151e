package repository

import (
	"context"

	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/internal/dashboard/domain"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&contactdomain.Contact{}).Count(&count).Error
	return count, err
}

func (r *repo) CountOpportunities(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&opportunitydomain.Opportunity{}).Count(&count).Error
	return count, err
}

func (r *repo) SumOpportunityValueExcluding(ctx context.Context, db *gorm.DB, state string) (int64, error) {
	var total *int64
	err := db.WithContext(ctx).
		Model(&opportunitydomain.Opportunity{}).
		Select("SUM(value_cents)").
		Where("state <> ?", state).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *repo) CountOpportunitiesByState(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		State string
		Count int64
	}
	err := db.WithContext(ctx).
		Model(&opportunitydomain.Opportunity{}).
		Select("state, COUNT(*) as count").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}

func (r *repo) RecentActivities(ctx context.Context, db *gorm.DB, limit int) ([]activitydomain.Activity, error) {
	var activities []activitydomain.Activity
	err := db.WithContext(ctx).
		Order("occurs_at desc, id desc").
		Limit(limit).
		Preload("Contact").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
