package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/activity/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, activity *domain.Activity) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, activity *domain.Activity) error {
	return db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]any{
			"type":           activity.Type,
			"title":          activity.Title,
			"description":    activity.Description,
			"occurs_at":      activity.OccursAt,
			"contact_id":     activity.ContactID,
			"opportunity_id": activity.OpportunityID,
			"completed":      activity.Completed,
		}).Error
}

func (r *repo) SetCompleted(ctx context.Context, db *gorm.DB, id snowflake.ID, completed bool) error {
	return db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ?", id).
		Updates(map[string]any{"completed": completed}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM activities WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Activity, error) {
	var activity domain.Activity
	err := db.WithContext(ctx).
		Preload("Contact").
		Preload("Opportunity").
		First(&activity, "activities.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListActivityFilter, page pagination.Pagination) ([]domain.Activity, pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).Model(&domain.Activity{})
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if filter.ContactID != nil {
		stmt = stmt.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.OpportunityID != nil {
		stmt = stmt.Where("opportunity_id = ?", *filter.OpportunityID)
	}
	if filter.From != nil {
		stmt = stmt.Where("occurs_at >= ?", *filter.From)
	}
	if filter.Before != nil {
		stmt = stmt.Where("occurs_at < ?", *filter.Before)
	}
	if filter.Completed != nil {
		stmt = stmt.Where("completed = ?", *filter.Completed)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	info := page.Resolve(total)
	var activities []domain.Activity
	err := info.Apply(stmt).
		Order("occurs_at desc, id desc").
		Preload("Contact").
		Preload("Opportunity").
		Find(&activities).Error
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return activities, info, nil
}

func (r *repo) ListByContact(ctx context.Context, db *gorm.DB, contactID snowflake.ID) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("occurs_at desc, id desc").
		Preload("Opportunity").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repo) ContactExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table("contacts").Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) OpportunityExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table("opportunities").Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
