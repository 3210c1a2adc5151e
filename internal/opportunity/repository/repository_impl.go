package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/opportunity/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, opportunity *domain.Opportunity) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(opportunity).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, opportunity *domain.Opportunity) error {
	return db.WithContext(ctx).
		Model(&domain.Opportunity{}).
		Where("id = ?", opportunity.ID).
		Updates(map[string]any{
			"title":       opportunity.Title,
			"value_cents": opportunity.ValueCents,
			"state":       opportunity.State,
			"close_date":  opportunity.CloseDate,
			"contact_id":  opportunity.ContactID,
			"notes":       opportunity.Notes,
			"updated_at":  opportunity.UpdatedAt,
		}).Error
}

func (r *repo) UpdateState(ctx context.Context, db *gorm.DB, id snowflake.ID, state string) error {
	return db.WithContext(ctx).
		Model(&domain.Opportunity{}).
		Where("id = ?", id).
		Updates(map[string]any{"state": state}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM activities WHERE opportunity_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM opportunities WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Opportunity, error) {
	var opportunity domain.Opportunity
	err := db.WithContext(ctx).
		Preload("Contact").
		First(&opportunity, "opportunities.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &opportunity, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListOpportunityFilter, page pagination.Pagination) ([]domain.Opportunity, pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).Model(&domain.Opportunity{})
	if filter.State != "" {
		stmt = stmt.Where("state = ?", filter.State)
	}
	if filter.ContactID != nil {
		stmt = stmt.Where("contact_id = ?", *filter.ContactID)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	info := page.Resolve(total)
	var opportunities []domain.Opportunity
	err := info.Apply(stmt).
		Order("created_at desc, id desc").
		Preload("Contact").
		Find(&opportunities).Error
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return opportunities, info, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Opportunity, error) {
	var opportunities []domain.Opportunity
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Preload("Contact").
		Find(&opportunities).Error
	if err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (r *repo) ListByContact(ctx context.Context, db *gorm.DB, contactID snowflake.ID) ([]domain.Opportunity, error) {
	var opportunities []domain.Opportunity
	err := db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at desc, id desc").
		Find(&opportunities).Error
	if err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (r *repo) ContactExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table("contacts").Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
