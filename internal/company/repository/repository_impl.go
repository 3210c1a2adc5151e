package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/company/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{
			"name":    company.Name,
			"website": company.Website,
			"address": company.Address,
			"phone":   company.Phone,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).Exec(
		`UPDATE contacts SET company_id = NULL WHERE company_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM companies WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]domain.Company, pagination.PageInfo, error) {
	var total int64
	stmt := db.WithContext(ctx).Model(&domain.Company{})
	if err := stmt.Count(&total).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	info := page.Resolve(total)
	var companies []domain.Company
	err := info.Apply(stmt).Order("name asc").Find(&companies).Error
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return companies, info, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var companies []domain.Company
	err := db.WithContext(ctx).Order("name asc").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
