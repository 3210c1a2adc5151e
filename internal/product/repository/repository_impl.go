package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"quantity":    product.Quantity,
			"price_cents": product.PriceCents,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM products WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var products []domain.Product
	err := db.WithContext(ctx).Order("name asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
