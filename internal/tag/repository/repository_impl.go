package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/tag/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, tag *domain.Tag) error {
	return db.WithContext(ctx).Create(tag).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, tag *domain.Tag) error {
	return db.WithContext(ctx).
		Model(&domain.Tag{}).
		Where("id = ?", tag.ID).
		Updates(map[string]any{
			"name":  tag.Name,
			"color": tag.Color,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM contact_tags WHERE tag_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM tags WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Tag, error) {
	var tag domain.Tag
	err := db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := db.WithContext(ctx).Order("name asc").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
