package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tag *Tag) error
	Update(ctx context.Context, db *gorm.DB, tag *Tag) error
	// Delete removes the tag and its contact associations.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Tag, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]Tag, error)
}
