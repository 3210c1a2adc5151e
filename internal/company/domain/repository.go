package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	Update(ctx context.Context, db *gorm.DB, company *Company) error
	// Delete removes the company after clearing the company reference on
	// dependent contacts. Contacts themselves survive.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Company, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]Company, pagination.PageInfo, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]Company, error)
}
