package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListContactFilter struct {
	Query     string
	CompanyID *snowflake.ID
	TagID     *snowflake.ID
	Group     string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, contact *Contact) error
	Update(ctx context.Context, db *gorm.DB, contact *Contact) error
	// ReplaceTags swaps the contact's tag set wholesale for the given tags.
	ReplaceTags(ctx context.Context, db *gorm.DB, contact *Contact, tags []tagdomain.Tag) error
	// Delete removes the contact, its opportunities and every activity
	// referencing either, children first.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Contact, error)
	List(ctx context.Context, db *gorm.DB, filter ListContactFilter, page pagination.Pagination) ([]Contact, pagination.PageInfo, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]Contact, error)
	CompanyExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
	FindTags(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]tagdomain.Tag, error)
}
