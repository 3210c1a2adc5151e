package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/contact/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(contact).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]any{
			"name":       contact.Name,
			"email":      contact.Email,
			"phone":      contact.Phone,
			"company_id": contact.CompanyID,
			"notes":      contact.Notes,
			"updated_at": contact.UpdatedAt,
		}).Error
}

func (r *repo) ReplaceTags(ctx context.Context, db *gorm.DB, contact *domain.Contact, tags []tagdomain.Tag) error {
	return db.WithContext(ctx).Model(contact).Association("Tags").Replace(tags)
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM activities
		 WHERE contact_id = ?
		    OR opportunity_id IN (SELECT id FROM opportunities WHERE contact_id = ?)`,
		id, id,
	).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM opportunities WHERE contact_id = ?`, id,
	).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM contact_tags WHERE contact_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM contacts WHERE id = ?`, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Contact, error) {
	var contact domain.Contact
	err := db.WithContext(ctx).
		Preload("Company").
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("tags.name asc") }).
		First(&contact, "contacts.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListContactFilter, page pagination.Pagination) ([]domain.Contact, pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Contact{}).
		Joins("LEFT JOIN companies ON companies.id = contacts.company_id")

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		stmt = stmt.Where(
			`LOWER(contacts.name) LIKE ? OR LOWER(contacts.email) LIKE ?
			 OR LOWER(contacts.phone) LIKE ? OR LOWER(companies.name) LIKE ?`,
			like, like, like, like,
		)
	}
	if filter.CompanyID != nil {
		stmt = stmt.Where("contacts.company_id = ?", *filter.CompanyID)
	}
	if filter.TagID != nil {
		stmt = stmt.
			Joins("JOIN contact_tags ON contact_tags.contact_id = contacts.id").
			Where("contact_tags.tag_id = ?", *filter.TagID)
	}

	var order string
	switch filter.Group {
	case domain.GroupByCompany:
		order = "companies.name asc, contacts.name asc"
	case domain.GroupByTag:
		// A contact appears once per tag, like ordering a joined result.
		stmt = stmt.
			Joins("LEFT JOIN contact_tags grouping_tags ON grouping_tags.contact_id = contacts.id").
			Joins("LEFT JOIN tags ON tags.id = grouping_tags.tag_id")
		order = "tags.name asc, contacts.name asc"
	default:
		order = "contacts.name asc"
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	info := page.Resolve(total)
	var contacts []domain.Contact
	err := info.Apply(stmt).
		Select("contacts.*").
		Order(order).
		Preload("Company").
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("tags.name asc") }).
		Find(&contacts).Error
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return contacts, info, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := db.WithContext(ctx).
		Order("name asc").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *repo) CompanyExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table("companies").Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) FindTags(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]tagdomain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []tagdomain.Tag
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
