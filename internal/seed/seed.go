package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"gorm.io/gorm"
)

var defaultTags = []tagdomain.Tag{
	{Name: "Cliente", Color: "#2ecc71"},
	{Name: "Prospecto", Color: "#3498db"},
	{Name: "Proveedor", Color: "#9b59b6"},
	{Name: "VIP", Color: "#e67e22"},
}

// EnsureDefaultTags seeds the starter tag palette on first boot. It is a
// no-op once any tag exists so user-managed tags are never touched.
func EnsureDefaultTags(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&tagdomain.Tag{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, tag := range defaultTags {
			tag.ID = node.Generate()
			if err := tx.WithContext(ctx).Create(&tag).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
