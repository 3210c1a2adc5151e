package migration

import (
	"github.com/thelightspeed/crm/internal/config"
	"github.com/thelightspeed/crm/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := AutoMigrate(conn); err != nil {
				return err
			}
		}

		if cfg.SeedDefaults {
			return seed.EnsureDefaultTags(conn)
		}
		return nil
	}),
)
