package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/bharatbooks/bharatbooks/internal/config"
	"github.com/bharatbooks/bharatbooks/internal/seed"
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
			// sqlite and mysql development databases take the schema
			// straight from the models.
			if err := autoMigrate(conn); err != nil {
				return err
			}
		}

		if cfg.DefaultTenantID != 0 {
			return seed.EnsureDefaultTenantWithID(conn, cfg.DefaultTenantID)
		}
		return seed.EnsureDefaultTenant(conn)
	}),
)
