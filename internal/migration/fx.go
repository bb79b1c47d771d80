package migration

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		if cfg.DBReset {
			log.Warn("resetting database schema")
			return Reset(conn)
		}
		return EnsureSchema(conn)
	}),
)
