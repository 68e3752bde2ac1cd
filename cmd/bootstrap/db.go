package bootstrap

import (
	"context"
	"log/slog"

	"stay-pricing/internal/infra/db"
	"stay-pricing/internal/infra/migration"
	"stay-pricing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB migrates first when DB_AUTO_MIGRATE is set, so the pool never sees an older schema.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func migrateUp(cfg config.DBConfig) error {
	m, err := migration.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			slog.Warn("failed to close migrator", "error", cerr)
		}
	}()
	return m.Up()
}
