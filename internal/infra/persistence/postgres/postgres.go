package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/errors"
	"loyalty/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the loyalty database, with read replicas when configured. The
// connection is checked and the schema prepared when the app starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Ledger writes open their own transactions through the manager.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := prepareSchema(db.WithContext(ctx), params.Config.Database, params.Logger); err != nil {
				return err
			}

			watch := &poolWatch{logger: params.Logger, prev: sqlDB.Stats()}
			go watch.run(watchCtx, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// prepareSchema migrates when allowed and otherwise only warns about a
// missing ledger table, since every card operation would fail on it.
func prepareSchema(db *gorm.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if cfg != nil && cfg.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("Loyalty schema migrated")

		return nil
	}

	if !db.Migrator().HasTable(&model.PointLogModel{}) {
		logger.Warn("Loyalty ledger table not found, enable database.autoMigrate or run migrations")
	}

	return nil
}

// poolWatch samples sql.DB stats and reports connection waits. Card writes
// hold row locks for the whole transaction, so waits here mean lock queues.
type poolWatch struct {
	logger *slog.Logger
	prev   sql.DBStats
}

func (w *poolWatch) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if level, attrs, ok := w.observe(sqlDB.Stats()); ok {
				w.logger.LogAttrs(ctx, level, "Postgres pool wait observed", attrs...)
			}
		}
	}
}

// observe folds in one sample and reports whether callers waited since the last.
func (w *poolWatch) observe(cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur
	if waits <= 0 {
		return 0, nil, false
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	}, true
}
