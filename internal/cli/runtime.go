// internal/cli/runtime.go
package cli

import (
	"context"
	"fmt"

	"career-match/internal/common/cache"
	"career-match/internal/common/config"
	"career-match/internal/common/database"
	"career-match/internal/common/logger"
	"career-match/internal/common/observability"
	"career-match/internal/dataset"
	"career-match/internal/engine"
	matchcareer "career-match/internal/workers/assessment/match-career"

	"go.uber.org/zap"
)

// runtime is everything a command needs to score answers.
type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	zap     *zap.Logger
	pg      *database.PostgresClient
	redis   *database.RedisClient
	obs     *observability.Observability
	handler *matchcareer.Handler
}

type runtimeOptions struct {
	// service keeps the configured log output and exports otel metrics.
	service bool
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromFile(o.configPath)
	}
	return config.Load()
}

// newLogger honours --debug and --json. One-shot commands log to stderr so
// stdout carries only results.
func (o *rootOptions) newLogger(cfg config.LoggingConfig, service bool) (*zap.Logger, error) {
	if o.debug {
		cfg.Level = "debug"
	}
	if o.jsonLogs {
		cfg.Format = "json"
	} else if !service {
		cfg.Format = "console"
	}
	if !service {
		cfg.Output = "stderr"
	}
	return logger.NewFromConfig(cfg)
}

func openRuntime(ctx context.Context, opts *rootOptions, ro runtimeOptions) (*runtime, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	rt := &runtime{cfg: cfg}
	if opts.log != nil {
		rt.zap = zap.NewNop()
		rt.log = opts.log
	} else {
		rt.zap, err = opts.newLogger(cfg.Logging, ro.service)
		if err != nil {
			return nil, fmt.Errorf("logger init failed: %w", err)
		}
		rt.log = logger.NewZapAdapter(rt.zap)
	}

	if cfg.Dataset.Source == config.DatasetSourcePostgres {
		if err := rt.openPostgres(ctx); err != nil {
			rt.Close()
			return nil, err
		}
	}

	var rows dataset.RowQuerier
	if rt.pg != nil {
		rows = rt.pg
	}
	ds, err := dataset.Load(ctx, cfg.Dataset, rows)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.log.Info("dataset loaded", map[string]interface{}{
		"source":  cfg.Dataset.Source,
		"version": ds.Version(),
		"careers": len(ds.Catalog()),
	})

	eng, err := engine.New(ds, engine.FromSettings(cfg.Engine))
	if err != nil {
		rt.Close()
		return nil, err
	}

	var assessmentCache *cache.AssessmentCache
	if cfg.Cache.Enabled {
		rt.redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			rt.Close()
			return nil, err
		}
		if err := rt.redis.Ping(ctx); err != nil {
			// the cache is optional; Execute treats redis errors as misses
			rt.log.Warn("redis unavailable, assessments will not be cached", map[string]interface{}{"error": err})
		}
		assessmentCache = cache.New(rt.redis.Client, cfg.Cache, rt.log)
	}

	if ro.service {
		rt.obs = observability.New(cfg.App.Name)
	} else {
		rt.obs = observability.Noop()
	}

	rt.handler, err = matchcareer.NewHandler(matchcareer.HandlerOptions{
		AppConfig:     cfg,
		Engine:        eng,
		Cache:         assessmentCache,
		Observability: rt.obs,
		Logger:        rt.log,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}

	return rt, nil
}

func (rt *runtime) openPostgres(ctx context.Context) error {
	pg, err := database.NewPostgres(rt.cfg.Database.Postgres)
	if err != nil {
		return err
	}
	if err := pg.Ping(ctx); err != nil {
		pg.Close()
		return err
	}
	rt.pg = pg
	rt.log.Info("PostgreSQL connected successfully", nil)
	return nil
}

func (rt *runtime) Close() {
	if rt.obs != nil {
		rt.obs.Shutdown()
	}
	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			rt.log.Warn("error closing redis", map[string]interface{}{"error": err})
		}
	}
	if rt.pg != nil {
		if err := rt.pg.Close(); err != nil {
			rt.log.Warn("error closing postgres", map[string]interface{}{"error": err})
		}
	}
	if rt.zap != nil {
		_ = rt.zap.Sync()
	}
}
