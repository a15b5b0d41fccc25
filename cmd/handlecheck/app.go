package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/handlecheck/pkg/config"
	"github.com/dmitrymomot/handlecheck/pkg/decorator"
	"github.com/dmitrymomot/handlecheck/pkg/directory"
	"github.com/dmitrymomot/handlecheck/pkg/environment"
	"github.com/dmitrymomot/handlecheck/pkg/logger"
	"github.com/dmitrymomot/handlecheck/pkg/metrics"
	"github.com/dmitrymomot/handlecheck/pkg/mongo"
	"github.com/dmitrymomot/handlecheck/pkg/pg"
	"github.com/dmitrymomot/handlecheck/pkg/redis"
	"github.com/dmitrymomot/handlecheck/pkg/rules"
	"github.com/dmitrymomot/handlecheck/pkg/suggest"
	"github.com/dmitrymomot/handlecheck/svc/username"
)

// app is the composition root shared by the subcommands.
type app struct {
	ctx      context.Context
	cfg      config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	dir     *directory.Directory
	rules   *rules.Rules
	service *username.Service

	// health holds a probe per connected remote source, keyed by source name.
	health  map[string]func(context.Context) error
	closers []func()
}

func newApp(ctx context.Context, f *flags, logOut io.Writer, withService bool) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(f.envFiles...)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if f.seed != 0 {
		cfg.RandomSeed = f.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(append(cfg.LoggerOptions(),
		logger.WithOutput(logOut),
		logger.WithContextExtractors(username.LoggerExtractor()),
	)...)
	ctx = environment.WithContext(ctx, cfg.Environment())

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, metrics.DefaultConfig())
	if err != nil {
		return nil, err
	}

	a := &app{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		registry: reg,
		metrics:  m,
		health:   make(map[string]func(context.Context) error),
	}
	if !withService {
		return a, nil
	}

	if err := a.build(); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) build() error {
	words, err := a.cfg.RestrictedWordList()
	if err != nil {
		return err
	}
	a.rules, err = rules.New(a.cfg.MinLength, words)
	if err != nil {
		return err
	}

	sources, err := a.sources()
	if err != nil {
		return err
	}
	a.dir, err = directory.Load(a.ctx, sources...)
	if err != nil {
		return err
	}
	a.metrics.SetDirectorySize(a.dir.Len())
	a.log.InfoContext(a.ctx, "directory loaded",
		logger.Count(a.dir.Len()),
		slog.Any("sources", a.cfg.Sources),
	)

	gen := suggest.New(a.dir, a.rules,
		suggest.WithRand(decorator.NewLockedRand(a.cfg.RandomSeed)),
		suggest.WithLogger(a.log.With(logger.Component("suggest"))),
	)
	a.service, err = username.New(a.rules, a.dir, gen,
		username.WithLogger(a.log.With(logger.Component("username"))),
		username.WithRecorder(a.metrics),
	)
	return err
}

// sources connects the directory sources in DIRECTORY_SOURCES order.
func (a *app) sources() ([]directory.Source, error) {
	out := make([]directory.Source, 0, len(a.cfg.Sources))
	for _, name := range a.cfg.Sources {
		a.log.DebugContext(a.ctx, "opening directory source", logger.Source(name))

		switch name {
		case config.SourceStatic:
			out = append(out, directory.Static(a.cfg.ExistingUsernames...))

		case config.SourceFile:
			out = append(out, directory.File(a.cfg.ExistingUsernamesFile))

		case config.SourceRedis:
			client, err := redis.Connect(a.ctx, a.cfg.Redis)
			if err != nil {
				return nil, err
			}
			a.closers = append(a.closers, func() { _ = client.Close() })
			a.health[name] = redis.Healthcheck(client)
			src, err := redis.NewSource(client, a.cfg.Redis.UsernamesKey)
			if err != nil {
				return nil, err
			}
			out = append(out, src)

		case config.SourcePostgres:
			pool, err := pg.Connect(a.ctx, a.cfg.Postgres)
			if err != nil {
				return nil, err
			}
			a.closers = append(a.closers, pool.Close)
			a.health[name] = pg.Healthcheck(pool)
			src, err := pg.NewSource(pool, a.cfg.Postgres.UsernamesTable, a.cfg.Postgres.UsernamesColumn)
			if err != nil {
				return nil, err
			}
			out = append(out, src)

		case config.SourceMongo:
			db, err := mongo.NewWithDatabase(a.ctx, a.cfg.Mongo)
			if err != nil {
				return nil, err
			}
			client := db.Client()
			a.closers = append(a.closers, func() { _ = client.Disconnect(context.Background()) })
			a.health[name] = mongo.Healthcheck(client)
			coll := db.Collection(a.cfg.Mongo.Collection)
			src, err := mongo.NewSource(mongo.FromCollection(coll), a.cfg.Mongo.Collection, a.cfg.Mongo.Field)
			if err != nil {
				return nil, err
			}
			out = append(out, src)

		default:
			return nil, errors.Join(config.ErrUnknownSource, errors.New(name))
		}
	}
	return out, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
