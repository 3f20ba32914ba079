package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"careerpath/internal/adapters/httpapi"
	"careerpath/internal/adapters/memory"
	"careerpath/internal/adapters/redisstore"
	"careerpath/internal/adapters/sqlite"
	"careerpath/internal/application"
	"careerpath/internal/application/commands"
	"careerpath/internal/config"
	"careerpath/internal/ports"
)

// Options tune how the services are assembled
type Options struct {
	// Offline skips the backend; projects resolve from cache or placeholder
	Offline bool

	// EphemeralSession keeps session storage in memory for this process only
	EphemeralSession bool
}

// Services is everything a surface needs to serve the use cases
type Services struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *sqlite.DB
	Resolver *commands.Resolver
	Progress *commands.ProgressTracker
	Domains  *commands.DomainCache

	backend ports.ProjectBackend
	session ports.KVStore
	closers []func() error
}

// Open wires the stores, the backend client and the use cases from cfg
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger, opts Options) (*Services, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sqlite.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}
	s := &Services{Config: cfg, Log: log, DB: db, closers: []func() error{db.Close}}

	if n, err := db.PurgeExpired(ctx); err != nil {
		log.Warn("failed to purge expired entries", zap.Error(err))
	} else if n > 0 {
		log.Debug("purged expired entries", zap.Int64("count", n))
	}

	session, err := s.openSession(ctx, opts)
	if err != nil {
		s.Close()
		return nil, err
	}

	if !opts.Offline {
		s.backend = httpapi.NewClient(cfg.APIURL, cfg.APIToken,
			httpapi.WithTimeout(cfg.HTTPTimeout),
			httpapi.WithRateLimit(cfg.RateLimit, burstFor(cfg.RateLimit)),
			httpapi.WithLogger(log.Named("http")))
	}

	s.Progress = commands.NewProgressTracker(application.NewCache(db.Durable(), 0, log.Named("durable")))
	s.wireSession(session)
	return s, nil
}

// wireSession points the session-scoped use cases at store
func (s *Services) wireSession(store ports.KVStore) {
	s.session = store
	sessionCache := application.NewCache(store, s.Config.SessionTTL, s.Log.Named("session"))
	s.Resolver = commands.NewResolver(s.backend, sessionCache, s.Log.Named("resolver"))
	s.Domains = commands.NewDomainCache(s.backend, sessionCache, s.Log.Named("domains"))
}

func (s *Services) openSession(ctx context.Context, opts Options) (ports.KVStore, error) {
	switch {
	case opts.EphemeralSession:
		return memory.NewStore(), nil
	case s.Config.RedisURL != "":
		store, err := redisstore.Dial(ctx, s.Config.RedisURL, "")
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, store.Close)
		return store, nil
	default:
		return s.DB.Session(ctx)
	}
}

// EndSession discards everything in session storage
func (s *Services) EndSession(ctx context.Context) (int64, error) {
	switch store := s.session.(type) {
	case *sqlite.SessionStore:
		// the store follows the new session id on its own
		_, n, err := s.DB.EndSession(ctx)
		return n, err
	case *redisstore.Store:
		return store.Clear(ctx)
	case *memory.Store:
		keys, err := store.Keys(ctx, "")
		if err != nil {
			return 0, err
		}
		for _, k := range keys {
			if err := store.Delete(ctx, k); err != nil {
				return 0, err
			}
		}
		return int64(len(keys)), nil
	default:
		return 0, fmt.Errorf("session store %T cannot be ended", s.session)
	}
}

// Close releases every store, newest first
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	_ = s.Log.Sync()
	return errors.Join(errs...)
}

// burstFor allows short bursts of a couple of seconds' worth of requests
func burstFor(perSecond float64) int {
	b := int(perSecond * 2)
	if b < 1 {
		return 1
	}
	return b
}

// Timeout bounds a single surface operation, backend calls included
func Timeout(cfg *config.Config) time.Duration {
	return 2*cfg.HTTPTimeout + 5*time.Second
}
