package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/yigit/collegeportal/internal/config"
	appMiddleware "github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/session"
	"github.com/yigit/collegeportal/internal/portal/web"
)

// Portal is the assembled web portal and the resources to release on shutdown.
type Portal struct {
	Router  *gin.Engine
	Closers []func()
}

// NewStateStore builds the per-page state store named in the configuration.
func NewStateStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.Store, func(), error) {
	if cfg.Portal.StateStore != "redis" {
		lgr.Info().Dur("ttl", cfg.Portal.StateTTL).Msg("Using in-memory page state store")
		return session.NewMemoryStore(cfg.Portal.StateTTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis page state store")
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
	return session.NewRedisStore(rdb, cfg.Redis.Prefix, cfg.Portal.StateTTL), closeFn, nil
}

// SetupPortal wires the backend client, page state, sessions and the page router.
func SetupPortal(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Portal, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	api := client.New(cfg.Portal.BackendURL, cfg.Portal.RequestTimeout, client.WithLogger(logger.Component("backend")))

	store, closeStore, err := NewStateStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	handler, err := web.NewHandler(api, store, logger.Component("portal"), cfg.Portal.CSRFEnabled)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to render home page: %w", err)
	}

	opts := web.Options{
		SessionName:    cfg.Portal.SessionName,
		SessionStore:   session.NewCookieStore(cfg.Portal.SessionSecret, cfg.Portal.SecureCookies),
		CSRFKey:        []byte(cfg.Portal.CSRFKey),
		TrustedOrigins: cfg.Portal.TrustedOrigins,
		SecureCookies:  cfg.Portal.SecureCookies,
		MetricsPath:    cfg.Metrics.Path,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = appMiddleware.NewHTTPMetrics("college_portal")
	}

	router, err := web.NewRouter(handler, opts)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to load portal templates: %w", err)
	}

	lgr.Info().Str("backend", api.BaseURL()).Bool("csrf", cfg.Portal.CSRFEnabled).Msg("Portal configured")
	return &Portal{Router: router, Closers: []func(){closeStore}}, nil
}
