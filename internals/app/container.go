package app

import (
	"context"
	"fmt"
	"time"
	"tripdash/config"
	"tripdash/internals/gate"
	middle "tripdash/internals/middleware"
	"tripdash/internals/modules/auth"
	"tripdash/internals/modules/dashboard"
	"tripdash/internals/modules/event"
	"tripdash/internals/modules/proxy"
	"tripdash/internals/security"
	"tripdash/pkg/httpclient"
	"tripdash/pkg/redisstore"
	"tripdash/pkg/utils"

	"github.com/rs/zerolog"
)

type Container struct {
	RedisClient      *redisstore.Client
	Logger           *zerolog.Logger
	requestTimeout   time.Duration
	table            *gate.Table
	authMW           *middle.AuthMiddleware
	gateMW           *middle.GateMiddleware
	forwarder        *proxy.Forwarder
	authHandler      *auth.Handler
	dashboardHandler *dashboard.Handler
	eventHandler     *event.Handler
}

func NewContainer(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Container, error) {

	table, err := gate.NewTable(gate.Config{
		Matcher:       cfg.Gate.Matcher,
		AdminPrefixes: cfg.Gate.AdminPrefixes,
		UserPrefixes:  cfg.Gate.UserPrefixes,
		LoginPath:     cfg.Gate.LoginPath,
		FallbackPath:  cfg.Gate.FallbackPath,
	})
	if err != nil {
		return nil, err
	}

	tokenSvc, err := security.NewTokenService(cfg.Auth, cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	// Session revocation is optional. Keep both interfaces nil when redis is
	// not configured so the middleware never sees a typed nil.
	var (
		redisClient *redisstore.Client
		revocation  middle.RevocationChecker
		revoker     auth.Revoker
	)
	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		redisClient, err = redisstore.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		revocation = redisClient
		revoker = redisClient
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("session revocation enabled")
	} else {
		logger.Warn().Msg("redis not configured, sign-out will not revoke issued sessions")
	}

	forwarder, err := proxy.NewForwarder(httpclient.NewHttpClient(cfg.Backend.Timeout), cfg.Backend.BaseURL, logger)
	if err != nil {
		return nil, err
	}

	validator := utils.NewValidator()

	authHandler := auth.NewHandler(forwarder, tokenSvc, revoker, validator, auth.Options{
		CookieName:    cfg.Auth.CookieName,
		CookieSecure:  cfg.Auth.CookieSecure,
		FallbackPath:  table.FallbackPath(),
		CallbackParam: cfg.Gate.CallbackParam,
	}, logger)

	return &Container{
		RedisClient:      redisClient,
		Logger:           logger,
		requestTimeout:   cfg.Server.RequestTimeout,
		table:            table,
		authMW:           middle.NewAuthMiddleware(tokenSvc, cfg.Auth.CookieName, revocation, logger),
		gateMW:           middle.NewGateMiddleware(table, cfg.Gate.CallbackParam, logger),
		forwarder:        forwarder,
		authHandler:      authHandler,
		dashboardHandler: dashboard.NewHandler(),
		eventHandler:     event.NewHandler(forwarder, validator),
	}, nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	return nil
}
