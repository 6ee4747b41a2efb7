// Package router wires the HTTP handlers, middleware and route table onto
// an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/expo-management/internal/config"
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/middleware"
	"github.com/iliyamo/expo-management/internal/policy"
)

// Handlers groups the endpoint implementations registered by New.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Expo       *handler.ExpoHandler
	Exhibitor  *handler.ExhibitorHandler
	Engagement *handler.EngagementHandler
	Analytics  *handler.AnalyticsHandler
}

// Options carries the transport settings.  A nil Redis client disables
// the response cache and the rate limiter.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
	Cache       config.CacheConfig
	RateLimit   config.RateLimitConfig
	Redis       *redis.Client
	Logger      zerolog.Logger
	Gatherer    prometheus.Gatherer
}

// New builds the Echo instance serving the whole API.
func New(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: opts.CORSOrigins}))
	e.Use(middleware.Identify(opts.JWTSecret))
	e.Use(middleware.NewTokenBucket(opts.RateLimit, opts.Redis))

	e.GET("/healthz", h.Health.Health)
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	r := routes{
		v1:     e.Group("/v1"),
		secret: opts.JWTSecret,
		cache:  middleware.NewRedisCache(opts.Cache, opts.Redis),
	}
	r.auth(h.Auth)
	r.catalog(h.Expo, h.Exhibitor)
	r.engagement(h.Engagement)
	r.analytics(h.Analytics)
	return e
}

type routes struct {
	v1     *echo.Group
	secret string
	cache  echo.MiddlewareFunc // catalog listings that tolerate TTL staleness
}

// guard authenticates the caller and admits the roles op allows.
func (r routes) guard(op policy.Op) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.JWTAuth(r.secret),
		middleware.RequireRole(policy.RolesFor(op)...),
	}
}
