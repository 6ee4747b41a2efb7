// Package service is the expo engine: it validates input, enforces the
// access policy, keeps cross-collection references consistent and derives
// the administrative statistics.  Every operation takes the calling
// policy.Actor explicitly and bounds each store call by a timeout.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/metrics"
	"github.com/iliyamo/expo-management/internal/queue"
	"github.com/iliyamo/expo-management/internal/repository"
)

// Config carries the tunables of the engine.
type Config struct {
	StoreTimeout  time.Duration
	BcryptCost    int
	ResetTokenTTL time.Duration
	JWTSecret     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Publisher hands domain events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, ev queue.DomainEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, queue.DomainEvent) error { return nil }

type Service struct {
	store   *repository.Store
	tokens  repository.TokenRepo
	cfg     Config
	pub     Publisher
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithPublisher(p Publisher) Option { return func(s *Service) { s.pub = p } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

// WithClock replaces the wall clock, used for token and reset expiry.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func New(store *repository.Store, tokens repository.TokenRepo, cfg Config, opts ...Option) *Service {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 5 * time.Second
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = 15 * time.Minute
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	s := &Service{
		store:   store,
		tokens:  tokens,
		cfg:     cfg,
		pub:     nopPublisher{},
		metrics: metrics.Nop(),
		log:     zerolog.Nop(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// storeErr translates a repository failure into an apperr kind.  what
// names the entity for not-found and conflict messages.
func storeErr(what string, err error) error {
	var ae *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.Timeout(err, what+": store call timed out")
	case errors.Is(err, context.Canceled):
		return apperr.Internal(err, "request cancelled")
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("%s not found", what)
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict("%s already exists", what)
	}
	return apperr.Internal(err, "store failure")
}

// exec runs one store call under the configured timeout.
func (s *Service) exec(ctx context.Context, what string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()
	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveStore(what, start)
	return storeErr(what, err)
}

// query is exec for calls that return a value.
func query[T any](ctx context.Context, s *Service, what string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := s.exec(ctx, what, func(ctx context.Context) error {
		v, err := fn(ctx)
		out = v
		return err
	})
	return out, err
}

// publish sends ev synchronously; a broker failure is logged and counted
// but never fails the operation that produced the event.
func (s *Service) publish(ctx context.Context, ev queue.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.StoreTimeout)
	defer cancel()
	err := s.pub.Publish(ctx, ev)
	s.metrics.IncEvent(ev.Type, err)
	if err != nil {
		s.log.Warn().Err(err).Str("event", ev.Type).Str("subject", ev.SubjectID).Msg("publish domain event failed")
	}
}
