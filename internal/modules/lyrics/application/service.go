package application

import (
	"context"
	"errors"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

var lookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lyrics_lookups_total",
		Help: "Lyrics lookups by outcome",
	},
	[]string{"outcome"},
)

var errRateLimited = errors.New("lyrics lookup rate limited")

// Fetcher is the raw provider call.
type Fetcher interface {
	Fetch(ctx context.Context, track string) (string, error)
}

type Config struct {
	Timeout         time.Duration
	RatePerSecond   float64
	Burst           int
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Second
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 10
	}
	if c.Burst <= 0 {
		c.Burst = 20
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 5
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = 30 * time.Second
	}
	return c
}

// Service turns provider calls into a lookup that never fails. Each call is
// paced, bounded by a timeout and guarded by a circuit breaker.
type Service struct {
	fetcher Fetcher
	timeout time.Duration
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[string]
}

func NewService(fetcher Fetcher, cfg Config) *Service {
	cfg = cfg.withDefaults()
	failures := cfg.BreakerFailures

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "lyrics",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &Service{
		fetcher: fetcher,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		breaker: breaker,
	}
}

// Lookup returns the lyrics for trackName, or false when none could be
// obtained for any reason.
func (s *Service) Lookup(ctx context.Context, trackName string) (string, bool) {
	log := logging.Ctx(ctx)

	if !s.limiter.Allow() {
		s.record(OutcomeRejected)
		log.Warn().Err(errRateLimited).Str("track", trackName).Msg("lyrics lookup skipped")
		return "", false
	}

	lyrics, err := s.breaker.Execute(func() (string, error) {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.fetcher.Fetch(cctx, trackName)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		s.record(OutcomeRejected)
		log.Warn().Err(err).Str("track", trackName).Msg("lyrics lookup skipped")
		return "", false
	case err != nil:
		s.record(OutcomeError)
		log.Warn().Err(err).Str("track", trackName).Msg("lyrics lookup failed")
		return "", false
	case lyrics == "":
		s.record(OutcomeMiss)
		return "", false
	}

	s.record(OutcomeHit)
	return lyrics, true
}

func (s *Service) record(outcome string) {
	lookupsTotal.WithLabelValues(outcome).Inc()
}

// Disabled is used when the provider is switched off.
type Disabled struct{}

func (Disabled) Lookup(context.Context, string) (string, bool) { return "", false }
