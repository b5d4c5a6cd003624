package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fetchFunc func(ctx context.Context, track string) (string, error)

func (f fetchFunc) Fetch(ctx context.Context, track string) (string, error) { return f(ctx, track) }

func counter(outcome string) float64 {
	return testutil.ToFloat64(lookupsTotal.WithLabelValues(outcome))
}

func TestLookup_Hit(t *testing.T) {
	before := counter(OutcomeHit)
	svc := NewService(fetchFunc(func(_ context.Context, track string) (string, error) {
		assert.Equal(t, "Blue in Green", track)
		return "words", nil
	}), Config{})

	got, ok := svc.Lookup(context.Background(), "Blue in Green")
	assert.True(t, ok)
	assert.Equal(t, "words", got)
	assert.Equal(t, before+1, counter(OutcomeHit))
}

func TestLookup_EmptyIsMiss(t *testing.T) {
	before := counter(OutcomeMiss)
	svc := NewService(fetchFunc(func(context.Context, string) (string, error) { return "", nil }), Config{})

	_, ok := svc.Lookup(context.Background(), "x")
	assert.False(t, ok)
	assert.Equal(t, before+1, counter(OutcomeMiss))
}

func TestLookup_ErrorIsAbsence(t *testing.T) {
	before := counter(OutcomeError)
	svc := NewService(fetchFunc(func(context.Context, string) (string, error) {
		return "", errors.New("connection refused")
	}), Config{})

	got, ok := svc.Lookup(context.Background(), "x")
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, before+1, counter(OutcomeError))
}

func TestLookup_Timeout(t *testing.T) {
	svc := NewService(fetchFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), Config{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, ok := svc.Lookup(context.Background(), "x")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLookup_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	svc := NewService(fetchFunc(func(context.Context, string) (string, error) {
		calls.Add(1)
		return "", errors.New("down")
	}), Config{BreakerFailures: 3, BreakerTimeout: time.Minute, Burst: 100, RatePerSecond: 100})

	before := counter(OutcomeRejected)
	for i := 0; i < 5; i++ {
		_, ok := svc.Lookup(context.Background(), "x")
		assert.False(t, ok)
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, before+2, counter(OutcomeRejected))
}

func TestLookup_RateLimited(t *testing.T) {
	var calls atomic.Int32
	svc := NewService(fetchFunc(func(context.Context, string) (string, error) {
		calls.Add(1)
		return "ok", nil
	}), Config{RatePerSecond: 0.001, Burst: 1})

	_, ok := svc.Lookup(context.Background(), "x")
	assert.True(t, ok)
	_, ok = svc.Lookup(context.Background(), "x")
	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDisabled(t *testing.T) {
	got, ok := Disabled{}.Lookup(context.Background(), "x")
	assert.False(t, ok)
	assert.Empty(t, got)
}
