// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package catalog

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/models"
)

// BreakerName labels the catalog breaker in metrics and logs.
const BreakerName = "catalog-store"

// Store is the catalog read path.
type Store interface {
	FetchCandidates(ctx context.Context, states []string, exclude []int64, limit int) ([]models.College, error)
	SearchNames(ctx context.Context, terms []string) ([]models.College, error)
	ListColleges(ctx context.Context) ([]models.College, error)
}

// BreakerStore guards a Store with a circuit breaker.
type BreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[[]models.College]
	name  string
}

// NewBreakerStore wraps store using the breaker settings from cfg.
func NewBreakerStore(store Store, cfg *config.CatalogConfig) *BreakerStore {
	minRequests := cfg.BreakerMinRequests
	failureRatio := cfg.BreakerFailureRatio

	metrics.RecordCircuitBreakerState(BreakerName, 0)

	cb := gobreaker.NewCircuitBreaker[[]models.College](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= failureRatio {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Uint32("requests", counts.Requests).
					Float64("failure_ratio", ratio).
					Msg("[CIRCUIT BREAKER] Opening catalog circuit")
				return true
			}
			return false
		},

		// The caller giving up says nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	})

	return &BreakerStore{store: store, cb: cb, name: BreakerName}
}

// stateValue maps breaker state to the gauge encoding.
func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func (b *BreakerStore) execute(fn func() ([]models.College, error)) ([]models.College, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.RecordCircuitBreakerRequest(b.name, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(b.name, "rejected")
		logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.RecordCircuitBreakerRequest(b.name, "failure")
	}
	return result, err
}

// FetchCandidates satisfies recommend.CandidateFetcher.
func (b *BreakerStore) FetchCandidates(ctx context.Context, states []string, exclude []int64, limit int) ([]models.College, error) {
	return b.execute(func() ([]models.College, error) {
		return b.store.FetchCandidates(ctx, states, exclude, limit)
	})
}

// SearchNames satisfies resolve.NameSearcher.
func (b *BreakerStore) SearchNames(ctx context.Context, terms []string) ([]models.College, error) {
	return b.execute(func() ([]models.College, error) {
		return b.store.SearchNames(ctx, terms)
	})
}

// ListColleges loads the full catalog through the breaker.
func (b *BreakerStore) ListColleges(ctx context.Context) ([]models.College, error) {
	return b.execute(func() ([]models.College, error) {
		return b.store.ListColleges(ctx)
	})
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

// Counts returns the breaker's counters for the current interval.
func (b *BreakerStore) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

// Unavailable reports whether err means the breaker refused the call.
func Unavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
