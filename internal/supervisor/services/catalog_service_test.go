// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeRefresher counts refreshes and signals each one.
type fakeRefresher struct {
	calls atomic.Int32
	err   error
	done  chan struct{}
}

func newFakeRefresher() *fakeRefresher {
	return &fakeRefresher{done: make(chan struct{}, 16)}
}

func (f *fakeRefresher) Refresh(_ context.Context) (int, error) {
	f.calls.Add(1)
	select {
	case f.done <- struct{}{}:
	default:
	}
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func (f *fakeRefresher) wait(t *testing.T, what string) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("no refresh for %s", what)
	}
}

func runCatalogService(t *testing.T, svc *CatalogIndexService) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	t.Cleanup(cancel)
	return cancel, errCh
}

func TestCatalogIndexService_Interface(t *testing.T) {
	var _ suture.Service = (*CatalogIndexService)(nil)
}

func TestNewCatalogIndexService_Defaults(t *testing.T) {
	svc := NewCatalogIndexService(newFakeRefresher(), nil, CatalogServiceConfig{}, zerolog.Nop())
	if svc.config.RefreshInterval != 15*time.Minute {
		t.Errorf("RefreshInterval = %v, want 15m", svc.config.RefreshInterval)
	}
	if svc.config.MinEventGap != 5*time.Second {
		t.Errorf("MinEventGap = %v, want 5s", svc.config.MinEventGap)
	}
	if svc.String() != "catalog-index-service" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCatalogIndexService_Serve(t *testing.T) {
	logger := zerolog.New(io.Discard)

	t.Run("refreshes on startup", func(t *testing.T) {
		idx := newFakeRefresher()
		svc := NewCatalogIndexService(idx, nil, CatalogServiceConfig{RefreshOnStartup: true, RefreshInterval: time.Hour}, logger)
		cancel, errCh := runCatalogService(t, svc)
		idx.wait(t, "startup")

		cancel()
		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	})

	t.Run("refreshes on interval", func(t *testing.T) {
		idx := newFakeRefresher()
		svc := NewCatalogIndexService(idx, nil, CatalogServiceConfig{RefreshInterval: 20 * time.Millisecond}, logger)
		runCatalogService(t, svc)
		idx.wait(t, "first tick")
		idx.wait(t, "second tick")
	})

	t.Run("refreshes on update signal", func(t *testing.T) {
		idx := newFakeRefresher()
		updates := make(chan struct{}, 1)
		svc := NewCatalogIndexService(idx, updates, CatalogServiceConfig{
			RefreshInterval: time.Hour,
			MinEventGap:     time.Millisecond,
		}, logger)
		runCatalogService(t, svc)

		updates <- struct{}{}
		idx.wait(t, "update")
		updates <- struct{}{}
		idx.wait(t, "second update")
	})

	t.Run("failed refresh keeps running", func(t *testing.T) {
		idx := newFakeRefresher()
		idx.err = errors.New("catalog unavailable")
		svc := NewCatalogIndexService(idx, nil, CatalogServiceConfig{RefreshOnStartup: true, RefreshInterval: 20 * time.Millisecond}, logger)
		runCatalogService(t, svc)
		idx.wait(t, "startup")
		idx.wait(t, "retry tick")
	})

	t.Run("closed update channel is ignored", func(t *testing.T) {
		idx := newFakeRefresher()
		updates := make(chan struct{})
		close(updates)
		svc := NewCatalogIndexService(idx, updates, CatalogServiceConfig{RefreshInterval: time.Hour}, logger)
		cancel, errCh := runCatalogService(t, svc)

		time.Sleep(50 * time.Millisecond)
		if n := idx.calls.Load(); n != 0 {
			t.Errorf("refresh calls = %d, want 0", n)
		}
		cancel()
		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	})
}
