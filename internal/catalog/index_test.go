// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package catalog

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/models"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// Index must plug into the resolver as its name source.
var _ resolve.NameSource = (*Index)(nil)

func testColleges() []models.College {
	return []models.College{
		{ID: 3, Name: "Texas State University", State: "TX"},
		{ID: 1, Name: "Harvard University", State: "MA"},
		{ID: 2, Name: "Texas A & M University-College Station", State: "TX"},
		{ID: 4, Name: "Université de Montréal", State: "QC"},
		{ID: 5, Name: "Texas State University", State: "TX"},
		{ID: 1, Name: "Duplicate Harvard", State: "MA"},
		{ID: 0, Name: "No Id", State: "MA"},
	}
}

func staticLoader(colleges []models.College) Loader {
	return func(context.Context) ([]models.College, error) {
		return colleges, nil
	}
}

func newTestIndex(load Loader) *Index {
	return NewIndex(load, logging.NewTestLogger(io.Discard))
}

func TestIndex_EmptyBeforeRefresh(t *testing.T) {
	idx := newTestIndex(staticLoader(testColleges()))

	if idx.Size() != 0 || idx.Generation() != 0 {
		t.Errorf("Size() = %d, Generation() = %d; want 0, 0", idx.Size(), idx.Generation())
	}
	if got := idx.Colleges(); got == nil || len(got) != 0 {
		t.Errorf("Colleges() = %v, want empty non-nil", got)
	}
	if got := idx.Autocomplete("tex", 5); len(got) != 0 {
		t.Errorf("Autocomplete() = %v, want empty", got)
	}
}

func TestIndex_Refresh(t *testing.T) {
	idx := newTestIndex(staticLoader(testColleges()))

	n, err := idx.Refresh(t.Context())
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("Refresh() = %d, want 5 after dropping duplicate and zero ids", n)
	}
	if idx.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", idx.Generation())
	}

	colleges := idx.Colleges()
	for i, want := range []int64{1, 2, 3, 4, 5} {
		if colleges[i].ID != want {
			t.Errorf("Colleges()[%d].ID = %d, want %d", i, colleges[i].ID, want)
		}
	}

	c, ok := idx.Get(1)
	if !ok || c.Name != "Harvard University" {
		t.Errorf("Get(1) = %+v, %v; first row should win", c, ok)
	}
	if _, ok := idx.Get(99); ok {
		t.Error("Get(99) should miss")
	}
}

func TestIndex_RefreshFailureKeepsSnapshot(t *testing.T) {
	var fail atomic.Bool
	idx := newTestIndex(func(context.Context) ([]models.College, error) {
		if fail.Load() {
			return nil, errors.New("db down")
		}
		return testColleges(), nil
	})

	if _, err := idx.Refresh(t.Context()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	fail.Store(true)
	if _, err := idx.Refresh(t.Context()); err == nil {
		t.Fatal("Refresh() should fail")
	}
	if idx.Size() != 5 || idx.Generation() != 1 {
		t.Errorf("Size() = %d, Generation() = %d; previous snapshot should remain", idx.Size(), idx.Generation())
	}
}

func TestIndex_NoLoader(t *testing.T) {
	idx := newTestIndex(nil)
	if _, err := idx.Refresh(t.Context()); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Refresh() error = %v, want ErrNoLoader", err)
	}

	if n := idx.Load(testColleges()); n != 5 {
		t.Errorf("Load() = %d, want 5", n)
	}
	if idx.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", idx.Generation())
	}
}

func TestIndex_Autocomplete(t *testing.T) {
	idx := newTestIndex(nil)
	idx.Load(testColleges())

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []int64
	}{
		{name: "case insensitive", prefix: "TEXAS", limit: 10, want: []int64{2, 3, 5}},
		{name: "shared name lists every id", prefix: "texas state", limit: 10, want: []int64{3, 5}},
		{name: "limit", prefix: "texas", limit: 1, want: []int64{2}},
		{name: "accent folded", prefix: "universite de mont", limit: 10, want: []int64{4}},
		{name: "no match", prefix: "zzz", limit: 10, want: []int64{}},
		{name: "blank prefix", prefix: "   ", limit: 10, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Autocomplete(tt.prefix, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Autocomplete(%q) returned %d results, want %d", tt.prefix, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestIndex_ConcurrentRefreshCollapses(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	idx := newTestIndex(func(context.Context) ([]models.College, error) {
		loads.Add(1)
		<-release
		return testColleges(), nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := idx.Refresh(t.Context()); err != nil {
				t.Errorf("Refresh() error = %v", err)
			}
		}()
	}

	// Let every goroutine reach singleflight before releasing the load.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Errorf("loader ran %d times, want 1", got)
	}
	if idx.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", idx.Generation())
	}
}

func TestIndex_ReadersSeeWholeSnapshots(t *testing.T) {
	small := []models.College{{ID: 1, Name: "A"}}
	large := []models.College{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	idx := newTestIndex(nil)
	idx.Load(small)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			n := len(idx.Colleges())
			if n != 1 && n != 3 {
				t.Errorf("observed partial snapshot of %d colleges", n)
				return
			}
		}
	}()

	for i := range 200 {
		if i%2 == 0 {
			idx.Load(large)
		} else {
			idx.Load(small)
		}
	}
	close(done)
	wg.Wait()
}

func TestIndex_GenerationNeverGoesBackwards(t *testing.T) {
	idx := newTestIndex(staticLoader(testColleges()))

	done := make(chan struct{})
	var reader sync.WaitGroup
	reader.Add(1)
	go func() {
		defer reader.Done()
		var last uint64
		for {
			select {
			case <-done:
				return
			default:
			}
			g := idx.Generation()
			if g < last {
				t.Errorf("generation moved from %d back to %d", last, g)
				return
			}
			last = g
		}
	}()

	const writers, rounds = 4, 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				if w%2 == 0 {
					idx.Load(testColleges())
					continue
				}
				if _, err := idx.Refresh(t.Context()); err != nil {
					t.Errorf("Refresh() error = %v", err)
				}
			}
		}()
	}
	wg.Wait()
	close(done)
	reader.Wait()

	if got := idx.Generation(); got == 0 || got > writers*rounds {
		t.Errorf("Generation() = %d, want within (0, %d]", got, writers*rounds)
	}
}
