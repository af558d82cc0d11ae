// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
)

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.With("service", "catalog-index").WithGroup("supervisor").Warn("service restarted", "attempt", 3)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"catalog-index"`,
		`"supervisor.attempt":3`,
		`"message":"service restarted"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogHandler_GroupScoping(t *testing.T) {
	tests := []struct {
		name    string
		log     func(l *slog.Logger)
		want    []string
		notWant []string
	}{
		{
			name: "attrs before group stay unqualified",
			log: func(l *slog.Logger) {
				l.With("layer", "data").WithGroup("supervisor").Info("restart", "attempt", 1)
			},
			want:    []string{`"layer":"data"`, `"supervisor.attempt":1`},
			notWant: []string{`"supervisor.layer"`},
		},
		{
			name: "attrs after group are qualified once",
			log: func(l *slog.Logger) {
				l.WithGroup("a").With("x", 1).WithGroup("b").Info("nested", "y", 2)
			},
			want:    []string{`"a.x":1`, `"a.b.y":2`},
			notWant: []string{`"a.b.x"`},
		},
		{
			name: "empty keys dropped",
			log: func(l *slog.Logger) {
				l.With(slog.String("", "lost")).Info("empty", slog.Int("", 7), "kept", true)
			},
			want:    []string{`"kept":true`},
			notWant: []string{`"lost"`, `"":`},
		},
		{
			name: "inline group keeps parent prefix",
			log: func(l *slog.Logger) {
				l.WithGroup("g").Info("inline", slog.Group("", slog.Int("n", 4)))
			},
			want: []string{`"g.n":4`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(NewSlogHandler(NewTestLogger(&buf))))

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %s: %s", want, output)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(output, bad) {
					t.Errorf("output contains %s: %s", bad, output)
				}
			}
		})
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
		{slog.LevelDebug - 4, "trace"},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in).String(); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWatermillAdapter(t *testing.T) {
	var buf bytes.Buffer
	var adapter watermill.LoggerAdapter = NewWatermillAdapter(NewTestLogger(&buf))

	adapter.With(watermill.LogFields{"topic": "catalog.updated"}).
		Error("handler failed", errors.New("boom"), watermill.LogFields{"attempt": 1})

	output := buf.String()
	for _, want := range []string{`"topic":"catalog.updated"`, `"error":"boom"`, `"attempt":1`, `"handler failed"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}
