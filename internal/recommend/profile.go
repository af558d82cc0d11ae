// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"sort"
	"strings"

	"github.com/bpaksoy/capstone/internal/models"
)

// TasteProfile summarizes a user's bookmarked colleges.
// It is built per request and never mutated afterwards.
type TasteProfile struct {
	AverageSAT           float64  `json:"average_sat"`
	AverageAdmissionRate float64  `json:"average_admission_rate"`
	AverageCost          float64  `json:"average_cost"`
	States               []string `json:"states"`
	BookmarkCount        int      `json:"bookmark_count"`

	stateSet map[string]struct{}
}

// HasState reports whether state is one of the profile's states.
func (p *TasteProfile) HasState(state string) bool {
	_, ok := p.stateSet[normalizeState(state)]
	return ok
}

// BuildProfile averages the bookmarks' non-nil features. A feature with no
// values at all takes its default. States are collected as a sorted set.
func BuildProfile(bookmarks []models.College, defaults Defaults) (*TasteProfile, error) {
	if len(bookmarks) == 0 {
		return nil, ErrNoProfileAvailable
	}

	var sat, adm, cost mean
	stateSet := make(map[string]struct{}, len(bookmarks))
	states := make([]string, 0, len(bookmarks))

	for i := range bookmarks {
		b := &bookmarks[i]
		if b.SATScore != nil {
			sat.add(float64(*b.SATScore))
		}
		if b.AdmissionRate != nil {
			adm.add(*b.AdmissionRate)
		}
		if b.CostOfAttendance != nil {
			cost.add(float64(*b.CostOfAttendance))
		}

		state := normalizeState(b.State)
		if state == "" {
			continue
		}
		if _, seen := stateSet[state]; !seen {
			stateSet[state] = struct{}{}
			states = append(states, state)
		}
	}
	sort.Strings(states)

	return &TasteProfile{
		AverageSAT:           sat.valueOr(defaults.SAT),
		AverageAdmissionRate: adm.valueOr(defaults.AdmissionRate),
		AverageCost:          cost.valueOr(defaults.Cost),
		States:               states,
		BookmarkCount:        len(bookmarks),
		stateSet:             stateSet,
	}, nil
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *mean) valueOr(def float64) float64 {
	if m.n == 0 {
		return def
	}
	return m.sum / float64(m.n)
}

func normalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
