// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"math"

	"github.com/bpaksoy/capstone/internal/models"
)

const epsilon = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// college builds a record; a negative sat, adm or cost leaves that feature nil.
func college(id int64, state string, sat int, adm float64, cost int) models.College {
	c := models.College{ID: id, Name: "College", State: state}
	if sat >= 0 {
		c.SATScore = models.IntPtr(sat)
	}
	if adm >= 0 {
		c.AdmissionRate = models.Float64Ptr(adm)
	}
	if cost >= 0 {
		c.CostOfAttendance = models.IntPtr(cost)
	}
	return c
}

func profileOf(sat, adm, cost float64, states ...string) *TasteProfile {
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return &TasteProfile{
		AverageSAT:           sat,
		AverageAdmissionRate: adm,
		AverageCost:          cost,
		States:               states,
		stateSet:             set,
	}
}
