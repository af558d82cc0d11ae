// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bpaksoy/capstone/internal/models"
)

// IPEDS column names.
const (
	ColUnitID     = "UNITID"
	ColName       = "INSTNM"
	ColCity       = "CITY"
	ColState      = "STABBR"
	ColWebsite    = "WEBADDR"
	ColAdmission  = "DVADM01"
	ColSATVerbal  = "SATVR50"
	ColSATMath    = "SATMT50"
	ColCost       = "COTSON"
	ColTuitionIn  = "TUFEYR1"
	ColTuitionOut = "TUFEYR3"
	ColEnrollment = "DVEF01"
	ColLatitude   = "LATITUDE"
	ColLongitude  = "LONGITUD"
)

// RequiredColumns must be present in the header.
var RequiredColumns = []string{ColUnitID, ColName}

var (
	ErrMissingID   = errors.New("missing or invalid UNITID")
	ErrMissingName = errors.New("missing INSTNM")
)

// ToCollege converts one IPEDS row. Malformed optional numbers become nil.
func ToCollege(row Row) (models.College, error) {
	id, err := strconv.ParseInt(cell(row, ColUnitID), 10, 64)
	if err != nil || id <= 0 {
		return models.College{}, ErrMissingID
	}
	name := cell(row, ColName)
	if name == "" {
		return models.College{}, ErrMissingName
	}

	c := models.College{
		ID:               id,
		Name:             name,
		City:             cell(row, ColCity),
		State:            strings.ToUpper(cell(row, ColState)),
		Website:          cell(row, ColWebsite),
		SATScore:         satScore(optFloat(row, ColSATVerbal), optFloat(row, ColSATMath)),
		CostOfAttendance: optInt(row, ColCost),
		TuitionInState:   optInt(row, ColTuitionIn),
		TuitionOutState:  optInt(row, ColTuitionOut),
		Enrollment:       optInt(row, ColEnrollment),
		Latitude:         optFloat(row, ColLatitude),
		Longitude:        optFloat(row, ColLongitude),
	}
	if pct := optFloat(row, ColAdmission); pct != nil {
		c.AdmissionRate = models.Float64Ptr(*pct / 100.0)
	}
	return c, nil
}

// satScore sums the section medians, doubling a lone section.
func satScore(reading, mathScore *float64) *int {
	switch {
	case reading != nil && mathScore != nil:
		return models.IntPtr(int(*reading) + int(*mathScore))
	case reading != nil:
		return models.IntPtr(int(*reading) * 2)
	case mathScore != nil:
		return models.IntPtr(int(*mathScore) * 2)
	default:
		return nil
	}
}

func cell(row Row, col string) string {
	v := strings.TrimSpace(row[col])
	if v == "." {
		return ""
	}
	return v
}

func optFloat(row Row, col string) *float64 {
	v := cell(row, col)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return models.Float64Ptr(f)
}

// optInt accepts integer cells written as floats ("31250.0").
func optInt(row Row, col string) *int {
	f := optFloat(row, col)
	if f == nil {
		return nil
	}
	return models.IntPtr(int(math.Round(*f)))
}

// checkHeaders reports required columns absent from headers.
func checkHeaders(headers []string) error {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("csv: missing required columns %s", strings.Join(missing, ", "))
	}
	return nil
}
