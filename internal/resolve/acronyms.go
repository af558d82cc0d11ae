// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import "strings"

// acronyms maps uppercased short names to full institution names.
var acronyms = map[string]string{
	"MIT":     "Massachusetts Institute of Technology",
	"UCLA":    "University of California-Los Angeles",
	"USC":     "University of Southern California",
	"NYU":     "New York University",
	"CMU":     "Carnegie Mellon University",
	"UPENN":   "University of Pennsylvania",
	"UNC":     "University of North Carolina at Chapel Hill",
	"UVA":     "University of Virginia",
	"UIUC":    "University of Illinois Urbana-Champaign",
	"UCSD":    "University of California-San Diego",
	"UCB":     "University of California-Berkeley",
	"BU":      "Boston University",
	"GT":      "Georgia Institute of Technology",
	"RPI":     "Rensselaer Polytechnic Institute",
	"WPI":     "Worcester Polytechnic Institute",
	"UT":      "The University of Texas at Austin",
	"ASU":     "Arizona State University",
	"OSU":     "Ohio State University",
	"PSU":     "Pennsylvania State University",
	"FSU":     "Florida State University",
	"LSU":     "Louisiana State University",
	"TCU":     "Texas Christian University",
	"SMU":     "Southern Methodist University",
	"BYU":     "Brigham Young University",
	"CUNY":    "City University of New York",
	"SUNY":    "State University of New York",
	"CIT":     "California Institute of Technology",
	"CALTECH": "California Institute of Technology",
	"JHU":     "Johns Hopkins University",
	"UMICH":   "University of Michigan",
}

// minCaseInsensitiveAcronym is the length from which an acronym matches in
// any case ("UPenn", "caltech"). Shorter ones must be written in capitals so
// ordinary words are not expanded.
const minCaseInsensitiveAcronym = 5

// LookupAcronym returns the full name for a known acronym.
func LookupAcronym(token string) (string, bool) {
	upper := strings.ToUpper(token)
	full, ok := acronyms[upper]
	if !ok {
		return "", false
	}
	if token != upper && len([]rune(token)) < minCaseInsensitiveAcronym {
		return "", false
	}
	return full, true
}

// Expand returns the full name of a known acronym, or token unchanged.
func Expand(token string) string {
	if full, ok := LookupAcronym(token); ok {
		return full
	}
	return token
}
