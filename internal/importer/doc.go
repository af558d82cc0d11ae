// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package importer loads the college catalog from a merged IPEDS CSV export.

Expected columns (header names, any order; extra columns are ignored):

	UNITID    institution id (required)
	INSTNM    institution name (required)
	CITY, STABBR, WEBADDR
	DVADM01   admission rate as a percentage, stored as a 0..1 fraction
	SATVR50   SAT evidence-based reading 50th percentile
	SATMT50   SAT math 50th percentile
	COTSON    cost of attendance, on campus
	TUFEYR1   in-state tuition and fees
	TUFEYR3   out-of-state tuition and fees
	DVEF01    total enrollment
	LATITUDE, LONGITUD

SAT is the sum of the two section medians. When only one section is
reported it is doubled. Blank cells and IPEDS "." placeholders become
nulls. Rows without an id or a name are skipped and counted.

Rows are upserted in batches of Import.BatchSize. After a successful import
a catalog.updated event is published so the name index refreshes.
*/
package importer
