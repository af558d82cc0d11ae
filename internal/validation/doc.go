// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

// Package validation provides struct validation for API requests using
// go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in error messages
// use the json tag so clients see the names they sent.
//
// Custom tags:
//
//	targetkind  value parses as a likeable models.TargetKind
//	notblank    string contains a non-whitespace character
//
// Example:
//
//	req := validation.ResolveRequest{Text: r.FormValue("text")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
