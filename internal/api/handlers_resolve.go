// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bpaksoy/capstone/internal/catalog"
	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/resolve"
	"github.com/bpaksoy/capstone/internal/validation"
)

// ResolveResponse is the payload of the resolve endpoint.
type ResolveResponse struct {
	Text    string              `json:"text"`
	Matches []resolve.NameMatch `json:"matches"`
}

// SuggestResponse is the payload of the suggest endpoint. Suggestion is
// nil when no name clears the fuzzy threshold.
type SuggestResponse struct {
	Query      string              `json:"query"`
	Suggestion *resolve.Suggestion `json:"suggestion"`
}

// Resolve handles GET /api/v1/resolve?text= and POST /api/v1/resolve with
// a {"text": "..."} body. Results are cached per catalog generation, so a
// refresh never serves matches against a stale catalog.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req validation.ResolveRequest
	switch r.Method {
	case http.MethodPost:
		if err := decodeJSONBody(w, r, &req); err != nil {
			rw.BadRequest(err.Error())
			return
		}
	case http.MethodGet:
		req.Text = r.URL.Query().Get("text")
	default:
		rw.MethodNotAllowed()
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	matches, cached, err := h.resolveMentions(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, resolve.ErrInvalidQuery):
			rw.BadRequest(err.Error())
		case catalog.Unavailable(err):
			rw.ServiceUnavailable("catalog temporarily unavailable")
		default:
			logging.Ctx(r.Context()).Error().Err(err).Msg("Resolve failed")
			rw.InternalError("failed to resolve mentions")
		}
		return
	}

	method := ""
	if len(matches) > 0 {
		method = string(matches[0].Method)
	}
	metrics.RecordResolve(method)

	rw.SuccessWithMeta(ResolveResponse{Text: req.Text, Matches: matches}, &APIMeta{Cached: cached})
}

// resolveMentions consults the cache before the resolver. Keys keep the
// original casing because acronym detection depends on it.
func (h *Handler) resolveMentions(ctx context.Context, text string) ([]resolve.NameMatch, bool, error) {
	key := strconv.FormatUint(h.index.Generation(), 10) + "\x00" + strings.TrimSpace(text)
	if matches, ok := h.resolved.Get(key); ok {
		return matches, true, nil
	}

	matches, err := h.resolver.ResolveMentions(ctx, text, h.catalog.SearchNames)
	if err != nil {
		return nil, false, err
	}
	h.resolved.Add(key, matches)
	return matches, false, nil
}

// Suggest handles GET /api/v1/suggest?q=.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.SuggestRequest{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	resp := SuggestResponse{Query: req.Query}
	if s, ok := h.resolver.Suggest(req.Query); ok {
		resp.Suggestion = &s
	}
	rw.Success(resp)
}
