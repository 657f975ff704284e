// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
)

// maxPeekBytes bounds the body read when looking for a farm id.
const maxPeekBytes = 1 << 20

// FarmIDFromRequest resolves the target farm using a fixed precedence,
// stopping at the first surface that yields a positive integer:
// already-resolved context value, query parameter, URL path parameter, JSON
// body field. The precedence is load-bearing, a query parameter always beats
// a conflicting body field. Returns ErrFarmIDRequired when no surface yields
// a parseable id.
func FarmIDFromRequest(r *http.Request) (int64, error) {
	if id, ok := FarmIDFromContext(r.Context()); ok {
		return id, nil
	}

	if id, ok := parseFarmID(r.URL.Query().Get("farmId")); ok {
		return id, nil
	}

	if id, ok := parseFarmID(chi.URLParam(r, "farmId")); ok {
		return id, nil
	}

	if id, ok := farmIDFromBody(r); ok {
		return id, nil
	}

	return 0, ErrFarmIDRequired
}

// farmIDFromBody peeks at a JSON request body without consuming the stream,
// the body is restored so downstream handlers can decode it again.
func farmIDFromBody(r *http.Request) (int64, bool) {
	if r.Body == nil || r.Body == http.NoBody {
		return 0, false
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return 0, false
	}

	var body struct {
		FarmID json.Number `json:"farmId"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, false
	}

	return parseFarmID(body.FarmID.String())
}

func parseFarmID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
