// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
)

func requestWithChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestFarmIDFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		setup       func() *http.Request
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Context value wins over everything",
			setup: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/test?farmId=5", nil)
				return r.WithContext(WithFarmID(r.Context(), 3))
			},
			expectedID: 3,
		},
		{
			name: "Query parameter",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test?farmId=5", nil)
			},
			expectedID: 5,
		},
		{
			name: "Query parameter beats body field",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/test?farmId=5", strings.NewReader(`{"farmId": 7}`))
			},
			expectedID: 5,
		},
		{
			name: "Path parameter",
			setup: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/farms/9", nil)
				return requestWithChiParam(r, "farmId", "9")
			},
			expectedID: 9,
		},
		{
			name: "Query parameter beats path parameter",
			setup: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/farms/9?farmId=5", nil)
				return requestWithChiParam(r, "farmId", "9")
			},
			expectedID: 5,
		},
		{
			name: "JSON body number field",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"farmId": 7}`))
			},
			expectedID: 7,
		},
		{
			name: "JSON body string field",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"farmId": "7"}`))
			},
			expectedID: 7,
		},
		{
			name: "No surface yields an id",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test", nil)
			},
			expectedErr: ErrFarmIDRequired,
		},
		{
			name: "Zero is rejected",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test?farmId=0", nil)
			},
			expectedErr: ErrFarmIDRequired,
		},
		{
			name: "Negative is rejected",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test?farmId=-4", nil)
			},
			expectedErr: ErrFarmIDRequired,
		},
		{
			name: "Non-numeric query is rejected",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test?farmId=abc", nil)
			},
			expectedErr: ErrFarmIDRequired,
		},
		{
			name: "Malformed JSON body is not an id",
			setup: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"farmId":`))
			},
			expectedErr: ErrFarmIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.setup()

			id, err := FarmIDFromRequest(req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expectedID {
				t.Errorf("expected farm id %d, got %d", tt.expectedID, id)
			}
		})
	}
}

func TestFarmIDFromRequest_BodyRestored(t *testing.T) {
	payload := `{"farmId": 7, "email": "grower@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(payload))

	id, err := FarmIDFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected farm id 7, got %d", id)
	}

	// The body must still be fully readable by the handler
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("failed to re-read body: %v", err)
	}
	if string(raw) != payload {
		t.Errorf("expected body %q after peek, got %q", payload, string(raw))
	}
}

func TestFarmIDFromRequest_Idempotent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test?farmId=5", nil)

	first, err := FarmIDFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second resolution with the first result in context must agree
	req = req.WithContext(WithFarmID(req.Context(), first))
	second, err := FarmIDFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected idempotent resolution, got %d then %d", first, second)
	}
}
