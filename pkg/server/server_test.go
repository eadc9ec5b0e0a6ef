package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shishobooks/nameparser/pkg/config"
	"github.com/shishobooks/nameparser/pkg/database"
	"github.com/shishobooks/nameparser/pkg/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	cfg := config.NewForTest()

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	srv, err := New(cfg, db)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr)

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		expectedCode int
		expectedBody string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"config", http.MethodGet, "/config", "", http.StatusOK, `"batch_max_names":100`},
		{"parse", http.MethodPost, "/names/parse", `{"name":"Jane Doe"}`, http.StatusOK, `"sort_name":"Doe, Jane"`},
		{"contacts", http.MethodGet, "/contacts", "", http.StatusOK, `"total":0`},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, `"code":"not_found"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			} else {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			}
			rr := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}
