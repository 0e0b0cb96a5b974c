package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/services"
)

func TestHealth_ReturnsOK(t *testing.T) {
	store := services.NewStoreService()
	store.Dispatch(models.AddBlogPost{Post: models.BlogPost{ID: "1"}})
	store.Dispatch(models.AddBookmark{Bookmark: models.Bookmark{ID: "b1"}})
	hc := NewHealthController(store)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(1), resp["posts"])
	assert.Equal(t, float64(1), resp["bookmarks"])
	assert.Equal(t, float64(0), resp["articles"])
	assert.Equal(t, float64(2), resp["state_version"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(services.NewStoreService())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
