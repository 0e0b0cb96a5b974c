package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/km1000101/the-Editors-hub/internal/services"
)

type HealthController struct {
	store     services.StoreServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Posts         int     `json:"posts"`
	Bookmarks     int     `json:"bookmarks"`
	Articles      int     `json:"articles"`
	StateVersion  uint64  `json:"state_version"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Posts:         len(hc.store.BlogPosts()),
		Bookmarks:     len(hc.store.Bookmarks()),
		Articles:      len(hc.store.NewsArticles()),
		StateVersion:  hc.store.Version(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(store services.StoreServiceInterface) *HealthController {
	return &HealthController{
		store:     store,
		startTime: time.Now(),
	}
}
