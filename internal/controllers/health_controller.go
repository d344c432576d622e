package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"sentwatch/internal/services"
	"time"
)

type HealthController struct {
	watch     services.WatchServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Runs          int64   `json:"runs"`
	Errors        int64   `json:"errors"`
	LastRun       string  `json:"last_run"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	lastRun := "never"
	if t := hc.watch.LastRun(); !t.IsZero() {
		lastRun = t.Format(time.RFC3339)
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Runs:          hc.watch.Runs(),
		Errors:        hc.watch.Errors(),
		LastRun:       lastRun,
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
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%dh%dm%ds", h, m, d/time.Second)
}

func NewHealthController(watch services.WatchServiceInterface) *HealthController {
	return &HealthController{
		watch:     watch,
		startTime: time.Now(),
	}
}
