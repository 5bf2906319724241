package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by db.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type statter interface {
	Stat() *pgxpool.Stat
}

type healthStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type poolStats struct {
	MaxConns      int32 `json:"max_conns"`
	TotalConns    int32 `json:"total_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	IdleConns     int32 `json:"idle_conns"`
}

// Handler serves the database health endpoints:
//
//	GET /health       200 {"status":"ok"} or 503 with the ping error
//	GET /health/pool  pool counters, 503 when d is not a live pool
func Handler(d Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(AccessLog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := d.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "unavailable", Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, healthStatus{Status: "ok"})
	})

	r.Get("/health/pool", func(w http.ResponseWriter, r *http.Request) {
		s, ok := d.(statter)
		if !ok {
			writeJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "unavailable", Error: "no connection pool"})
			return
		}
		stat := s.Stat()
		writeJSON(w, http.StatusOK, poolStats{
			MaxConns:      stat.MaxConns(),
			TotalConns:    stat.TotalConns(),
			AcquiredConns: stat.AcquiredConns(),
			IdleConns:     stat.IdleConns(),
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
