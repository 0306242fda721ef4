package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsServer serves the prometheus registry on its own listener.
type StatsServer struct {
	server *http.Server
}

// NewStatsServer returns a new StatsServer listening on addr.
func NewStatsServer(addr string) *StatsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &StatsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: time.Second * 10,
			ReadTimeout:       time.Second * 10,
			WriteTimeout:      time.Second * 10,
			MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
		},
	}
}

// Handler returns the HTTP handler of the stats server.
func (s *StatsServer) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe starts the StatsServer.
func (s *StatsServer) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the StatsServer.
func (s *StatsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
