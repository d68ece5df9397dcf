// Package adapthttp is the driving HTTP adapter: it routes requests to the
// record store and its derived views.
package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"habitlog/internal/app"
)

// Server routes HTTP requests to application services.
type Server struct {
	store    *app.RecordStore
	exporter *app.Exporter
	logger   *zap.Logger
	webDir   string
	gatherer prometheus.Gatherer
}

// New creates a Server wired to the given services. gatherer may be nil to
// disable the /metrics endpoint; webDir may be empty to disable static
// serving.
func New(store *app.RecordStore, exporter *app.Exporter, logger *zap.Logger, webDir string, gatherer prometheus.Gatherer) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: store, exporter: exporter, logger: logger, webDir: webDir, gatherer: gatherer}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/records", s.handleRecords)
	api.HandleFunc("/records/", s.handleRecordByID)
	api.HandleFunc("/chart/water", s.handleChartWater)
	api.HandleFunc("/export", s.handleExport)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.gatherer != nil {
		root.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return s.loggingMiddleware(withNoCache(root))
}
