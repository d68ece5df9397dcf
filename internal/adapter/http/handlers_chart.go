package adapthttp

import (
	"net/http"

	"habitlog/internal/app"
	"habitlog/internal/domain"
)

func (s *Server) handleChartWater(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	mode := domain.ParseSortMode(r.URL.Query().Get("sort"))
	points := app.ChartPoints(app.Project(s.store.All(), mode))

	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		values = append(values, p.Water)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sort":   mode,
		"labels": labels,
		"values": values,
	})
}
