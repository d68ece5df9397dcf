package adapthttp

import (
	"errors"
	"net/http"

	"habitlog/internal/app"
)

// handleExport plays the browser-download delivery role: the serialized
// collection is returned as a dados.json attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data, err := s.exporter.Export(s.store.All())
	if errors.Is(err, app.ErrNothingToExport) {
		// Informational, not a failure.
		writeJSON(w, http.StatusOK, map[string]any{"exported": false, "message": err.Error()})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+app.ExportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
