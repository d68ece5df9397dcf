package adapthttp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"habitlog/internal/app"
	"habitlog/internal/domain"
)

var errRecordNotFound = errors.New("record not found")

// recordInput carries the raw form values. Amounts stay strings so the store
// applies the decimal-separator-tolerant parsing rule.
type recordInput struct {
	Water    string `json:"water"`
	Exercise string `json:"exercise"`
	Calories string `json:"calories"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		mode := domain.ParseSortMode(r.URL.Query().Get("sort"))
		items := app.Project(s.store.All(), mode)
		writeJSON(w, http.StatusOK, map[string]any{"sort": mode, "items": items})
	case http.MethodPost:
		var body recordInput
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec := s.store.Create(r.Context(), body.Water, body.Exercise, body.Calories)
		writeJSON(w, http.StatusCreated, rec)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecordByID(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body recordInput
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, ok := s.store.Update(r.Context(), id, body.Water, body.Exercise, body.Calories)
		if !ok {
			writeError(w, http.StatusNotFound, errRecordNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	case http.MethodDelete:
		if !s.store.Delete(r.Context(), id) {
			writeError(w, http.StatusNotFound, errRecordNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func recordID(urlPath string) (int64, error) {
	raw := strings.TrimPrefix(urlPath, "/records/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid record id")
	}
	return id, nil
}
