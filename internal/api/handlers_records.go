package api

import (
	"errors"
	"net/http"

	"github.com/dgallion1/resumeparser/internal/export"
	"github.com/dgallion1/resumeparser/internal/resume"
	"github.com/dgallion1/resumeparser/internal/store"
	"github.com/go-chi/chi/v5"
)

const (
	exportJSONName = "parsed_resume.json"
	exportCSVName  = "parsed_resume.csv"
)

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := export.WriteJSON(w, entry.Record); err != nil {
		s.log.Error("write record failed", "id", entry.ID, "error", err)
	}
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportJSONName+`"`)
	if err := export.WriteJSON(w, entry.Record); err != nil {
		s.log.Error("export json failed", "id", entry.ID, "error", err)
	}
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportCSVName+`"`)
	if err := export.WriteCSV(w, []resume.Record{entry.Record}); err != nil {
		s.log.Error("export csv failed", "id", entry.ID, "error", err)
	}
}

// lookup resolves the {id} URL parameter, answering 404 itself on a miss.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (store.Entry, bool) {
	id := chi.URLParam(r, "id")
	entry, err := s.records.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "record not found", http.StatusNotFound)
		return store.Entry{}, false
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return store.Entry{}, false
	}
	return entry, true
}
