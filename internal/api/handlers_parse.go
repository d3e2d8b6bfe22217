package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/resumeparser/internal/parser"
	"github.com/dgallion1/resumeparser/internal/store"
)

// uploadError carries the HTTP status to answer with.
type uploadError struct {
	msg  string
	code int
}

func (e *uploadError) Error() string { return e.msg }

var errNoFile = &uploadError{msg: "file is required", code: http.StatusBadRequest}

// handleParse parses an uploaded resume and returns the stored record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.readUpload(w, r)
	if err != nil {
		jsonError(w, err.Error(), uploadStatus(err))
		return
	}

	entry, err := s.parseUpload(filename, data)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/api/records/"+entry.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"id":         entry.ID,
		"record":     entry.Record.Normalized(),
		"json_url":   fmt.Sprintf("/api/records/%s/export.json", entry.ID),
		"csv_url":    fmt.Sprintf("/api/records/%s/export.csv", entry.ID),
		"created_at": entry.CreatedAt,
	})
}

// handleUpload is the browser form target. An empty submission is a no-op.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.readUpload(w, r)
	if errors.Is(err, errNoFile) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.renderPage(w, uploadStatus(err), "index.html", s.indexData(err.Error()))
		return
	}

	entry, err := s.parseUpload(filename, data)
	if err != nil {
		s.renderPage(w, http.StatusBadRequest, "index.html", s.indexData(err.Error()))
		return
	}

	page, err := newResultPage(entry)
	if err != nil {
		s.log.Error("build result page failed", "id", entry.ID, "error", err)
		http.Error(w, "failed to render result", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, http.StatusOK, "result.html", page)
}

// readUpload pulls the "file" part out of a multipart request, enforcing the
// size limit and extension allow-list.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	// Extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return "", nil, &uploadError{
				msg:  fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes),
				code: http.StatusRequestEntityTooLarge,
			}
		}
		return "", nil, &uploadError{msg: "invalid multipart form: " + err.Error(), code: http.StatusBadRequest}
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, errNoFile
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return "", nil, &uploadError{
			msg:  fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
			code: http.StatusBadRequest,
		}
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, &uploadError{msg: "failed to read file", code: http.StatusInternalServerError}
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, &uploadError{
			msg:  fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes),
			code: http.StatusRequestEntityTooLarge,
		}
	}
	return filename, data, nil
}

// parseUpload extracts text, parses it and stores the result.
func (s *Server) parseUpload(filename string, data []byte) (store.Entry, error) {
	text, err := parser.ExtractFile(bytes.NewReader(data), filename)
	if err != nil {
		return store.Entry{}, err
	}

	rec := s.stats.Parse(s.parser, text)
	rec.SourceFile = filename

	entry := store.Entry{
		ID:        store.RecordID(filename, data),
		Filename:  filename,
		Record:    rec,
		CreatedAt: time.Now(),
	}
	s.records.Put(entry)
	s.log.Info("parsed upload",
		"id", entry.ID,
		"filename", filename,
		"bytes", len(data),
		"skills", len(rec.Skills),
		"entries", len(rec.ExperienceParsed),
	)
	return entry, nil
}

func uploadStatus(err error) int {
	var ue *uploadError
	if errors.As(err, &ue) {
		return ue.code
	}
	return http.StatusInternalServerError
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
