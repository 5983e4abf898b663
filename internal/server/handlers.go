package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/csvdeck/csvdeck-api/internal/tabular"
	"github.com/rs/zerolog/log"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.logged(s.handleHealth))
	mux.HandleFunc("POST /upload", s.logged(s.handleUpload))
	mux.HandleFunc("GET /records", s.logged(s.handleRecords))
	mux.HandleFunc("GET /search", s.logged(s.handleSearch))
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload accepts a multipart file upload and replaces the current
// dataset with its contents. A rejected or unparsable file leaves the
// previous dataset in place.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload requires a 'file' form field")
		return
	}
	defer file.Close()

	result, err := s.dataset.Load(header.Filename, file)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("file %q uploaded successfully", result.Filename),
		"rows":    result.Rows,
		"dataset": result.DatasetID,
	})
}

// handleRecords lists rows with optional equality filters. Every query
// parameter other than skip and limit is treated as a column filter; names
// that match no column are ignored by the engine.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := intParam(query.Get("skip"), 0)
	limit := intParam(query.Get("limit"), s.defaultPageLimit)

	filters := make(map[string]string)
	for key, values := range query {
		if key == "skip" || key == "limit" || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	result, err := s.dataset.Records(filters, skip, limit)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleSearch runs a case-insensitive substring search across the dataset's
// text columns.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	term := query.Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	skip := intParam(query.Get("skip"), 0)
	limit := intParam(query.Get("limit"), s.defaultPageLimit)

	result, err := s.dataset.Search(term, skip, limit)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// logged wraps a handler with request logging.
func (s *Server) logged(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// intParam parses a query integer, falling back to the default when the
// parameter is absent or malformed. Range clamping is the engine's job.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tabular.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, tabular.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, tabular.ErrParse):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
