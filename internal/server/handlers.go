package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/midbel/scatter"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.selection(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.render(from, to)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executePage(w, res, s.layout); err != nil {
		s.logger.Error("page rendering failed", "err", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.selection(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.render(from, to)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(res.SVG)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.selection(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.render(from, to)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Snap)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": s.data.Len(),
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, scatter.ErrField) {
		code = http.StatusBadRequest
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, code, map[string]string{
		"error": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
