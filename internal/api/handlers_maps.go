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

	"github.com/go-chi/chi/v5"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
	"github.com/Horopapera/Mind-Map-generator/internal/parser"
	"github.com/Horopapera/Mind-Map-generator/internal/session"
)

type createMapRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (s *Server) handleCreateMap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req createMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	forest := outline.Parse(req.Text)
	parsesTotal.WithLabelValues("txt").Inc()

	s.storeAndRespond(w, req.Title, req.Text, forest)
}

func (s *Server) handleImportMap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	forest, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "parse failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = "txt"
	}
	parsesTotal.WithLabelValues(ext).Inc()

	title := r.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	s.storeAndRespond(w, title, string(data), forest)
}

// storeAndRespond registers a session for a freshly parsed forest and writes
// the standard creation response.
func (s *Server) storeAndRespond(w http.ResponseWriter, title, source string, forest *outline.Forest) {
	if title == "" {
		if len(forest.Roots) > 0 {
			title = forest.Roots[0].Label
		} else {
			title = "Untitled map"
		}
	}

	sess, err := s.sessions.Create(title, source, forest)
	if err != nil {
		if errors.Is(err, session.ErrStoreFull) {
			jsonError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"id":    sess.ID,
		"title": sess.Title,
		"nodes": forest.Len(),
		"url":   fmt.Sprintf("/api/maps/%s", sess.ID),
	})
}

func (s *Server) handleListMaps(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"maps": s.sessions.List()})
}

func (s *Server) handleGetMap(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	sess := s.sessions.Get(mapID)
	if sess == nil {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}

	var body []byte
	var err error
	s.sessions.View(mapID, func(f *outline.Forest) {
		body, err = json.Marshal(map[string]any{
			"id":    sess.ID,
			"title": sess.Title,
			"nodes": f.Len(),
			"roots": f.Roots,
		})
	})
	if err != nil {
		jsonError(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (s *Server) handleReplaceMap(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req createMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	forest := outline.Parse(req.Text)
	parsesTotal.WithLabelValues("txt").Inc()

	if !s.sessions.Replace(mapID, req.Text, forest) {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":    mapID,
		"nodes": forest.Len(),
	})
}

func (s *Server) handleDeleteMap(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	if s.sessions.Get(mapID) == nil {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}
	s.sessions.Delete(mapID)
	w.WriteHeader(http.StatusNoContent)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
