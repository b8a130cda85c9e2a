package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Horopapera/Mind-Map-generator/internal/layout"
	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

func (s *Server) handleToggleNode(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	nodeID, err := strconv.Atoi(chi.URLParam(r, "nodeID"))
	if err != nil {
		jsonError(w, "node id must be an integer", http.StatusBadRequest)
		return
	}

	found, exists := s.sessions.Toggle(mapID, nodeID)
	if !exists {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}

	// An unknown node id is a no-op by contract, not an error.
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"toggled": found})
}

func (s *Server) handleExpandAll(w http.ResponseWriter, r *http.Request) {
	s.setAllExpansion(w, r, true)
}

func (s *Server) handleCollapseAll(w http.ResponseWriter, r *http.Request) {
	s.setAllExpansion(w, r, false)
}

func (s *Server) setAllExpansion(w http.ResponseWriter, r *http.Request, expanded bool) {
	mapID := chi.URLParam(r, "mapID")
	if !s.sessions.SetAllExpanded(mapID, expanded) {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"expanded": expanded})
}

type flatNode struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Level    int    `json:"level"`
	Expanded bool   `json:"expanded"`
	ParentID int    `json:"parentId,omitempty"`
}

func (s *Server) handleFlatten(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")

	var nodes []flatNode
	ok := s.sessions.View(mapID, func(f *outline.Forest) {
		for _, n := range f.Flatten() {
			fn := flatNode{
				ID:       n.ID,
				Label:    n.Label,
				Level:    n.Level,
				Expanded: n.Expanded,
			}
			if p := n.Parent(); p != nil {
				fn.ParentID = p.ID
			}
			nodes = append(nodes, fn)
		}
	})
	if !ok {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"nodes": nodes})
}

type searchMatch struct {
	ID         int      `json:"id"`
	Label      string   `json:"label"`
	Level      int      `json:"level"`
	Breadcrumb []string `json:"breadcrumb"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	query := r.URL.Query().Get("q")

	matches := []searchMatch{}
	ok := s.sessions.View(mapID, func(f *outline.Forest) {
		for _, n := range f.Search(query) {
			matches = append(matches, searchMatch{
				ID:         n.ID,
				Label:      n.Label,
				Level:      n.Level,
				Breadcrumb: n.Breadcrumb(),
			})
		}
	})
	if !ok {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"query": query, "matches": matches})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	kind := layout.Kind(chi.URLParam(r, "kind"))

	var res *layout.Result
	ok := s.sessions.View(mapID, func(f *outline.Forest) {
		switch kind {
		case layout.KindTree:
			res = layout.Tree(f)
		case layout.KindRadial:
			res = layout.Radial(f)
		case layout.KindForce:
			opts := layout.DefaultForceOptions()
			opts.Iterations = s.cfg.ForceIterations
			res = layout.Force(f, opts)
		}
	})
	if !ok {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}
	if res == nil {
		jsonError(w, "unknown layout kind", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
