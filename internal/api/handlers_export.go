package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Horopapera/Mind-Map-generator/internal/export"
	"github.com/Horopapera/Mind-Map-generator/internal/layout"
	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	mapID := chi.URLParam(r, "mapID")
	format := export.Format(chi.URLParam(r, "format"))

	contentType := export.ContentType(format)
	if contentType == "" {
		jsonError(w, "unsupported export format", http.StatusNotFound)
		return
	}

	sess := s.sessions.Get(mapID)
	if sess == nil {
		jsonError(w, "map not found", http.StatusNotFound)
		return
	}

	var body []byte
	var err error
	s.sessions.View(mapID, func(f *outline.Forest) {
		switch format {
		case export.FormatJSON:
			body, err = export.JSON(f)
		case export.FormatText:
			body = export.Text(f)
		case export.FormatOPML:
			body, err = export.OPML(f, sess.Title)
		case export.FormatHTML:
			body, err = export.HTML(f, sess.Title)
		case export.FormatSVG:
			// SVG renders a layout; default is the indented tree.
			view := r.URL.Query().Get("view")
			switch layout.Kind(view) {
			case layout.KindRadial:
				body = export.SVG(layout.Radial(f))
			case layout.KindForce:
				opts := layout.DefaultForceOptions()
				opts.Iterations = s.cfg.ForceIterations
				body = export.SVG(layout.Force(f, opts))
			default:
				body = export.SVG(layout.Tree(f))
			}
		}
	})
	if err != nil {
		jsonError(w, "export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "mindmap-"+mapID+"."+string(format)))
	w.Write(body)
}
