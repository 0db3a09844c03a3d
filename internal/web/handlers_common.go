package web

// handlers_common.go holds helpers shared by the dashboard handlers.

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/logging"
	"github.com/JonMunkholm/catalogdash/internal/view"
	"github.com/JonMunkholm/catalogdash/internal/web/templates"
)

// render writes c as an HTML response with the given status.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render failed", "path", r.URL.Path, "error", err)
	}
}

// renderTable renders the table partial for the current dashboard state.
func (s *Server) renderTable(w http.ResponseWriter, r *http.Request, notice *view.Notice) {
	m := view.BuildPage(s.dash.Snapshot())
	if notice != nil {
		m.Notice = notice
	}
	render(w, r, http.StatusOK, templates.Table(m))
}

// renderSelectedDetail renders the detail partial for the selected product,
// or an empty fragment when nothing is selected.
func (s *Server) renderSelectedDetail(w http.ResponseWriter, r *http.Request, notice *view.Notice) {
	snap := s.dash.Snapshot()
	if snap.Selected == nil {
		render(w, r, http.StatusOK, templates.Detail(nil))
		return
	}
	d := view.BuildDetail(*snap.Selected, snap.EditMode, nil)
	d.Notice = notice
	render(w, r, http.StatusOK, templates.Detail(d))
}

// triggerProductsChanged tells the page to refresh the table after a
// successful submission.
func triggerProductsChanged(w http.ResponseWriter) {
	w.Header().Set("HX-Trigger", view.ProductsChangedEvent)
}

// parseIDParam parses the {id} URL parameter. An unparsable id is reported
// as a missing product.
func parseIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", catalog.ErrProductNotFound, raw)
	}
	return id, nil
}

// formList returns every value submitted for name, one entry per line.
// Commas are kept since they are legal inside a URL.
func formList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.PostForm[name] {
		for _, line := range strings.Split(v, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
