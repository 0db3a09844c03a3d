package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/logging"
	"github.com/JonMunkholm/catalogdash/internal/view"
	"github.com/JonMunkholm/catalogdash/internal/web/templates"
)

// handleDashboard renders the full dashboard page. The first visit waits for
// the initial load; a load already in flight is shared, not repeated.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := WithRequestMetadata(r.Context(), r)

	if v := s.dash.View(); !v.Loaded && v.LoadError == nil {
		// A failure is recorded on the dashboard and shown as a notice.
		_ = s.dash.Load(ctx)
	}

	render(w, r, http.StatusOK, templates.Page(view.BuildPage(s.dash.Snapshot())))
}

// handleTable renders the table partial.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	s.renderTable(w, r, nil)
}

// handleSearch applies the search term from the "q" form value.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.dash.SetSearchTerm(r.PostForm.Get("q"))
	s.renderTable(w, r, nil)
}

// handleSort sorts by the {field} parameter, toggling direction when the
// field is already active.
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.SetSort(chi.URLParam(r, "field")); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	s.renderTable(w, r, nil)
}

// handleChangePage moves to the {page} parameter. Out-of-range or
// unparsable pages leave the current page unchanged.
func (s *Server) handleChangePage(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "page")
	page, err := strconv.Atoi(raw)
	if err != nil || !s.dash.ChangePage(page) {
		logging.FromContext(r.Context()).Debug("page change ignored", "requested", raw)
	}
	s.renderTable(w, r, nil)
}

// handlePageSize applies the "size" form value and returns to page 1.
func (s *Server) handlePageSize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	raw := r.PostForm.Get("size")
	size, err := strconv.Atoi(raw)
	if err != nil {
		err = fmt.Errorf("%w: %q", catalog.ErrInvalidPageSize, raw)
		respondError(w, r, err, statusFor(err))
		return
	}
	if err := s.dash.SetPageSize(size); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	s.renderTable(w, r, nil)
}

// handleSelectProduct opens the detail view for {id}.
func (s *Server) handleSelectProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err == nil {
		_, err = s.dash.SelectProduct(id)
	}
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	s.renderSelectedDetail(w, r, nil)
}

// handleEditProduct switches the detail view of {id} to edit mode,
// selecting it first if another product is open.
func (s *Server) handleEditProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	if v := s.dash.View(); !v.HasSelected || v.SelectedID != id {
		if _, err := s.dash.SelectProduct(id); err != nil {
			respondError(w, r, err, statusFor(err))
			return
		}
	}
	if err := s.dash.EnterEditMode(); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	s.renderSelectedDetail(w, r, nil)
}

// handleCancelEdit discards the edit form and shows the product again.
func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	s.dash.CancelEdit()
	s.renderSelectedDetail(w, r, nil)
}

// handleCloseDetail dismisses the detail view.
func (s *Server) handleCloseDetail(w http.ResponseWriter, r *http.Request) {
	s.dash.DismissDetail()
	render(w, r, http.StatusOK, templates.Detail(nil))
}
