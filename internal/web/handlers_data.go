package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/logging"
	"github.com/JonMunkholm/catalogdash/internal/view"
)

// ProjectionResponse is the JSON form of the visible page.
type ProjectionResponse struct {
	Items      []catalog.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalCount int               `json:"totalCount"`
	RangeStart int               `json:"rangeStart"`
	RangeEnd   int               `json:"rangeEnd"`
	Pages      []int             `json:"pages"`
	HasPrev    bool              `json:"hasPrev"`
	HasNext    bool              `json:"hasNext"`
	SearchTerm string            `json:"searchTerm"`
	SortField  string            `json:"sortField,omitempty"`
	Ascending  bool              `json:"ascending"`
	Info       string            `json:"info"`
}

// StatusResponse reports load and submission state for monitoring.
type StatusResponse struct {
	Loaded            bool   `json:"loaded"`
	Loading           bool   `json:"loading"`
	LoadError         string `json:"loadError,omitempty"`
	Matching          int    `json:"matching"`
	MutationsInFlight int    `json:"mutationsInFlight"`
}

// handleProjection returns the visible page as JSON.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	snap := s.dash.Snapshot()
	proj := snap.Projection

	writeJSON(w, http.StatusOK, ProjectionResponse{
		Items:      proj.Items,
		Page:       proj.Page,
		PageSize:   proj.PageSize,
		TotalPages: proj.TotalPages,
		TotalCount: proj.TotalCount,
		RangeStart: proj.RangeStart,
		RangeEnd:   proj.RangeEnd,
		Pages:      snap.Pagination.Pages,
		HasPrev:    snap.Pagination.HasPrev,
		HasNext:    snap.Pagination.HasNext,
		SearchTerm: snap.SearchTerm,
		SortField:  string(snap.Sort.Field),
		Ascending:  snap.Sort.Ascending,
		Info:       view.RangeInfo(proj),
	})
}

// handleReload fetches the collection again. HTMX callers get the table
// partial, with the load error as a notice on failure.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	ctx := WithRequestMetadata(r.Context(), r)
	err := s.dash.Load(ctx)

	if isHTMX(r) {
		if err != nil {
			logRequestError(r, err, statusFor(err))
		}
		// BuildPage turns the recorded load error into a notice.
		s.renderTable(w, r, nil)
		return
	}

	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	s.handleProjection(w, r)
}

// handleExport downloads the visible page as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	page, products := s.dash.VisiblePage()

	var buf bytes.Buffer
	if err := catalog.Encode(&buf, products); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	filename := catalog.ExportFilename(page, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("export write failed", "error", err)
		return
	}

	logging.FromContext(r.Context()).Info("page exported",
		"page", page,
		"rows", len(products),
		"filename", filename,
	)
}

// handleStatus reports whether the collection is loaded and how many
// submissions are in flight.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	v := s.dash.View()
	resp := StatusResponse{
		Loaded:            v.Loaded,
		Loading:           v.Loading,
		Matching:          s.dash.Snapshot().Projection.TotalCount,
		MutationsInFlight: s.dash.MutationsInFlight(),
	}
	if v.LoadError != nil {
		resp.LoadError = catalog.MapError(v.LoadError).Message
	}
	writeJSON(w, http.StatusOK, resp)
}
