package web

// handlers_mutations.go handles the edit and create form submissions.
//
// A rejected form is re-rendered with the submitted values and inline field
// messages. A failed API call is re-rendered with an error notice and local
// data left untouched. Success fires the productsChanged event so the table
// refreshes itself.

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/view"
	"github.com/JonMunkholm/catalogdash/internal/web/templates"
)

// handleUpdateProduct saves the edit form for {id}.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	form := catalog.UpdateForm{
		Title:       r.PostForm.Get("title"),
		Price:       r.PostForm.Get("price"),
		Description: r.PostForm.Get("description"),
	}

	ctx := WithRequestMetadata(r.Context(), r)
	updated, err := s.dash.SubmitUpdate(ctx, id, form)
	if err != nil {
		if wantsJSON(r) && !isHTMX(r) {
			respondError(w, r, err, statusFor(err))
			return
		}
		s.renderRejectedUpdate(w, r, id, form, err)
		return
	}

	if wantsJSON(r) && !isHTMX(r) {
		writeJSON(w, http.StatusOK, updated)
		return
	}

	triggerProductsChanged(w)
	d := view.BuildDetail(updated, false, nil)
	d.Notice = &view.Notice{Kind: "success", Message: "Product updated successfully"}
	render(w, r, http.StatusOK, templates.Detail(d))
}

// renderRejectedUpdate re-renders the edit form with the submitted values.
func (s *Server) renderRejectedUpdate(w http.ResponseWriter, r *http.Request, id int, form catalog.UpdateForm, err error) {
	status := statusFor(err)

	var base catalog.Product
	if snap := s.dash.Snapshot(); snap.Selected != nil && snap.Selected.ID == id {
		base = *snap.Selected
	} else {
		base = catalog.Product{ID: id}
	}

	d := view.BuildDetail(base, true, nil)
	d.Title = form.Title
	d.PriceValue = form.Price
	d.Description = form.Description

	var ve *catalog.ValidationError
	if errors.As(err, &ve) {
		d.FieldErrors = ve.Fields
	} else {
		n := noticeFor(logRequestError(r, err, status))
		d.Notice = &n
	}
	render(w, r, status, templates.Detail(d))
}

// handleCreateProduct creates a product from the create form.
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	values := map[string]string{
		"title":       r.PostForm.Get("title"),
		"price":       r.PostForm.Get("price"),
		"description": r.PostForm.Get("description"),
		"categoryId":  r.PostForm.Get("categoryId"),
		"images":      strings.Join(r.PostForm["images"], "\n"),
	}
	// An unparsable category id stays 0 and fails the gt=0 check.
	categoryID, _ := strconv.Atoi(strings.TrimSpace(values["categoryId"]))

	form := catalog.CreateForm{
		Title:       values["title"],
		Price:       values["price"],
		Description: values["description"],
		CategoryID:  categoryID,
		Images:      formList(r, "images"),
	}

	ctx := WithRequestMetadata(r.Context(), r)
	created, err := s.dash.SubmitCreate(ctx, form)
	if err != nil {
		if wantsJSON(r) && !isHTMX(r) {
			respondError(w, r, err, statusFor(err))
			return
		}

		status := statusFor(err)
		m := view.CreateFormModel{Values: values}
		var ve *catalog.ValidationError
		if errors.As(err, &ve) {
			m.FieldErrors = ve.Fields
		} else {
			n := noticeFor(logRequestError(r, err, status))
			m.Notice = &n
		}
		render(w, r, status, templates.CreateForm(m))
		return
	}

	if wantsJSON(r) && !isHTMX(r) {
		writeJSON(w, http.StatusCreated, created)
		return
	}

	triggerProductsChanged(w)
	render(w, r, http.StatusOK, templates.CreateForm(view.CreateFormModel{
		Notice: &view.Notice{Kind: "success", Message: "Product " + strconv.Itoa(created.ID) + " created"},
	}))
}
