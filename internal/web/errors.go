package web

// errors.go provides unified error response handling for the web layer.
//
// Every error is logged with its technical detail and request ID, then
// returned to the client as the catalog.MapError message in the format the
// request asked for (HTMX fragment, JSON, or plain HTML).

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/logging"
	"github.com/JonMunkholm/catalogdash/internal/view"
	"github.com/JonMunkholm/catalogdash/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Action  string              `json:"action,omitempty"`
	Code    string              `json:"code"`
	Fields  catalog.FieldErrors `json:"fields,omitempty"`
}

// respondError logs err and writes the user-facing message for it.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := logRequestError(r, err, statusCode)

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, userMsg, statusCode)
	case wantsJSON(r):
		respondErrorJSON(w, err, userMsg, statusCode)
	default:
		respondErrorHTML(w, err, statusCode)
	}
}

// logRequestError logs the technical error with request context and returns
// the mapped user message. Server-side failures log at error level.
func logRequestError(r *http.Request, err error, statusCode int) catalog.UserMessage {
	userMsg := catalog.MapError(err)

	logger := logging.FromContext(r.Context())
	logArgs := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	}
	if !catalog.IsUserFacing(err) {
		logArgs = append(logArgs, "unmapped", true)
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request error", logArgs...)
	} else {
		logger.Warn("request error", logArgs...)
	}
	return userMsg
}

// statusFor picks the HTTP status for a dashboard error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrValidation),
		errors.Is(err, catalog.ErrInvalidPageSize),
		errors.Is(err, catalog.ErrInvalidSortField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrMutationBusy):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, catalog.ErrFetch),
		errors.Is(err, catalog.ErrUpdateFailed),
		errors.Is(err, catalog.ErrCreateFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, err error, msg catalog.UserMessage, statusCode int) {
	resp := ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}
	var ve *catalog.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// respondErrorHTML writes a plain HTML error response.
func respondErrorHTML(w http.ResponseWriter, err error, statusCode int) {
	http.Error(w, catalog.FormatUserError(err), statusCode)
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg catalog.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	templates.Alert(noticeFor(msg)).Render(r.Context(), w)
}

// noticeFor converts a mapped error to an error notice.
func noticeFor(msg catalog.UserMessage) view.Notice {
	return view.Notice{Kind: "error", Message: msg.Message, Action: msg.Action, Code: msg.Code}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}

	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
