package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/middleware"
	"github.com/andrewpaige1/flashcards-api/study"
)

// Handler serves the flashcard API on top of the study service.
type Handler struct {
	Service study.Service
	Log     *logger.Logger
}

func NewHandler(svc study.Service, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Log: log.With("component", "http")}
}

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status by its kind. Internal errors are logged and
// their details withheld from the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.Log.Error("Request failed", "error", err, "path", r.URL.Path, "request_id", middleware.RequestIDFrom(r.Context()))
		msg = "internal server error"
	}
	writeJSON(w, status, ErrorEnvelope{Error: APIError{Message: msg, Code: string(kind)}})
}

func badRequest(msg string) error {
	return apperr.Wrap(apperr.InvalidArgument, errors.New(msg))
}

// decodeBody decodes a JSON body, rejecting unknown fields.
func decodeBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return apperr.New(apperr.InvalidArgument, "invalid request body: %v", err)
	}
	return nil
}
