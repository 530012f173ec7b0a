package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/utils"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		h.writeError(w, r, badRequest("username and email are required"))
		return
	}

	user, err := h.Service.RegisterUser(r.Context(), req.Username, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.PathID(r, "userID")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
