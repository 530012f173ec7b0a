package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/utils"
)

type createDeckRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     uint    `json:"owner_id"`
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		h.writeError(w, r, badRequest("title is required"))
		return
	}
	if req.OwnerID == 0 {
		h.writeError(w, r, badRequest("owner_id is required"))
		return
	}

	deck, err := h.Service.CreateDeck(r.Context(), req.Title, req.Description, req.OwnerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	ownerID, err := utils.QueryID(r, "owner_id")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	decks, err := h.Service.ListDecks(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decks)
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "deckID")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	deck, err := h.Service.GetDeck(r.Context(), deckID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}
