package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/utils"
)

type createCardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "deckID")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	var req createCardRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		h.writeError(w, r, badRequest("question and answer are required"))
		return
	}

	card, err := h.Service.CreateCard(r.Context(), deckID, req.Question, req.Answer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "deckID")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	cards, err := h.Service.ListCards(r.Context(), deckID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
