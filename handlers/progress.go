package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/utils"
)

type reviewRequest struct {
	UserID     uint     `json:"user_id"`
	CardID     uint     `json:"card_id"`
	Confidence *float64 `json:"confidence"`
}

func (h *Handler) RecordReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.UserID == 0 || req.CardID == 0 || req.Confidence == nil {
		h.writeError(w, r, badRequest("user_id, card_id and confidence are required"))
		return
	}

	progress, err := h.Service.RecordReview(r.Context(), req.UserID, req.CardID, *req.Confidence)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, progress)
}

// GetUserCards lists a user's cards for ?mode=learn|recap, optionally
// limited by ?deck_id=.
func (h *Handler) GetUserCards(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.PathID(r, "userID")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}
	deckID, err := utils.QueryID(r, "deck_id")
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.InvalidArgument, err))
		return
	}

	cards, err := h.Service.UserCards(r.Context(), userID, r.URL.Query().Get("mode"), deckID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
