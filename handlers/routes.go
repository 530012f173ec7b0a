package handlers

import "net/http"

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Root)

	// Users
	mux.HandleFunc("POST /users/{$}", h.CreateUser)
	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("GET /users/{userID}", h.GetUser)
	mux.HandleFunc("GET /users/{userID}/cards", h.GetUserCards)

	// Decks
	mux.HandleFunc("POST /decks/{$}", h.CreateDeck)
	mux.HandleFunc("POST /decks", h.CreateDeck)
	mux.HandleFunc("GET /decks/{$}", h.ListDecks)
	mux.HandleFunc("GET /decks", h.ListDecks)
	mux.HandleFunc("GET /decks/{deckID}", h.GetDeck)

	// Cards
	mux.HandleFunc("POST /decks/{deckID}/cards", h.CreateCard)
	mux.HandleFunc("GET /decks/{deckID}/cards", h.ListCards)

	// Reviews
	mux.HandleFunc("POST /reviews", h.RecordReview)

	return mux
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Adaptive Flashcards API"})
}
