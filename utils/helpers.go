package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// PathID parses a numeric id from a path wildcard such as {deckID}.
func PathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// QueryID parses an optional numeric query parameter; absent or empty
// yields nil.
func QueryID(r *http.Request, name string) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	v := uint(id)
	return &v, nil
}
