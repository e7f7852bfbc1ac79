package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

var errNoPriceAvailable = errors.New("no price available")

func (s *Server) LatestPrice(w http.ResponseWriter, _ *http.Request) {
	quote := s.quotes.Latest()
	if quote == nil {
		writeError(w, http.StatusNotFound, errNoPriceAvailable)

		return
	}

	writeJSON(w, http.StatusOK, quote)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
