package httpapi

import (
	"encoding/json"
	"net/http"

	"ticketfront/internal/app/orders"
)

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req orders.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	order, err := s.orders.Checkout(r.Context(), clientID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
