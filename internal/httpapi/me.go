package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ticketfront/internal/app/orders"
	"ticketfront/internal/app/profiles"
	"ticketfront/internal/catalog"
)

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	tab := orders.ParseTab(r.URL.Query().Get("tab"))

	list, err := s.orders.List(r.Context(), clientID(r), tab)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Tab    orders.Tab     `json:"tab"`
		Orders []orders.Order `json:"orders"`
	}{Tab: tab, Orders: list})
}

type wishlistResponse struct {
	Events []catalog.Event `json:"events"`
}

type wishlistRequest struct {
	EventID string `json:"eventId"`
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	saved, err := s.wishlist.List(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Events: saved})
}

func (s *Server) handleWishlistAdd(w http.ResponseWriter, r *http.Request) {
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "eventId is required"})
		return
	}

	saved, err := s.wishlist.Add(r.Context(), clientID(r), req.EventID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Events: saved})
}

func (s *Server) handleWishlistRemove(w http.ResponseWriter, r *http.Request) {
	saved, err := s.wishlist.Remove(r.Context(), clientID(r), mux.Vars(r)["eventId"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Events: saved})
}

func (s *Server) handleWishlistContains(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	saved, err := s.wishlist.Contains(r.Context(), clientID(r), eventID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		EventID    string `json:"eventId"`
		InWishlist bool   `json:"inWishlist"`
	}{EventID: eventID, InWishlist: saved})
}

func (s *Server) handleWishlistClear(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlist.Clear(r.Context(), clientID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var req profiles.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	profile, err := s.profiles.Update(r.Context(), clientID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
