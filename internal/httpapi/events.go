package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"ticketfront/internal/catalog"
)

type eventsResponse struct {
	Events []catalog.Event `json:"events"`
	Count  int             `json:"count"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.List(r.Context(), listParams(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: list, Count: len(list)})
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.Featured(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: list, Count: len(list)})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	detail, err := s.events.Detail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := s.events.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Categories []catalog.CategoryCount `json:"categories"`
	}{Categories: counts})
}
