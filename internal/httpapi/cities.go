package httpapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ticketfront/internal/catalog"
)

type citiesResponse struct {
	Cities []catalog.City `json:"cities"`
	Count  int            `json:"count"`
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	var (
		list []catalog.City
		err  error
	)
	if term := r.URL.Query().Get("q"); strings.TrimSpace(term) != "" {
		list, err = s.cities.Search(r.Context(), term)
	} else {
		list, err = s.cities.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, citiesResponse{Cities: list, Count: len(list)})
}

func (s *Server) handleCity(w http.ResponseWriter, r *http.Request) {
	view, err := s.cities.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCityEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.cities.Events(r.Context(), mux.Vars(r)["id"], listParams(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: list, Count: len(list)})
}
