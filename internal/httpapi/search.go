package httpapi

import (
	"net/http"

	"ticketfront/internal/catalog"
)

type searchResponse struct {
	Query  string          `json:"query"`
	Events []catalog.Event `json:"events"`
	Cities []catalog.City  `json:"cities"`
}

// handleSearch backs the search page. type=events or type=cities narrows the
// result; anything else returns both.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	kind := r.URL.Query().Get("type")

	resp := searchResponse{
		Query:  term,
		Events: []catalog.Event{},
		Cities: []catalog.City{},
	}

	// An empty term would put the events service in listing mode.
	if kind != "cities" && term != "" {
		found, err := s.events.List(r.Context(), catalog.Params{SearchTerm: term})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		resp.Events = found
	}

	if kind != "events" {
		found, err := s.cities.Search(r.Context(), term)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		resp.Cities = found
	}

	writeJSON(w, http.StatusOK, resp)
}
