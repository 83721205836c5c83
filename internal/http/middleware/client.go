package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"ticketfront/internal/kv"
	"ticketfront/internal/logging"
)

// ClientIDHeader identifies the browser whose orders, wishlist and profile a
// request reads or writes.
const ClientIDHeader = "X-Client-ID"

// ClientID resolves the client namespace for every request. Only UUIDs are
// accepted; anything else falls back to the shared anonymous namespace.
func ClientID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := kv.AnonymousClient
			if raw := strings.TrimSpace(r.Header.Get(ClientIDHeader)); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					clientID = id.String()
				}
			}

			next.ServeHTTP(w, r.WithContext(logging.WithClientID(r.Context(), clientID)))
		})
	}
}
