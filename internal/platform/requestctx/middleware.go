package requestctx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const maxInboundIDLength = 128

// Skipper allows callers to bypass ID assignment for specific requests.
type Skipper func(r *http.Request) bool

// Middleware assigns a request ID to every inbound request.
type Middleware struct {
	Skipper Skipper
	// NewID is overridable in tests.
	NewID func() string
}

// NewMiddleware constructs a middleware with optional skipper.
func NewMiddleware(skipper Skipper) Middleware {
	return Middleware{Skipper: skipper, NewID: uuid.NewString}
}

// Wrap wraps an http.Handler with request ID handling. An inbound
// X-Request-ID is reused when it looks sane, otherwise a new one is minted.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Skipper != nil && m.Skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		id := sanitize(r.Header.Get(HeaderRequestID))
		if id == "" {
			id = m.newID()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

func (m Middleware) newID() string {
	if m.NewID != nil {
		return m.NewID()
	}
	return uuid.NewString()
}

func sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxInboundIDLength {
		return ""
	}
	for _, r := range value {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return value
}
