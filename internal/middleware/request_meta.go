package middleware

import (
	"net/http"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// CaptureRequestMeta stores the request id, client address and user agent
// in the context for audit entries. It must run after chi's RequestID and
// RealIP middleware.
func CaptureRequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequestMeta(r.Context(), audit.RequestMeta{
			RequestID: chimw.GetReqID(r.Context()),
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
