package middleware

import (
	"log"
	"net/http"

	"postsvc/internal/api/handlers/common"
)

// Recoverer catches panics escaping a request handler and converts them into
// the uniform error body, reporting through the same translator the handlers
// use so panics also produce exactly one error event.
func Recoverer(translator *common.ErrorTranslator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Printf("Panic while serving %s %s: %v", r.Method, r.URL.Path, rec)
					translator.WriteError(r.Context(), w, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
