package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds the work done for bodies the handler left unread;
// anything longer is not worth keeping the connection alive for.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what the handler did not read of the body
// and closes it, so the keep-alive connection can serve the next request.
func DrainAndCloseRequest() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
