package middleware

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Chain composes middlewares, the first one being the outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
