package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type tokenVerifier interface {
	VerifyAccessToken(token string) (*auth.Claims, error)
	VerifyRefreshToken(token string) (*auth.Claims, error)
}

type AuthMiddlewareHandler struct {
	verifier tokenVerifier
}

func NewAuthMiddlewareHandler(verifier tokenVerifier) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier: verifier,
	}
}

// RequireAuth admits only requests carrying a valid bearer access token,
// and injects the token's identity into the request context.
func (h *AuthMiddlewareHandler) RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth.api")
			defer span.End()

			token, ok := bearerToken(r)
			if !ok {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "missing-auth-token")
				pkg.WriteJSONError(w, http.StatusUnauthorized, "Missing access token")
				return
			}

			claims, err := h.verifier.VerifyAccessToken(token)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "invalid-auth-token")
				pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired access token")
				return
			}

			identity, err := claims.Identity()
			if err != nil {
				log.Warnf("[auth middleware] token with malformed user id [%s] => %s", claims.UserID, r.URL.Path)
				span.SetStatus(codes.Error, "invalid-user-id")
				pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired access token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
		})
	}
}

// RequirePageSession guards server-rendered pages: browsers navigating to a
// page send no bearer token, so the refresh cookie is used instead.
func (h *AuthMiddlewareHandler) RequirePageSession() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth.page")
			defer span.End()

			claims, err := h.verifier.VerifyRefreshToken(auth.RefreshTokenFromRequest(r))
			if err != nil {
				span.SetStatus(codes.Error, "invalid-session")
				pkg.WriteResponse(w, pkg.ContentType.Text, "401 - please log in first", http.StatusUnauthorized)
				return
			}
			identity, err := claims.Identity()
			if err != nil {
				span.SetStatus(codes.Error, "invalid-user-id")
				pkg.WriteResponse(w, pkg.ContentType.Text, "401 - please log in first", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
