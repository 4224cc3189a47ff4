package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/users"
	"github.com/2beens/fitlog/internal/validation"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type usersRepo interface {
	Create(ctx context.Context, user *users.User) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error)
}

type refreshTokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	Claim(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error)
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72,maxbytes=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string      `json:"accessToken"`
	User        *users.User `json:"user,omitempty"`
}

type Handler struct {
	usersRepo      usersRepo
	tokenService   *TokenService
	revoker        refreshTokenRevoker
	metricsManager *metrics.Manager
}

func NewHandler(
	usersRepo usersRepo,
	tokenService *TokenService,
	revoker refreshTokenRevoker,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		usersRepo:      usersRepo,
		tokenService:   tokenService,
		revoker:        revoker,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the auth API. rateLimit guards the credential
// endpoints, requireAuth the ones needing an access token.
func (h *Handler) SetupRoutes(r *mux.Router, rateLimit, requireAuth func(http.Handler) http.Handler) {
	r.Handle("/api/auth/register", rateLimit(http.HandlerFunc(h.HandleRegister))).Methods("POST", "OPTIONS").Name("auth-register")
	r.Handle("/api/auth/login", rateLimit(http.HandlerFunc(h.HandleLogin))).Methods("POST", "OPTIONS").Name("auth-login")
	r.Handle("/api/auth/refresh", rateLimit(http.HandlerFunc(h.HandleRefresh))).Methods("POST", "OPTIONS").Name("auth-refresh")
	r.HandleFunc("/api/auth/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("auth-logout")
	r.Handle("/api/auth/me", requireAuth(http.HandlerFunc(h.HandleMe))).Methods("GET", "OPTIONS").Name("auth-me")
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req RegisterRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("register, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = users.NormalizeEmail(req.Email)
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "password must be at most 72 bytes long")
			return
		}
		log.Errorf("register, hash password: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user, err := h.usersRepo.Create(ctx, &users.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			pkg.WriteJSONError(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Errorf("register, create user [%s]: %s", req.Email, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	log.Debugf("new user registered: %s", user.ID.Hex())
	h.writeNewSession(w, user, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req LoginRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("login, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = users.NormalizeEmail(req.Email)
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.usersRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			pkg.BurnPasswordCheck(req.Password)
			h.countLogin("invalid")
			pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Errorf("login, get user [%s]: %s", req.Email, err)
		h.countLogin("error")
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		h.countLogin("invalid")
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.countLogin("ok")
	h.writeNewSession(w, user, http.StatusOK)
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.refresh")
	defer span.End()

	refreshToken := RefreshTokenFromRequest(r)
	if refreshToken == "" {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "No refresh token found")
		return
	}

	claims, err := h.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		log.Tracef("refresh, verify token: %s", err)
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	// rotate out the presented token before minting new ones
	claimed, err := h.revoker.Claim(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		log.Errorf("refresh, claim token [%s]: %s", claims.UserID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}
	if !claimed {
		log.Warnf("refresh, revoked token used by user [%s]", claims.UserID)
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	accessToken, err := h.tokenService.IssueAccessToken(claims.UserID, claims.Email)
	if err != nil {
		log.Errorf("refresh, issue access token: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}
	newRefreshToken, err := h.tokenService.IssueRefreshToken(claims.UserID, claims.Email)
	if err != nil {
		log.Errorf("refresh, issue refresh token: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	h.tokenService.SetRefreshTokenCookie(w, newRefreshToken)
	pkg.WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: accessToken})
}

// HandleLogout is idempotent: missing or invalid cookies are simply cleared.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	if refreshToken := RefreshTokenFromRequest(r); refreshToken != "" {
		claims, err := h.tokenService.VerifyRefreshToken(refreshToken)
		if err == nil {
			if err := h.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
				log.Errorf("logout, revoke refresh token [%s]: %s", claims.UserID, err)
				pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to log out")
				return
			}
		}
	}

	h.tokenService.ClearRefreshTokenCookie(w)
	pkg.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	identity, ok := RequestIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.usersRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Errorf("me, get user [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*users.User{"user": user})
}

func (h *Handler) writeNewSession(w http.ResponseWriter, user *users.User, statusCode int) {
	userID := user.ID.Hex()
	accessToken, err := h.tokenService.IssueAccessToken(userID, user.Email)
	if err != nil {
		log.Errorf("issue access token [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	refreshToken, err := h.tokenService.IssueRefreshToken(userID, user.Email)
	if err != nil {
		log.Errorf("issue refresh token [%s]: %s", userID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.tokenService.SetRefreshTokenCookie(w, refreshToken)
	pkg.WriteJSON(w, statusCode, TokenResponse{
		AccessToken: accessToken,
		User:        user,
	})
}

func (h *Handler) countLogin(outcome string) {
	if h.metricsManager == nil {
		return
	}
	h.metricsManager.CounterLogins.With(prometheus.Labels{"outcome": outcome}).Inc()
}
