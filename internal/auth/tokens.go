package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RefreshTokenCookieName = "refreshToken"
	defaultIssuer          = "fitlog"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by both access and refresh tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenServiceParams struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	SecureCookies bool
}

type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	secureCookies bool
	issuer        string

	// now is replaced in tests to mint already expired tokens
	now func() time.Time
}

func NewTokenService(params TokenServiceParams) (*TokenService, error) {
	if params.AccessSecret == "" || params.RefreshSecret == "" {
		return nil, errors.New("access and refresh token secrets must be set")
	}
	if params.AccessSecret == params.RefreshSecret {
		return nil, errors.New("access and refresh token secrets must differ")
	}
	if params.AccessTTL <= 0 || params.RefreshTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &TokenService{
		accessSecret:  []byte(params.AccessSecret),
		refreshSecret: []byte(params.RefreshSecret),
		accessTTL:     params.AccessTTL,
		refreshTTL:    params.RefreshTTL,
		secureCookies: params.SecureCookies,
		issuer:        defaultIssuer,
		now:           time.Now,
	}, nil
}

func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *TokenService) IssueAccessToken(userID, email string) (string, error) {
	return s.sign(userID, email, s.accessTTL, s.accessSecret)
}

func (s *TokenService) IssueRefreshToken(userID, email string) (string, error) {
	return s.sign(userID, email, s.refreshTTL, s.refreshSecret)
}

func (s *TokenService) sign(userID, email string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *TokenService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, s.refreshSecret)
}

// verify returns ErrTokenExpired or ErrTokenInvalid, never the parser error.
func (s *TokenService) verify(tokenString string, secret []byte) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenInvalid
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// SetRefreshTokenCookie stores the refresh token in an HTTP-only cookie,
// the only place it is ever kept.
func (s *TokenService) SetRefreshTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.now().Add(s.refreshTTL),
		MaxAge:   int(s.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearRefreshTokenCookie expires the refresh cookie. Safe to call when no cookie was set.
func (s *TokenService) ClearRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// RefreshTokenFromRequest returns the refresh cookie value, empty if not present.
func RefreshTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
