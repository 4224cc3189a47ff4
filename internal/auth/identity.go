package auth

import (
	"context"
	"net/http"

	"github.com/2beens/fitlog/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type identityCtxKey struct{}

// Identity of the authenticated user, injected by the auth middleware.
type Identity struct {
	UserID primitive.ObjectID
	Email  string
}

func (c *Claims) Identity() (Identity, error) {
	userID, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{
		UserID: userID,
		Email:  c.Email,
	}, nil
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

// RequestIdentity returns the identity the auth middleware attached to r, and
// writes a 401 when there is none.
func RequestIdentity(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Missing access token")
	}
	return identity, ok
}
