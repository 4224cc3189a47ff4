package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxJSONBodyBytes = 1 << 20

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONBody decodes the request body into dst. Content type must be
// application/json and the body is capped at 1MB.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != ContentType.JSON {
		return ErrInvalidContentType
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// PathObjectID reads the named mux path variable as an ObjectID.
func PathObjectID(r *http.Request, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)[name])
}
