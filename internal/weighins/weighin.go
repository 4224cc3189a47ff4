package weighins

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var timeNow = time.Now

var ErrWeighInNotFound = errors.New("weigh-in not found")

type WeighIn struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	Weight    float64            `bson:"weight" json:"weight"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type ListParams struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}
