package sessions

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var timeNow = time.Now

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists for that day")
	ErrSelfMakeUp      = errors.New("session cannot make up for itself")
)

// Session is a planned training day. MadeUpBySessionID links a missed
// session to the one that substituted for it.
type Session struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID  `bson:"userId" json:"userId"`
	Date              time.Time           `bson:"date" json:"date"`
	CheckIn           bool                `bson:"checkIn" json:"checkIn"`
	MadeUpBySessionID *primitive.ObjectID `bson:"madeUpBySessionId,omitempty" json:"madeUpBySessionId,omitempty"`
	Note              string              `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
}
