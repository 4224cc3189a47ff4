package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var timeNow = time.Now

// Attendance is a single gym visit.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
}

type ListParams struct {
	From *time.Time
	To   *time.Time
}
