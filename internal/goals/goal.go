package goals

import (
	"errors"
	"math"
	"time"

	"github.com/2beens/fitlog/internal/weighins"
	"github.com/2beens/fitlog/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var timeNow = time.Now

var ErrGoalNotFound = errors.New("goal not found")

// Goal is the user's target weight, one per user.
type Goal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	TargetWeight float64            `bson:"targetWeight" json:"targetWeight"`
	TargetDate   time.Time          `bson:"targetDate" json:"targetDate"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Progress struct {
	Goal          *Goal             `json:"goal"`
	LatestWeighIn *weighins.WeighIn `json:"latestWeighIn"`
	// Remaining is the latest weight minus the target, nil without weigh-ins.
	Remaining *float64 `json:"remaining"`
	// DaysLeft until the target date, negative once it passed.
	DaysLeft int `json:"daysLeft"`
}

func NewProgress(goal *Goal, latest *weighins.WeighIn, now time.Time) Progress {
	progress := Progress{
		Goal:          goal,
		LatestWeighIn: latest,
		DaysLeft:      int(pkg.TruncateToDay(goal.TargetDate).Sub(pkg.TruncateToDay(now)).Hours() / 24),
	}
	if latest != nil {
		remaining := math.Round((latest.Weight-goal.TargetWeight)*100) / 100
		progress.Remaining = &remaining
	}
	return progress
}
