package attendance

import (
	"context"
	"fmt"

	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(coll *mongo.Collection) *Repo {
	return &Repo{
		coll: coll,
	}
}

func (r *Repo) Add(ctx context.Context, attendance *Attendance) (_ *Attendance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.InsertOne(ctx, attendance)
	if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}
	attendance.ID = res.InsertedID.(primitive.ObjectID)
	return attendance, nil
}

func (r *Repo) List(ctx context.Context, userID primitive.ObjectID, params ListParams) (_ []Attendance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter := UserFilter(userID)
	if timestamp := rangeFilter(params); len(timestamp) > 0 {
		filter["timestamp"] = timestamp
	}
	return db.FindAll[Attendance](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
}

// DeleteAllForUser removes every attendance of the user, and only theirs.
func (r *Repo) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.attendance.deleteAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.DeleteMany(ctx, UserFilter(userID))
	if err != nil {
		return 0, fmt.Errorf("delete attendance: %w", err)
	}
	return res.DeletedCount, nil
}

// UserFilter scopes a query to one user.
func UserFilter(userID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID}
}

func rangeFilter(params ListParams) bson.M {
	timestamp := bson.M{}
	if params.From != nil {
		timestamp["$gte"] = *params.From
	}
	if params.To != nil {
		timestamp["$lt"] = *params.To
	}
	return timestamp
}
