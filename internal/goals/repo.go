package goals

import (
	"context"
	"errors"
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

func (r *Repo) Get(ctx context.Context, userID primitive.ObjectID) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal, err := db.FindOne[Goal](ctx, r.coll, bson.M{"userId": userID})
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrGoalNotFound
	}
	return goal, err
}

// Upsert replaces the user's goal, creating it if there is none.
func (r *Repo) Upsert(ctx context.Context, goal *Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var saved Goal
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"userId": goal.UserID},
		upsertUpdate(goal),
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("upsert goal: %w", err)
	}
	return &saved, nil
}

// upsertUpdate keeps createdAt of an existing goal, only a new one gets it set.
func upsertUpdate(goal *Goal) bson.M {
	return bson.M{
		"$set": bson.M{
			"targetWeight": goal.TargetWeight,
			"targetDate":   goal.TargetDate,
			"updatedAt":    goal.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": goal.CreatedAt,
		},
	}
}

func (r *Repo) Delete(ctx context.Context, userID primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}
