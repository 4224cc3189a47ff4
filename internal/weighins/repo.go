package weighins

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

func (r *Repo) Add(ctx context.Context, weighIn *WeighIn) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.InsertOne(ctx, weighIn)
	if err != nil {
		return nil, fmt.Errorf("insert weigh-in: %w", err)
	}
	weighIn.ID = res.InsertedID.(primitive.ObjectID)
	return weighIn, nil
}

// List returns the user's weigh-ins, newest first.
func (r *Repo) List(ctx context.Context, userID primitive.ObjectID, params ListParams) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter := bson.M{"userId": userID}
	date := bson.M{}
	if params.From != nil {
		date["$gte"] = *params.From
	}
	if params.To != nil {
		date["$lt"] = *params.To
	}
	if len(date) > 0 {
		filter["date"] = date
	}

	opts := options.Find().SetSort(newestFirst()).SetLimit(params.Limit)
	return db.FindAll[WeighIn](ctx, r.coll, filter, opts)
}

func (r *Repo) Latest(ctx context.Context, userID primitive.ObjectID) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weighIn, err := db.FindOne[WeighIn](ctx, r.coll, bson.M{"userId": userID}, options.FindOne().SetSort(newestFirst()))
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrWeighInNotFound
	}
	return weighIn, err
}

// Update sets date, weight and note of the user's weigh-in.
func (r *Repo) Update(ctx context.Context, weighIn *WeighIn) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated WeighIn
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": weighIn.ID, "userId": weighIn.UserID},
		bson.M{"$set": bson.M{
			"date":   weighIn.Date,
			"weight": weighIn.Weight,
			"note":   weighIn.Note,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWeighInNotFound
		}
		return nil, fmt.Errorf("update weigh-in: %w", err)
	}
	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete weigh-in: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrWeighInNotFound
	}
	return nil
}

func newestFirst() bson.D {
	return bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}
}
