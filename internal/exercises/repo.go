package exercises

import (
	"context"
	"errors"
	"fmt"
	"regexp"

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

func (r *Repo) Get(ctx context.Context, id primitive.ObjectID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := db.FindOne[Exercise](ctx, r.coll, bson.M{"_id": id})
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrExerciseNotFound
	}
	return exercise, err
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.FindAll[Exercise](ctx, r.coll, listFilter(params), options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

func (r *Repo) InsertMany(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.insertMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(exercises) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(exercises))
	for _, e := range exercises {
		docs = append(docs, e)
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert exercises: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func listFilter(params ListParams) bson.M {
	filter := bson.M{}
	if params.MuscleGroup != "" {
		filter["muscleGroup"] = params.MuscleGroup
	}
	if params.Query != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(params.Query), Options: "i"}
	}
	return filter
}
