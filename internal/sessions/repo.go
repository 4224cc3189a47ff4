package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (r *Repo) Create(ctx context.Context, session *Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSessionExists
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}
	session.ID = res.InsertedID.(primitive.ObjectID)
	return session, nil
}

// List returns the user's sessions in [from, to), ordered by date.
func (r *Repo) List(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lt": to},
	}
	return db.FindAll[Session](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
}

func (r *Repo) Get(ctx context.Context, userID, id primitive.ObjectID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := db.FindOne[Session](ctx, r.coll, bson.M{"_id": id, "userId": userID})
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	return session, err
}

func (r *Repo) SetCheckIn(ctx context.Context, userID, id primitive.ObjectID, checkIn bool) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setCheckIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.findOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": bson.M{"checkIn": checkIn}})
}

// SetMadeUpBy links (or with a nil madeUpBy, unlinks) the make-up session.
func (r *Repo) SetMadeUpBy(ctx context.Context, userID, id primitive.ObjectID, madeUpBy *primitive.ObjectID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setMadeUpBy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	update := bson.M{"$unset": bson.M{"madeUpBySessionId": ""}}
	if madeUpBy != nil {
		update = bson.M{"$set": bson.M{"madeUpBySessionId": *madeUpBy}}
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update)
}

func (r *Repo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*Session, error) {
	var session Session
	err := r.coll.FindOneAndUpdate(
		ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	return &session, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// UnlinkMadeUpBy removes every link of the user's sessions pointing to madeUpBy.
func (r *Repo) UnlinkMadeUpBy(ctx context.Context, userID, madeUpBy primitive.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.unlinkMadeUpBy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.UpdateMany(
		ctx,
		bson.M{"userId": userID, "madeUpBySessionId": madeUpBy},
		bson.M{"$unset": bson.M{"madeUpBySessionId": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("unlink made up sessions: %w", err)
	}
	return res.ModifiedCount, nil
}

// ResetCheckIns clears the check-in flag and the make-up link of all the user's sessions.
func (r *Repo) ResetCheckIns(ctx context.Context, userID primitive.ObjectID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.resetCheckIns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := r.coll.UpdateMany(
		ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":   bson.M{"checkIn": false},
			"$unset": bson.M{"madeUpBySessionId": ""},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("reset session check-ins: %w", err)
	}
	return res.ModifiedCount, nil
}
