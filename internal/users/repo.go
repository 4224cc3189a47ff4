package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(coll *mongo.Collection) *Repo {
	return &Repo{
		coll: coll,
	}
}

func (r *Repo) Create(ctx context.Context, user *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user.Email = NormalizeEmail(user.Email)
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := db.FindOne[User](ctx, r.coll, bson.M{"email": NormalizeEmail(email)})
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (r *Repo) GetByID(ctx context.Context, id primitive.ObjectID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := db.FindOne[User](ctx, r.coll, bson.M{"_id": id})
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
