package exercises

import (
	"context"
	"encoding/json"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

// CachedRepo is a read-through cache of exercises by id. The catalog only
// changes on seeding, so entries just expire.
type CachedRepo struct {
	repo          exercisesRepo
	cache         *freecache.Cache
	expireSeconds int
}

func NewCachedRepo(repo exercisesRepo, cacheSizeBytes, expireSeconds int) *CachedRepo {
	return &CachedRepo{
		repo:          repo,
		cache:         freecache.NewCache(cacheSizeBytes),
		expireSeconds: expireSeconds,
	}
}

func (c *CachedRepo) Get(ctx context.Context, id primitive.ObjectID) (*Exercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.exercises.get")
	defer span.End()

	cacheKey := []byte("exercise::" + id.Hex())
	if exerciseBytes, err := c.cache.Get(cacheKey); err == nil {
		exercise := &Exercise{}
		if err := json.Unmarshal(exerciseBytes, exercise); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return exercise, nil
		} else {
			log.Errorf("failed to unmarshal exercise [%s] from cache: %s", id.Hex(), err)
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	exercise, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	exerciseBytes, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise [%s] for cache: %s", id.Hex(), err)
		return exercise, nil
	}
	if err := c.cache.Set(cacheKey, exerciseBytes, c.expireSeconds); err != nil {
		log.Errorf("failed to cache exercise [%s]: %s", id.Hex(), err)
	}

	return exercise, nil
}

func (c *CachedRepo) List(ctx context.Context, params ListParams) ([]Exercise, error) {
	return c.repo.List(ctx, params)
}
