package exercises

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=seed_mocks_test.go -package=exercises_test

type catalogSeeder interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, exercises []Exercise) (int, error)
}

// Seed inserts the catalog when the collection is still empty, and returns
// the number of inserted exercises.
func Seed(ctx context.Context, seeder catalogSeeder, catalog []Exercise) (int, error) {
	count, err := seeder.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		log.Debugf("exercises catalog already has %d entries, not seeding", count)
		return 0, nil
	}

	inserted, err := seeder.InsertMany(ctx, catalog)
	if err != nil {
		return 0, err
	}
	log.Infof("exercises catalog seeded with %d entries", inserted)
	return inserted, nil
}
