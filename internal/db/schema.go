package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionUsers      = "users"
	CollectionSessions   = "sessions"
	CollectionAttendance = "attendance"
	CollectionExercises  = "exercises"
	CollectionWeighIns   = "weighins"
	CollectionGoals      = "goals"
)

type Collections struct {
	Users      *mongo.Collection
	Sessions   *mongo.Collection
	Attendance *mongo.Collection
	Exercises  *mongo.Collection
	WeighIns   *mongo.Collection
	Goals      *mongo.Collection
}

func NewCollections(database *mongo.Database) *Collections {
	return &Collections{
		Users:      database.Collection(CollectionUsers),
		Sessions:   database.Collection(CollectionSessions),
		Attendance: database.Collection(CollectionAttendance),
		Exercises:  database.Collection(CollectionExercises),
		WeighIns:   database.Collection(CollectionWeighIns),
		Goals:      database.Collection(CollectionGoals),
	}
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("users_email_unique"),
			},
		},
		CollectionSessions: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("sessions_user_date_unique"),
			},
			{
				Keys:    bson.D{{Key: "madeUpBySessionId", Value: 1}},
				Options: options.Index().SetSparse(true).SetName("sessions_made_up_by"),
			},
		},
		CollectionAttendance: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("attendance_user_timestamp"),
			},
		},
		CollectionExercises: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("exercises_name_unique"),
			},
			{
				Keys:    bson.D{{Key: "muscleGroup", Value: 1}},
				Options: options.Index().SetName("exercises_muscle_group"),
			},
		},
		CollectionWeighIns: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
				Options: options.Index().SetName("weighins_user_date"),
			},
		},
		CollectionGoals: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("goals_user_unique"),
			},
		},
	}
}

// RegisterSchemas creates the indexes backing the uniqueness and ordering
// constraints of every collection. Creating an existing index is a no-op.
func RegisterSchemas(ctx context.Context, database *mongo.Database) (*Collections, error) {
	for collName, models := range indexModels() {
		names, err := database.Collection(collName).Indexes().CreateMany(ctx, models)
		if err != nil {
			return nil, fmt.Errorf("create indexes for %s: %w", collName, err)
		}
		log.Debugf("mongo indexes ensured for [%s]: %v", collName, names)
	}
	return NewCollections(database), nil
}
