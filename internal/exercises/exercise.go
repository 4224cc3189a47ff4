package exercises

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Exercise is a catalog entry, shared by all users.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup" json:"muscleGroup"`
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type ListParams struct {
	MuscleGroup string
	// Query matches a part of the name, case insensitive.
	Query string
}
