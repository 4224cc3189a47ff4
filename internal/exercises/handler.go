package exercises

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Get(ctx context.Context, id primitive.ObjectID) (*Exercise, error)
	List(ctx context.Context, params ListParams) ([]Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// SetupRoutes registers the catalog routes, readable without logging in.
func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("exercises-list")
	r.HandleFunc("/api/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("exercises-get")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	params := ListParams{
		MuscleGroup: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("muscleGroup"))),
		Query:       strings.TrimSpace(r.URL.Query().Get("q")),
	}
	exercises, err := h.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get exercises")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string][]Exercise{"exercises": exercises})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, err := pkg.PathObjectID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid exercise id")
		return
	}
	span.SetAttributes(attribute.String("exercise.id", id.Hex()))

	exercise, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "Exercise not found")
			return
		}
		log.Errorf("get exercise [%s]: %s", id.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get exercise")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Exercise{"exercise": exercise})
}
