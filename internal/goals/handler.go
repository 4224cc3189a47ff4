package goals

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/validation"
	"github.com/2beens/fitlog/internal/weighins"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*Goal, error)
	Upsert(ctx context.Context, goal *Goal) (*Goal, error)
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

type latestWeighInGetter interface {
	Latest(ctx context.Context, userID primitive.ObjectID) (*weighins.WeighIn, error)
}

type GoalRequest struct {
	TargetWeight *float64 `json:"targetWeight" validate:"required,gte=0,lte=1000"`
	TargetDate   string   `json:"targetDate" validate:"required"`
}

type Handler struct {
	repo     goalsRepo
	weighIns latestWeighInGetter
}

func NewHandler(repo goalsRepo, weighIns latestWeighInGetter) *Handler {
	return &Handler{
		repo:     repo,
		weighIns: weighIns,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router, requireAuth func(http.Handler) http.Handler) {
	r.Handle("/api/goal", requireAuth(http.HandlerFunc(h.HandleGet))).Methods("GET", "OPTIONS").Name("goal-get")
	r.Handle("/api/goal", requireAuth(http.HandlerFunc(h.HandlePut))).Methods("PUT", "OPTIONS").Name("goal-put")
	r.Handle("/api/goal", requireAuth(http.HandlerFunc(h.HandleDelete))).Methods("DELETE", "OPTIONS").Name("goal-delete")
	r.Handle("/api/goal/progress", requireAuth(http.HandlerFunc(h.HandleProgress))).Methods("GET", "OPTIONS").Name("goal-progress")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	goal, ok := h.getGoal(ctx, w, identity)
	if !ok {
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Goal{"goal": goal})
}

func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.put")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	var req GoalRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	targetDate, err := pkg.ParseDay(req.TargetDate)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := timeNow().UTC()
	goal, err := h.repo.Upsert(ctx, &Goal{
		UserID:       identity.UserID,
		TargetWeight: *req.TargetWeight,
		TargetDate:   targetDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Errorf("upsert goal [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save goal")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Goal{"goal": goal})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(ctx, identity.UserID); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "Goal not found")
			return
		}
		log.Errorf("delete goal [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.progress")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	goal, ok := h.getGoal(ctx, w, identity)
	if !ok {
		return
	}

	latest, err := h.weighIns.Latest(ctx, identity.UserID)
	if err != nil && !errors.Is(err, weighins.ErrWeighInNotFound) {
		log.Errorf("goal progress, latest weigh-in [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get goal progress")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, NewProgress(goal, latest, timeNow()))
}

func (h *Handler) getGoal(ctx context.Context, w http.ResponseWriter, identity auth.Identity) (*Goal, bool) {
	goal, err := h.repo.Get(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "Goal not found")
			return nil, false
		}
		log.Errorf("get goal [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get goal")
		return nil, false
	}
	return goal, true
}
