package weighins

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/validation"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=weighins_mocks_test.go -package=weighins_test

type weighInsRepo interface {
	Add(ctx context.Context, weighIn *WeighIn) (*WeighIn, error)
	List(ctx context.Context, userID primitive.ObjectID, params ListParams) ([]WeighIn, error)
	Update(ctx context.Context, weighIn *WeighIn) (*WeighIn, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id primitive.ObjectID) error
}

// WeighInRequest is the body of both create and update. Weight is a pointer
// so that a missing weight is told apart from 0.
type WeighInRequest struct {
	Date   string   `json:"date"`
	Weight *float64 `json:"weight" validate:"required,gte=0,lte=1000"`
	Note   string   `json:"note" validate:"max=500"`
}

type Handler struct {
	repo           weighInsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo weighInsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router, requireAuth func(http.Handler) http.Handler) {
	r.Handle("/api/weighins", requireAuth(http.HandlerFunc(h.HandleCreate))).Methods("POST", "OPTIONS").Name("weighins-create")
	r.Handle("/api/weighins", requireAuth(http.HandlerFunc(h.HandleList))).Methods("GET", "OPTIONS").Name("weighins-list")
	r.Handle("/api/weighins/{id}", requireAuth(http.HandlerFunc(h.HandleUpdate))).Methods("PUT", "OPTIONS").Name("weighins-update")
	r.Handle("/api/weighins/{id}", requireAuth(http.HandlerFunc(h.HandleDelete))).Methods("DELETE", "OPTIONS").Name("weighins-delete")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.create")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	weighIn, ok := decodeWeighIn(w, r)
	if !ok {
		return
	}
	weighIn.UserID = identity.UserID
	weighIn.CreatedAt = timeNow().UTC()

	weighIn, err := h.repo.Add(ctx, weighIn)
	if err != nil {
		log.Errorf("add weigh-in [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save weigh-in")
		return
	}
	if h.metricsManager != nil {
		h.metricsManager.CounterWeighIns.Inc()
	}

	pkg.WriteJSON(w, http.StatusCreated, map[string]*WeighIn{"weighIn": weighIn})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.list")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	from, to, err := pkg.ParseDayRange(query.Get("from"), query.Get("to"))
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	weighIns, err := h.repo.List(ctx, identity.UserID, ListParams{From: from, To: to, Limit: limit})
	if err != nil {
		log.Errorf("list weigh-ins [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get weigh-ins")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string][]WeighIn{"weighIns": weighIns})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.update")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathObjectID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid weigh-in id")
		return
	}
	weighIn, ok := decodeWeighIn(w, r)
	if !ok {
		return
	}
	weighIn.ID = id
	weighIn.UserID = identity.UserID

	weighIn, err = h.repo.Update(ctx, weighIn)
	if err != nil {
		if errors.Is(err, ErrWeighInNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "Weigh-in not found")
			return
		}
		log.Errorf("update weigh-in [%s]: %s", id.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to save weigh-in")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*WeighIn{"weighIn": weighIn})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.delete")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathObjectID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid weigh-in id")
		return
	}

	if err := h.repo.Delete(ctx, identity.UserID, id); err != nil {
		if errors.Is(err, ErrWeighInNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, "Weigh-in not found")
			return
		}
		log.Errorf("delete weigh-in [%s]: %s", id.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete weigh-in")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// decodeWeighIn writes a 400 and returns false on an invalid body. The date
// defaults to today.
func decodeWeighIn(w http.ResponseWriter, r *http.Request) (*WeighIn, bool) {
	var req WeighInRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	date := pkg.TruncateToDay(timeNow())
	if req.Date != "" {
		d, err := pkg.ParseDay(req.Date)
		if err != nil {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		date = d
	}

	return &WeighIn{
		Date:   date,
		Weight: *req.Weight,
		Note:   req.Note,
	}, true
}

func parseLimit(value string) (int64, error) {
	if value == "" {
		return DefaultListLimit, nil
	}
	limit, err := strconv.ParseInt(value, 10, 64)
	if err != nil || limit <= 0 {
		return 0, errors.New("invalid limit")
	}
	return min(limit, MaxListLimit), nil
}
