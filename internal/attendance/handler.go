package attendance

import (
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/validation"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type AddRequest struct {
	Timestamp *time.Time `json:"timestamp"`
	Note      string     `json:"note" validate:"max=500"`
}

type ResetResponse struct {
	OK      bool `json:"ok"`
	Deleted bool `json:"deleted"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router, requireAuth func(http.Handler) http.Handler) {
	r.Handle("/api/attendance", requireAuth(http.HandlerFunc(h.HandleAdd))).Methods("POST", "OPTIONS").Name("attendance-add")
	r.Handle("/api/attendance", requireAuth(http.HandlerFunc(h.HandleList))).Methods("GET", "OPTIONS").Name("attendance-list")
	r.Handle("/api/attendance/reset", requireAuth(http.HandlerFunc(h.HandleReset))).Methods("POST", "OPTIONS").Name("attendance-reset")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.add")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	var req AddRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	attendance, err := h.service.Add(ctx, identity.UserID, req.Timestamp, req.Note)
	if err != nil {
		log.Errorf("add attendance [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to add attendance")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, map[string]*Attendance{"attendance": attendance})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.list")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	from, to, err := pkg.ParseDayRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	attendance, err := h.service.List(ctx, identity.UserID, ListParams{From: from, To: to})
	if err != nil {
		log.Errorf("list attendance [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get attendance")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string][]Attendance{"attendance": attendance})
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.reset")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	if err := h.service.Reset(ctx, identity.UserID); err != nil {
		log.Errorf("reset attendance [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to reset attendance")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ResetResponse{OK: true, Deleted: true})
}
