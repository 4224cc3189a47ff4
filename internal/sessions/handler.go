package sessions

import (
	"errors"
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/validation"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRequest struct {
	Date string `json:"date" validate:"required"`
	Note string `json:"note" validate:"max=500"`
}

type CheckInRequest struct {
	CheckIn *bool `json:"checkIn" validate:"required"`
}

type MakeUpRequest struct {
	MadeUpBySessionID string `json:"madeUpBySessionId" validate:"required,objectid"`
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
	r.Handle("/api/sessions", requireAuth(http.HandlerFunc(h.HandleList))).Methods("GET", "OPTIONS").Name("sessions-list")
	r.Handle("/api/sessions", requireAuth(http.HandlerFunc(h.HandleCreate))).Methods("POST", "OPTIONS").Name("sessions-create")
	r.Handle("/api/sessions/{id}/checkin", requireAuth(http.HandlerFunc(h.HandleCheckIn))).Methods("PATCH", "OPTIONS").Name("sessions-checkin")
	r.Handle("/api/sessions/{id}/makeup", requireAuth(http.HandlerFunc(h.HandleLinkMakeUp))).Methods("PUT", "OPTIONS").Name("sessions-makeup-link")
	r.Handle("/api/sessions/{id}/makeup", requireAuth(http.HandlerFunc(h.HandleUnlinkMakeUp))).Methods("DELETE", "OPTIONS").Name("sessions-makeup-unlink")
	r.Handle("/api/sessions/{id}", requireAuth(http.HandlerFunc(h.HandleDelete))).Methods("DELETE", "OPTIONS").Name("sessions-delete")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	month, err := pkg.ParseMonth(r.URL.Query().Get("month"), timeNow())
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.service.ListMonth(ctx, identity.UserID, month)
	if err != nil {
		log.Errorf("list sessions [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get sessions")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string][]Session{"sessions": sessions})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.create")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	var req CreateRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := pkg.ParseDay(req.Date)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.Create(ctx, identity.UserID, date, req.Note)
	if err != nil {
		if errors.Is(err, ErrSessionExists) {
			pkg.WriteJSONError(w, http.StatusConflict, "Session already exists for that day")
			return
		}
		log.Errorf("create session [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, map[string]*Session{"session": session})
}

func (h *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.checkin")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SetCheckIn(ctx, identity.UserID, id, *req.CheckIn)
	if err != nil {
		h.writeUpdateError(w, "check in", id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Session{"session": session})
}

func (h *Handler) HandleLinkMakeUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.makeup.link")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req MakeUpRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	madeUpBy, _ := primitive.ObjectIDFromHex(req.MadeUpBySessionID)

	session, err := h.service.LinkMakeUp(ctx, identity.UserID, id, madeUpBy)
	if err != nil {
		if errors.Is(err, ErrSelfMakeUp) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "A session cannot make up for itself")
			return
		}
		h.writeUpdateError(w, "link make-up", id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Session{"session": session})
}

func (h *Handler) HandleUnlinkMakeUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.makeup.unlink")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.UnlinkMakeUp(ctx, identity.UserID, id)
	if err != nil {
		h.writeUpdateError(w, "unlink make-up", id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]*Session{"session": session})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, identity.UserID, id); err != nil {
		h.writeUpdateError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) writeUpdateError(w http.ResponseWriter, action string, id primitive.ObjectID, err error) {
	if IsNotFound(err) {
		pkg.WriteJSONError(w, http.StatusNotFound, "Session not found")
		return
	}
	log.Errorf("%s session [%s]: %s", action, id.Hex(), err)
	pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to update session")
}

func sessionID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := pkg.PathObjectID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid session id")
		return primitive.NilObjectID, false
	}
	return id, true
}
