package calendar

import (
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the JSON month grid behind requireAuth, and the
// rendered page behind requirePageSession.
func (h *Handler) SetupRoutes(r *mux.Router, requireAuth, requirePageSession func(http.Handler) http.Handler) {
	r.Handle("/api/calendar", requireAuth(http.HandlerFunc(h.HandleMonthJSON))).Methods("GET", "OPTIONS").Name("calendar-api")
	r.Handle("/calendar", requirePageSession(http.HandlerFunc(h.HandleMonthPage))).Methods("GET").Name("calendar-page")
}

func (h *Handler) HandleMonthJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.json")
	defer span.End()

	identity, ok := auth.RequestIdentity(w, r)
	if !ok {
		return
	}

	monthStart, err := pkg.ParseMonth(r.URL.Query().Get("month"), h.service.now())
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	month, err := h.service.Month(ctx, identity.UserID, monthStart)
	if err != nil {
		log.Errorf("calendar month [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Failed to get calendar")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, month)
}

func (h *Handler) HandleMonthPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.page")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "401 - please log in first", http.StatusUnauthorized)
		return
	}

	monthStart, err := pkg.ParseMonth(r.URL.Query().Get("month"), h.service.now())
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "400 - "+err.Error(), http.StatusBadRequest)
		return
	}

	month, err := h.service.Month(ctx, identity.UserID, monthStart)
	if err != nil {
		log.Errorf("calendar page [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "500 - failed to load calendar", http.StatusInternalServerError)
		return
	}

	page, err := RenderPage(month)
	if err != nil {
		log.Errorf("render calendar page [%s]: %s", identity.UserID.Hex(), err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "500 - failed to render calendar", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, page)
}
