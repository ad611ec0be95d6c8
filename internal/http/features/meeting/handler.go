package meeting

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/tendant/simple-meet/internal/http/middleware"
	"github.com/tendant/simple-meet/internal/httputil"
	"github.com/tendant/simple-meet/pkg/booking"
	"github.com/tendant/simple-meet/pkg/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Handler handles meeting endpoints.
type Handler struct {
	logger     *slog.Logger
	service    *booking.Service
	liveKitURL string
	now        func() time.Time
}

// NewHandler creates a new meeting handler. liveKitURL is returned to
// clients next to join tokens and may be empty.
func NewHandler(logger *slog.Logger, service *booking.Service, liveKitURL string) *Handler {
	return &Handler{
		logger:     logger,
		service:    service,
		liveKitURL: liveKitURL,
		now:        time.Now,
	}
}

// CreateMeetingRequest represents a meeting creation request.
type CreateMeetingRequest struct {
	Name string    `json:"name"`
	Date time.Time `json:"date" validate:"required"`
}

// MeetingResponse represents a meeting.
type MeetingResponse struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// ListMeetingsResponse represents the upcoming meetings of a studio.
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// JoinMeetingResponse carries a room join credential.
type JoinMeetingResponse struct {
	Token    string `json:"token"`
	URL      string `json:"url,omitempty"`
	Room     string `json:"room"`
	Identity string `json:"identity"`
}

// CreateMeeting schedules a meeting for the authenticated studio.
// POST /api/meetings
func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	studioID, ok := middleware.GetStudioID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing studio identity")
		return
	}

	var req CreateMeetingRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	meeting, err := h.service.CreateMeeting(r.Context(), req.Name, req.Date, studioID, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info("meeting created",
		"meeting_id", meeting.ID.String(),
		"studio_id", studioID.String(),
	)

	httputil.JSON(w, http.StatusCreated, toMeetingResponse(meeting))
}

// ListMeetings lists the upcoming meetings of the authenticated studio,
// sorted by date.
// GET /api/meetings
func (h *Handler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	studioID, ok := middleware.GetStudioID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing studio identity")
		return
	}

	meetings, err := h.service.ListMeetings(r.Context(), studioID, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	slices.SortFunc(meetings, func(a, b *domain.Meeting) int {
		return a.Date.Compare(b.Date)
	})

	httputil.JSON(w, http.StatusOK, ListMeetingsResponse{
		Meetings: lo.Map(meetings, func(m *domain.Meeting, _ int) MeetingResponse {
			return toMeetingResponse(m)
		}),
	})
}

// JoinMeeting issues a room token for a meeting that has not started yet.
// GET /api/meetings/{meetingID}/join
func (h *Handler) JoinMeeting(w http.ResponseWriter, r *http.Request) {
	meetingID, err := domain.ParseMeetingID(chi.URLParam(r, "meetingID"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid meeting id")
		return
	}

	token, err := h.service.JoinMeeting(r.Context(), meetingID, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, JoinMeetingResponse{
		Token:    token.Token,
		URL:      h.liveKitURL,
		Room:     token.Room,
		Identity: token.Identity,
	})
}

// Hello is a liveness probe kept for API compatibility.
// GET /api/hello
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	httputil.Text(w, http.StatusOK, "Hello World!")
}

// writeError maps booking errors to HTTP statuses. Collaborator failures are
// checked first so their causes are logged and never leaked to clients.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrStore), errors.Is(err, domain.ErrCredential):
		h.logger.Error("meeting request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrDateInThePast),
		errors.Is(err, domain.ErrDateAlreadyTaken),
		errors.Is(err, domain.ErrTooLate):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMeetingNotFound):
		httputil.Error(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("unexpected meeting error", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func toMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:   m.ID.String(),
		Name: m.Name.String(),
		Date: m.Date,
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
