package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tendant/simple-meet/mocks"
	"github.com/tendant/simple-meet/pkg/booking"
	"github.com/tendant/simple-meet/pkg/domain"
	"github.com/tendant/simple-meet/pkg/livekit"
	"github.com/tendant/simple-meet/pkg/repository"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 2, 17, 9, 0, 0, 0, time.UTC)

type testServer struct {
	router  http.Handler
	handler *Handler
	store   *repository.MemoryMeetingsRepository
}

func newTestServer(t *testing.T, store booking.MeetingStore, creds booking.RoomCredentials) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memory, _ := store.(*repository.MemoryMeetingsRepository)

	handler := NewHandler(logger, booking.NewService(store, creds, logger), "wss://livekit.example.com")
	handler.now = func() time.Time { return testNow }

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, RoutesConfig{})
	})

	return &testServer{router: r, handler: handler, store: memory}
}

func newMemoryServer(t *testing.T) *testServer {
	t.Helper()
	issuer := livekit.NewTokenIssuer(livekit.Config{APIKey: "key", APISecret: "secret"})
	return newTestServer(t, repository.NewMemoryMeetingsRepository(), issuer)
}

func (s *testServer) do(t *testing.T, method, path, studio, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if studio != "" {
		req.Header.Set("studio", studio)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func createBody(name string, date time.Time) string {
	b, _ := json.Marshal(map[string]string{"name": name, "date": date.Format(time.RFC3339Nano)})
	return string(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return response["error"]
}

func TestCreateMeeting_Validation(t *testing.T) {
	studio := uuid.NewString()

	tests := []struct {
		name           string
		studio         string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing studio",
			studio:         "",
			body:           createBody("Hello meeting", testNow.Add(time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "missing studio identity",
		},
		{
			name:           "malformed studio",
			studio:         "studio-42",
			body:           createBody("Hello meeting", testNow.Add(time.Hour)),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid studio identity",
		},
		{
			name:           "invalid json",
			studio:         studio,
			body:           `{invalid}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "missing date",
			studio:         studio,
			body:           `{"name":"Hello meeting"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "date is required",
		},
		{
			name:           "empty name",
			studio:         studio,
			body:           createBody("", testNow.Add(time.Hour)),
			expectedStatus: http.StatusBadRequest,
			expectedError:  domain.ErrInvalidName.Error(),
		},
		{
			name:           "date in the past",
			studio:         studio,
			body:           createBody("Hello meeting", testNow.Add(-48*time.Hour)),
			expectedStatus: http.StatusBadRequest,
			expectedError:  domain.ErrDateInThePast.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMemoryServer(t)

			rec := srv.do(t, http.MethodPost, "/api/meetings", tt.studio, tt.body)

			if rec.Code != tt.expectedStatus {
				t.Errorf("Status code = %d, want %d", rec.Code, tt.expectedStatus)
			}
			if got := decodeError(t, rec); got != tt.expectedError {
				t.Errorf("Error = %q, want %q", got, tt.expectedError)
			}
		})
	}
}

func TestCreateMeeting_Success(t *testing.T) {
	srv := newMemoryServer(t)
	studio := uuid.NewString()
	date := testNow.Add(2 * 24 * time.Hour)

	rec := srv.do(t, http.MethodPost, "/api/meetings", studio, createBody("Meeting name", date))

	if rec.Code != http.StatusCreated {
		t.Fatalf("Status code = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var response MeetingResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(response.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", response.ID, err)
	}
	if response.Name != "Meeting name" {
		t.Errorf("Name = %q, want %q", response.Name, "Meeting name")
	}
	if !response.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", response.Date, date)
	}

	// Same studio, same date
	rec = srv.do(t, http.MethodPost, "/api/meetings", studio, createBody("Other name", date))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate: Status code = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeError(t, rec); got != domain.ErrDateAlreadyTaken.Error() {
		t.Errorf("duplicate: Error = %q, want %q", got, domain.ErrDateAlreadyTaken.Error())
	}
}

func TestListMeetings(t *testing.T) {
	srv := newMemoryServer(t)
	studio := uuid.NewString()
	studioID, _ := domain.ParseStudioID(studio)

	// Seed directly, including a meeting in the past.
	for _, m := range []struct {
		name string
		date time.Time
	}{
		{"Later", testNow.Add(3 * time.Hour)},
		{"Past", testNow.Add(-time.Hour)},
		{"Sooner", testNow.Add(time.Hour)},
		{"Exactly now", testNow},
	} {
		name, _ := domain.NewMeetingName(m.name)
		err := srv.store.CreateMeeting(context.Background(), &domain.Meeting{
			ID:       domain.NewMeetingID(),
			StudioID: studioID,
			Name:     name,
			Date:     m.date,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := srv.do(t, http.MethodGet, "/api/meetings", studio, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want %d", rec.Code, http.StatusOK)
	}

	var response ListMeetingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	var names []string
	for _, m := range response.Meetings {
		names = append(names, m.Name)
	}
	if len(names) != 2 || names[0] != "Sooner" || names[1] != "Later" {
		t.Errorf("meetings = %v, want [Sooner Later]", names)
	}

	// Other studios see nothing
	rec = srv.do(t, http.MethodGet, "/api/meetings", uuid.NewString(), "")
	var empty ListMeetingsResponse
	json.NewDecoder(rec.Body).Decode(&empty)
	if len(empty.Meetings) != 0 {
		t.Errorf("other studio meetings = %d, want 0", len(empty.Meetings))
	}
}

func TestListMeetings_RequiresStudio(t *testing.T) {
	srv := newMemoryServer(t)

	rec := srv.do(t, http.MethodGet, "/api/meetings", "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Status code = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJoinMeeting(t *testing.T) {
	srv := newMemoryServer(t)
	studio := uuid.NewString()

	rec := srv.do(t, http.MethodPost, "/api/meetings", studio, createBody("Standup", testNow.Add(time.Hour)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: Status code = %d, want %d", rec.Code, http.StatusCreated)
	}
	var created MeetingResponse
	json.NewDecoder(rec.Body).Decode(&created)

	t.Run("not found", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/meetings/"+uuid.NewString()+"/join", "", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("Status code = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/meetings/not-an-id/join", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Status code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("token issued without studio header", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/meetings/"+created.ID+"/join", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("Status code = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var response JoinMeetingResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if response.Token == "" {
			t.Error("Token should not be empty")
		}
		if response.Room != created.ID {
			t.Errorf("Room = %q, want %q", response.Room, created.ID)
		}
		if response.URL != "wss://livekit.example.com" {
			t.Errorf("URL = %q, want %q", response.URL, "wss://livekit.example.com")
		}
	})

	t.Run("too late", func(t *testing.T) {
		srv.handler.now = func() time.Time { return testNow.Add(2 * time.Hour) }
		defer func() { srv.handler.now = func() time.Time { return testNow } }()

		rec := srv.do(t, http.MethodGet, "/api/meetings/"+created.ID+"/join", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Status code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if got := decodeError(t, rec); got != domain.ErrTooLate.Error() {
			t.Errorf("Error = %q, want %q", got, domain.ErrTooLate.Error())
		}
	})
}

func TestCollaboratorFailures(t *testing.T) {
	t.Run("store failure is a 500 without details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMeetingStore(ctrl)
		store.EXPECT().
			ListMeetings(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: password authentication failed"))

		srv := newTestServer(t, store, mocks.NewMockRoomCredentials(ctrl))
		rec := srv.do(t, http.MethodGet, "/api/meetings", uuid.NewString(), "")

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Status code = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		if got := decodeError(t, rec); got != "internal server error" {
			t.Errorf("Error = %q, want %q", got, "internal server error")
		}
	})

	t.Run("credential failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMeetingStore(ctrl)
		creds := mocks.NewMockRoomCredentials(ctrl)

		name, _ := domain.NewMeetingName("Soon")
		meeting := &domain.Meeting{
			ID:       domain.NewMeetingID(),
			StudioID: domain.NewStudioID(),
			Name:     name,
			Date:     testNow.Add(time.Hour),
		}
		store.EXPECT().FindMeeting(gomock.Any(), meeting.ID).Return(meeting, nil)
		creds.EXPECT().CreateToken(gomock.Any(), meeting.ID).Return(domain.RoomToken{}, livekit.ErrMissingAPISecret)

		srv := newTestServer(t, store, creds)
		rec := srv.do(t, http.MethodGet, "/api/meetings/"+meeting.ID.String()+"/join", "", "")

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Status code = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}

func TestHello(t *testing.T) {
	srv := newMemoryServer(t)

	rec := srv.do(t, http.MethodGet, "/api/hello", "", "")

	if rec.Code != http.StatusOK {
		t.Errorf("Status code = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "Hello World!" {
		t.Errorf("Body = %q, want %q", rec.Body.String(), "Hello World!")
	}
}
