// Package meet provides meeting booking for studios as an embeddable library.
//
// Setup:
//
//  1. Run the migrations embedded in pkg/repository (or call repository.Migrate)
//  2. Create a Meet instance and mount its routes
//
// Basic usage:
//
//	db, _ := sql.Open("postgres", "postgres://localhost/myapp?sslmode=disable")
//
//	m, err := meet.New(meet.Config{
//	    DB:               db,
//	    LiveKitAPIKey:    "devkey",
//	    LiveKitAPISecret: "secret",
//	})
//	if err != nil {
//	    log.Fatal(err) // Will fail if migrations haven't been run
//	}
//
//	r := chi.NewRouter()
//	r.Mount("/api", m.Router())
//	http.ListenAndServe(":8080", r)
//
// Without a database, pass any booking.MeetingStore:
//
//	m, err := meet.New(meet.Config{
//	    Store:            repository.NewMemoryMeetingsRepository(),
//	    LiveKitAPIKey:    "devkey",
//	    LiveKitAPISecret: "secret",
//	})
package meet

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/tendant/simple-meet/internal/config"
	"github.com/tendant/simple-meet/internal/http/features/meeting"
	"github.com/tendant/simple-meet/internal/http/middleware"
	"github.com/tendant/simple-meet/internal/httputil"
	"github.com/tendant/simple-meet/pkg/booking"
	"github.com/tendant/simple-meet/pkg/livekit"
	"github.com/tendant/simple-meet/pkg/repository"
)

// Config holds the configuration for the meet library.
type Config struct {
	// DB is the database connection. Required unless Store is set.
	DB *sql.DB

	// Store overrides the Postgres store built from DB.
	Store booking.MeetingStore

	// LiveKitAPIKey and LiveKitAPISecret sign room tokens (required).
	LiveKitAPIKey    string
	LiveKitAPISecret string

	// LiveKitURL is returned to clients next to join tokens (optional).
	LiveKitURL string

	// TokenTTL is the lifetime of room tokens (default: 6 hours).
	TokenTTL time.Duration

	// StudioHeader names the header carrying the studio identity (default: "studio").
	StudioHeader string

	// AllowedOrigins lists the origins browser clients may call from (default: any).
	AllowedOrigins []string

	// Logger is the structured logger (default: JSON to stdout).
	Logger *slog.Logger
}

// Meet is the main meeting booking instance.
type Meet struct {
	config  Config
	store   booking.MeetingStore
	service *booking.Service
}

// New creates a new Meet instance with the given configuration.
// When backed by DB, returns an error if the meetings table doesn't exist.
func New(cfg Config) (*Meet, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	store := cfg.Store
	if store == nil {
		if err := validateSchema(cfg.DB); err != nil {
			return nil, err
		}
		store = repository.NewMeetingsRepository(cfg.DB)
	}

	issuer := livekit.NewTokenIssuer(livekit.Config{
		APIKey:    cfg.LiveKitAPIKey,
		APISecret: cfg.LiveKitAPISecret,
		TokenTTL:  cfg.TokenTTL,
	})

	return &Meet{
		config:  cfg,
		store:   store,
		service: booking.NewService(store, issuer, cfg.Logger),
	}, nil
}

// Router returns a chi router with all meeting routes.
// Mount this on your main router:
//
//	r.Mount("/api", m.Router())
//
// Routes:
//
//	GET  /hello                     - Liveness greeting
//	POST /meetings                  - Create a meeting (studio header)
//	GET  /meetings                  - List upcoming meetings (studio header)
//	GET  /meetings/{meetingID}/join - Get a room token
func (m *Meet) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.CORS(config.CORSConfig{
		Enabled:        true,
		AllowedOrigins: m.config.AllowedOrigins,
		MaxAge:         300,
	}, m.config.StudioHeader))
	r.Use(middleware.Recover(m.config.Logger))
	r.Use(middleware.Logging(m.config.Logger))

	handler := meeting.NewHandler(m.config.Logger, m.service, m.config.LiveKitURL)
	handler.RegisterRoutes(r, meeting.RoutesConfig{
		Studio: m.StudioMiddleware(),
	})

	return r
}

// Handler returns an http.Handler for mounting with http.StripPrefix.
func (m *Meet) Handler() http.Handler {
	return m.Router()
}

// Service returns the booking service for advanced usage.
func (m *Meet) Service() *booking.Service {
	return m.service
}

// StudioMiddleware returns middleware that reads the studio identity header.
// Use this to protect your own studio-scoped routes:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(m.StudioMiddleware())
//	    r.Get("/studio/stats", handler)
//	})
func (m *Meet) StudioMiddleware() func(http.Handler) http.Handler {
	return middleware.Studio(m.config.StudioHeader)
}

// GetStudioID extracts the studio ID from a request.
// Use after StudioMiddleware.
func GetStudioID(r *http.Request) (string, bool) {
	id, ok := middleware.GetStudioID(r.Context())
	if !ok {
		return "", false
	}
	return id.String(), true
}

// HealthHandler returns a simple health check handler.
func (m *Meet) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func validateConfig(cfg *Config) error {
	if cfg.DB == nil && cfg.Store == nil {
		return errors.New("meet: DB or Store is required")
	}
	if cfg.LiveKitAPIKey == "" {
		return errors.New("meet: LiveKitAPIKey is required")
	}
	if cfg.LiveKitAPISecret == "" {
		return errors.New("meet: LiveKitAPISecret is required")
	}
	if cfg.TokenTTL < 0 {
		return errors.New("meet: TokenTTL must not be negative")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = livekit.DefaultTokenTTL
	}
	if cfg.StudioHeader == "" {
		cfg.StudioHeader = middleware.DefaultStudioHeader
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
}

// validateSchema checks that required database tables exist.
func validateSchema(db *sql.DB) error {
	requiredTables := []string{"meetings"}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1
	`

	for _, table := range requiredTables {
		var name string
		err := db.QueryRow(query, table).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("meet: missing table '%s' - run migrations first (see pkg/repository/migrations)", table)
		}
		if err != nil {
			return fmt.Errorf("meet: failed to check schema: %w", err)
		}
	}

	return nil
}
