// Package server provides the HTTP REST API for the Threads studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/haruto/threads-studio/internal/analysis"
	"github.com/haruto/threads-studio/internal/config"
	"github.com/haruto/threads-studio/internal/db"
	"github.com/haruto/threads-studio/internal/generation"
	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/posts"
	"github.com/haruto/threads-studio/internal/research"
	"github.com/haruto/threads-studio/internal/scrape"
	"github.com/haruto/threads-studio/internal/server/middleware"
	"github.com/haruto/threads-studio/internal/threads"
	"github.com/haruto/threads-studio/internal/types"
)

// ProfileStore persists the operator profile.
type ProfileStore interface {
	GetProfile(ctx context.Context) (*types.UserProfile, error)
	SaveProfile(ctx context.Context, profile *types.UserProfile) error
	DeleteProfile(ctx context.Context) error
}

// PresetStore persists tone presets.
type PresetStore interface {
	InsertTonePreset(ctx context.Context, preset *types.TonePreset) error
	GetTonePreset(ctx context.Context, id uuid.UUID) (*types.TonePreset, error)
	ListTonePresets(ctx context.Context) ([]types.TonePreset, error)
	DeleteTonePreset(ctx context.Context, id uuid.UUID) error
}

// ResearchService manages the research post library.
type ResearchService interface {
	Create(ctx context.Context, input research.CreateInput) (*types.ResearchPost, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ResearchPost, error)
	Update(ctx context.Context, id uuid.UUID, input research.UpdateInput) (*types.ResearchPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]types.ResearchPost, error)
	Top(ctx context.Context, limit int) ([]types.ResearchPost, error)
	FilterByTags(ctx context.Context, tags []string) ([]types.ResearchPost, error)
	Tags(ctx context.Context) ([]string, error)
}

// PostService manages the generated post lifecycle.
type PostService interface {
	Create(ctx context.Context, input posts.CreateInput) (*types.GeneratedPost, error)
	Get(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error)
	List(ctx context.Context) ([]types.GeneratedPost, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*types.GeneratedPost, error)
	SetStatus(ctx context.Context, id uuid.UUID, next types.PostStatus) (*types.GeneratedPost, error)
	Schedule(ctx context.Context, id uuid.UUID, at time.Time) (*types.GeneratedPost, error)
	Publish(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error)
	RecordPerformance(ctx context.Context, id uuid.UUID, input posts.PerformanceInput) (*types.GeneratedPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GenerationService produces candidate posts.
type GenerationService interface {
	Generate(ctx context.Context, req generation.Request) (generation.Candidate, error)
	GenerateBatch(ctx context.Context, req generation.Request, count int) ([]generation.Candidate, error)
	GenerateVariation(ctx context.Context, original string, variationType types.VariationType) (generation.Candidate, error)
}

// Analyzer runs LLM analysis over research posts.
type Analyzer interface {
	Analyze(ctx context.Context, researchPosts []types.ResearchPost) (*types.AnalysisResult, error)
}

// Scraper extracts metadata from Threads pages.
type Scraper interface {
	Post(ctx context.Context, url string) (*scrape.PostResult, error)
	Profile(ctx context.Context, url string) (*scrape.ProfileResult, error)
}

// Dependencies holds everything the server's handlers need. Production
// wiring happens in New; tests inject fakes.
type Dependencies struct {
	Profiles  ProfileStore
	Presets   PresetStore
	Research  ResearchService
	Posts     PostService
	Generator GenerationService
	Analyzer  Analyzer
	Scraper   Scraper
	Passcode  PasscodeVerifier
	JWT       *JWTService
}

// PasscodeVerifier checks a login passcode.
type PasscodeVerifier interface {
	VerifyPasscode(passcode string) bool
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	deps       Dependencies
	validator  *validator.Validate
	db         *db.DB
}

// New creates a server wired to real backends: Postgres storage, the
// configured generation provider, and the Threads API when credentials are
// present.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	llmCfg := cfg.LLMConfig()
	client, err := llm.NewClient(ctx, llmCfg, llm.EnvAPIKey(llmCfg.Provider))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	var publisher posts.Publisher
	if cfg.ThreadsAccessToken != "" {
		threadsClient, err := threads.NewClient(cfg.ThreadsAccessToken, cfg.ThreadsUserID)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create threads client: %w", err)
		}
		publisher = threadsClient
	}

	passcodeConfig, err := config.NewPasscodeConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create passcode config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	deps := Dependencies{
		Profiles:  database,
		Presets:   database,
		Research:  research.NewService(database),
		Posts:     posts.NewService(database, publisher),
		Generator: generation.NewService(client),
		Analyzer:  &llmAnalyzer{client: client},
		Scraper:   &scrape.Scraper{UseBrowser: cfg.UseBrowser},
		Passcode:  passcodeConfig,
		JWT:       NewJWTService(jwtConfig),
	}

	s := NewWithDependencies(deps, cfg.Port)
	s.db = database
	return s, nil
}

// NewWithDependencies creates a server over pre-built dependencies.
func NewWithDependencies(deps Dependencies, port int) *Server {
	s := &Server{
		deps:      deps,
		validator: validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch generation holds the request open
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// routes builds the route table. Everything except login and health sits
// behind the JWT middleware.
func (s *Server) routes() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("GET /profile", s.handleGetProfile)
	protected.HandleFunc("PUT /profile", s.handleSaveProfile)
	protected.HandleFunc("POST /profile/reset", s.handleResetProfile)

	protected.HandleFunc("GET /tone-presets", s.handleListPresets)
	protected.HandleFunc("POST /tone-presets", s.handleCreatePreset)
	protected.HandleFunc("DELETE /tone-presets/{id}", s.handleDeletePreset)

	protected.HandleFunc("GET /templates", s.handleListTemplates)
	protected.HandleFunc("GET /templates/{id}", s.handleGetTemplate)

	protected.HandleFunc("GET /research", s.handleListResearch)
	protected.HandleFunc("POST /research", s.handleCreateResearch)
	protected.HandleFunc("GET /research/top", s.handleTopResearch)
	protected.HandleFunc("GET /research/tags", s.handleResearchTags)
	protected.HandleFunc("POST /research/analyze", s.handleAnalyzeResearch)
	protected.HandleFunc("GET /research/{id}", s.handleGetResearch)
	protected.HandleFunc("PUT /research/{id}", s.handleUpdateResearch)
	protected.HandleFunc("DELETE /research/{id}", s.handleDeleteResearch)

	protected.HandleFunc("GET /posts", s.handleListPosts)
	protected.HandleFunc("POST /posts", s.handleCreatePost)
	protected.HandleFunc("GET /posts/{id}", s.handleGetPost)
	protected.HandleFunc("PUT /posts/{id}", s.handleUpdatePost)
	protected.HandleFunc("DELETE /posts/{id}", s.handleDeletePost)
	protected.HandleFunc("POST /posts/{id}/schedule", s.handleSchedulePost)
	protected.HandleFunc("POST /posts/{id}/publish", s.handlePublishPost)
	protected.HandleFunc("POST /posts/{id}/performance", s.handleRecordPerformance)

	protected.HandleFunc("POST /generate", s.handleGenerate)
	protected.HandleFunc("POST /generate/batch", s.handleGenerateBatch)
	protected.HandleFunc("POST /generate/variation", s.handleGenerateVariation)

	protected.HandleFunc("POST /scrape", s.handleScrape)

	authed := middleware.AuthMiddleware(s.deps.JWT.AsTokenValidator())(protected)

	root := http.NewServeMux()
	root.HandleFunc("POST /auth/login", s.handleLogin)
	root.HandleFunc("GET /health", s.handleHealth)
	root.Handle("/", authed)
	return root
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// Handler exposes the full middleware-wrapped handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps a service error to its HTTP status and writes it.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// pathID parses the {id} path segment as a UUID.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDParam parses a UUID from a request field.
func parseUUIDParam(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// llmAnalyzer adapts the analysis package to the Analyzer interface.
type llmAnalyzer struct {
	client llm.Client
}

func (a *llmAnalyzer) Analyze(ctx context.Context, researchPosts []types.ResearchPost) (*types.AnalysisResult, error) {
	return analysis.Analyze(ctx, a.client, researchPosts)
}
