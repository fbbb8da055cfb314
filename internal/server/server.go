// Package server provides the HTTP REST API for resume screening and
// interview scheduling.
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

	"github.com/jonathan/hr-agent/internal/calendar"
	"github.com/jonathan/hr-agent/internal/config"
	"github.com/jonathan/hr-agent/internal/db"
	"github.com/jonathan/hr-agent/internal/extraction"
	"github.com/jonathan/hr-agent/internal/llm"
	"github.com/jonathan/hr-agent/internal/mail"
	"github.com/jonathan/hr-agent/internal/scheduling"
	"github.com/jonathan/hr-agent/internal/screening"
)

// Server represents the HTTP server and its wired collaborators.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config

	extractor  extraction.TextExtractor
	batch      *screening.BatchProcessor
	slotFinder *calendar.SlotFinder
	scheduler  *scheduling.Scheduler
	calClient  calendar.Client
	store      *db.DB
	llmClient  llm.Client
}

// Components are the external collaborators behind the API. Tests inject
// stubs here; New builds the live or development set from configuration.
type Components struct {
	Extractor extraction.TextExtractor
	Model     screening.ModelScorer
	Calendar  calendar.Client
	Mailer    mail.Mailer
	Store     *db.DB
}

// New creates a server with live collaborators, or the stub set when
// DevMode is on.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	var components Components
	var llmClient llm.Client

	if cfg.DevMode {
		log.Println("Running in development mode with stubbed external services")
		components = Components{
			Extractor: extraction.NewStubExtractor(),
			Model:     screening.NewStubModelScorer(),
			Calendar:  calendar.NewStubClient(),
			Mailer:    mail.NewStubMailer(),
		}
	} else {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		llmClient = client

		calClient, err := calendar.NewGoogleClient(ctx, cfg.CalendarCredentialsPath, cfg.CalendarID, cfg.Timezone)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create calendar client: %w", err)
		}

		components = Components{
			Extractor: extraction.NewDocExtractor(),
			Model:     screening.NewGeminiScorer(client),
			Calendar:  calClient,
			Mailer:    mail.NewSMTPMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword),
		}
	}

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		components.Store = store
	}

	s := NewWithComponents(cfg, components)
	s.llmClient = llmClient
	return s, nil
}

// NewWithComponents wires a server over explicit collaborators.
func NewWithComponents(cfg *config.Config, components Components) *Server {
	scorer := screening.NewScorer(components.Model)

	s := &Server{
		cfg:       cfg,
		extractor: components.Extractor,
		batch:     screening.NewBatchProcessor(scorer),
		slotFinder: calendar.NewSlotFinder(components.Calendar,
			calendar.DefaultBusinessHours(cfg.Location())),
		scheduler: scheduling.New(components.Calendar, components.Mailer, scheduling.Options{
			CompanyName:      cfg.CompanyName,
			InterviewerName:  cfg.InterviewerName,
			InterviewerEmail: cfg.InterviewerEmail,
			Timezone:         cfg.Timezone,
		}),
		calClient: components.Calendar,
		store:     components.Store,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/process", s.handleProcess)
	mux.HandleFunc("GET /api/slots", s.handleSlots)
	mux.HandleFunc("POST /api/schedule", s.handleSchedule)
	mux.HandleFunc("GET /api/interviews", s.handleInterviews)
	mux.HandleFunc("GET /api/calendar-url", s.handleCalendarURL)
	mux.HandleFunc("GET /api/runs", s.handleListRuns)
	mux.HandleFunc("GET /api/runs/{id}", s.handleGetRun)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Resume batches can take a while.
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing model client: %v", err)
		}
	}
	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

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
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "HR agent API is running",
	})
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
