package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charlie2bored/shftrr/internal/coach"
	"github.com/charlie2bored/shftrr/internal/config"
	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/escapeplan"
	"github.com/charlie2bored/shftrr/internal/llm"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
	"github.com/charlie2bored/shftrr/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	logger      *slog.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	generator   *escapeplan.Generator
	coach       *coach.Coach
	llmClient   *llm.GeminiClient
	origins     string
}

// New creates a new server instance
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:      database,
		logger:  logger,
		origins: cfg.AllowedOrigins,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Without an API key every plan comes from the deterministic generator
	// and the conversational coach is unavailable.
	var gateway escapeplan.Gateway
	var chatGateway coach.Gateway
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.llmClient = client
		gateway = client
		chatGateway = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, serving deterministic plans only")
	}
	s.generator = escapeplan.NewGenerator(gateway, logger)
	s.coach = coach.NewCoach(chatGateway, logger)

	authRequired := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler {
		return authRequired(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", protected(s.authHandler.UpdatePassword))

	// Onboarding
	mux.Handle("POST /onboarding", protected(s.handleSaveOnboarding))
	mux.Handle("GET /onboarding", protected(s.handleGetOnboarding))

	// Job application tracker
	mux.Handle("GET /job-applications", protected(s.handleListJobApplications))
	mux.Handle("POST /job-applications", protected(s.handleCreateJobApplication))
	mux.Handle("GET /job-applications/{id}", protected(s.handleGetJobApplication))
	mux.Handle("PUT /job-applications/{id}", protected(s.handleUpdateJobApplication))
	mux.Handle("DELETE /job-applications/{id}", protected(s.handleDeleteJobApplication))

	// Escape plan generation and history
	mux.Handle("POST /escape-plans", protected(s.handleGeneratePlan))
	mux.Handle("GET /escape-plans", protected(s.handleListPlans))
	mux.Handle("GET /escape-plans/{id}", protected(s.handleGetPlan))

	// Conversational career coach
	mux.Handle("POST /coach", protected(s.handleCoachChat))

	// Diagnostic assessment and dashboard
	mux.Handle("GET /assessment", protected(s.handleGetAssessment))
	mux.Handle("POST /assessment", protected(s.handleSaveAssessment))
	mux.Handle("GET /dashboard", protected(s.handleDashboard))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Plan generation waits on the model
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			s.logger.Warn("failed to close Gemini client", slog.String("error", err.Error()))
		}
	}
	s.db.Close()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.origins
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status, including DB reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded", "database": "unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// notFoundResponse writes the standard 404 for a resource that does not
// exist or is not owned by the caller.
func (s *Server) notFoundResponse(w http.ResponseWriter, resource string) {
	err := &ErrNotFound{Resource: resource}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored because it is client-controlled.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
