package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"racha/internal/log"
	"racha/internal/services"
)

// Options configures the API server.
type Options struct {
	Addr               string
	RateLimitPerMinute int
}

// Server is the JSON API server over the ledger service.
type Server struct {
	http.Server
	ledger       *services.Ledger
	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(opts Options, ledger *services.Ledger) *Server {
	mux := http.NewServeMux()

	perMinute := opts.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}

	s := &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		ledger:      ledger,
		rateLimiter: newRateLimiter(perMinute),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/people", s.withMiddleware(s.handleListPeople))
	mux.HandleFunc("POST /api/people", s.withMiddleware(s.handleCreatePerson))
	mux.HandleFunc("PUT /api/people/{id}", s.withMiddleware(s.handleUpdatePerson))
	mux.HandleFunc("DELETE /api/people/{id}", s.withMiddleware(s.handleDeletePerson))

	mux.HandleFunc("GET /api/categories", s.withMiddleware(s.handleListCategories))
	mux.HandleFunc("POST /api/categories", s.withMiddleware(s.handleCreateCategory))
	mux.HandleFunc("PUT /api/categories/{id}", s.withMiddleware(s.handleUpdateCategory))
	mux.HandleFunc("DELETE /api/categories/{id}", s.withMiddleware(s.handleDeleteCategory))

	mux.HandleFunc("GET /api/expenses", s.withMiddleware(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.withMiddleware(s.handleCreateExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.withMiddleware(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.withMiddleware(s.handleDeleteExpense))

	mux.HandleFunc("GET /api/payments", s.withMiddleware(s.handleListPayments))
	mux.HandleFunc("POST /api/payments", s.withMiddleware(s.handleCreatePayment))
	mux.HandleFunc("PUT /api/payments/{id}", s.withMiddleware(s.handleUpdatePayment))
	mux.HandleFunc("DELETE /api/payments/{id}", s.withMiddleware(s.handleDeletePayment))

	mux.HandleFunc("GET /api/balances", s.withMiddleware(s.handleBalances))
	mux.HandleFunc("GET /api/summary", s.withMiddleware(s.handleSummary))
	mux.HandleFunc("GET /api/mode", s.withMiddleware(s.handleGetMode))
	mux.HandleFunc("PUT /api/mode", s.withMiddleware(s.handleSetMode))

	return s
}

// withMiddleware adds security headers, rate limiting, and request
// logging to a handler.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		route := r.Pattern
		if route == "" {
			route = r.URL.Path
		}

		slog.InfoContext(ctx, "Request started",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, clientIP)

		// Rate limiting applies to mutating methods only.
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			if !s.rateLimiter.allow(clientIP) {
				slog.WarnContext(ctx, "Rate limit exceeded",
					log.FieldClientIP, clientIP, log.FieldMethod, r.Method, log.FieldPath, r.URL.Path)
				w.Header().Set("Retry-After", "60")
				ErrorResponse(http.StatusTooManyRequests, "rate limit exceeded").Write(w)
				observeRequest(r.Method, route, http.StatusTooManyRequests, time.Since(start))
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		observeRequest(r.Method, route, rw.statusCode, duration)
		slog.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, duration.Milliseconds(),
			log.FieldClientIP, clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
