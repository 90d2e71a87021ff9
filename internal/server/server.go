// Package server wires the HTTP API: routing, middleware and lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LuckyDraw_Go/internal/database"
	"github.com/osse101/LuckyDraw_Go/internal/handler"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxBodyBytes    int64
	RateLimit       int
	RateLimitWindow time.Duration
	WriteTimeout    time.Duration
	EnableSwaggerUI bool
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router. store backs /readyz.
func NewServer(opts Options, store database.Pool, draws lottery.Service, rosterService roster.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, store, draws, rosterService),
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// NewRouter returns the full handler tree
func NewRouter(opts Options, store database.Pool, draws lottery.Service, rosterService roster.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimit, opts.RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	if opts.MaxBodyBytes > 0 {
		r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	lotteryHandler := handler.NewLotteryHandler(draws)
	transferHandler := handler.NewTransferHandler(rosterService)
	rosterHandler := handler.NewRosterHandler(rosterService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/lottery", func(r chi.Router) {
			r.Post("/draw", lotteryHandler.HandleDraw)
			r.Get("/records", rosterHandler.HandleListDrawRecords)
		})

		r.Post("/export", transferHandler.HandleExport)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", rosterHandler.HandleListCategories)
			r.Post("/", rosterHandler.HandleCreateCategory)
			r.Get("/counts", rosterHandler.HandleCategoryCounts)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rosterHandler.HandleGetCategory)
				r.Put("/", rosterHandler.HandleUpdateCategory)
				r.Delete("/", rosterHandler.HandleDeleteCategory)
				r.Post("/active", rosterHandler.HandleSetCategoryActive)
			})
		})

		r.Route("/participants", func(r chi.Router) {
			r.Get("/", rosterHandler.HandleListParticipants)
			r.Post("/", rosterHandler.HandleCreateParticipant)
			r.Post("/import", transferHandler.HandleImport)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rosterHandler.HandleGetParticipant)
				r.Put("/", rosterHandler.HandleUpdateParticipant)
				r.Delete("/", rosterHandler.HandleDeleteParticipant)
				r.Post("/active", rosterHandler.HandleSetParticipantActive)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/cache/stats", rosterHandler.HandleGetCacheStats)
		})
	})

	if opts.EnableSwaggerUI {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware attaches a request id to the context and logs each
// request. Probe and docs paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
