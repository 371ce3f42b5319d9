package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smscal/internal/processor"
	"smscal/internal/twilio"
)

type Server struct {
	processor *processor.Processor
	validator *twilio.Validator
	httpSrv   *http.Server
	port      int
}

// ServerConfig holds the server's collaborators and listen port.
type ServerConfig struct {
	Processor *processor.Processor
	Validator *twilio.Validator
	Port      int
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		processor: cfg.Processor,
		validator: cfg.Validator,
		port:      cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Webhook plus the HEAD probe Twilio's console uses for health checks
	mux.HandleFunc("POST /sms", s.handleSMSWebhook)
	mux.HandleFunc("HEAD /sms", s.handleSMSProbe)

	mux.HandleFunc("GET /health", s.handleHealthCheck)
}

func (s *Server) Start() error {
	fmt.Printf("HTTP server listening on port %d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
