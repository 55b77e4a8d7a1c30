// Package api provides HTTP API capabilities for the smstx parser.
// This is a capability module that can be enabled via the CLI or used programmatically.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/aqlanhadi/smstx/parser"
	"github.com/aqlanhadi/smstx/parser/common"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config   Config
	registry *parser.Registry
	mux      *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	return NewWithRegistry(cfg, parser.Default())
}

// NewWithRegistry creates a server backed by a caller-supplied registry,
// typically one extended with custom institutions.
func NewWithRegistry(cfg Config, registry *parser.Registry) *Server {
	s := &Server{
		config:   cfg,
		registry: registry,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up the API endpoints
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/scan", s.handleScan)
	s.mux.HandleFunc("/mandate", s.handleMandate)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
// This allows the server to be used with custom http.Server configurations
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ParseRequest is one SMS to classify and extract.
type ParseRequest struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// ParseResponse wraps the extraction outcome. Transaction is null for
// messages that are not completed transactions.
type ParseResponse struct {
	Supported   bool                `json:"supported"`
	Transaction *common.Transaction `json:"transaction"`
}

// handleParse handles single-message extraction requests
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("%sError decoding request: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" || req.Sender == "" {
		http.Error(w, "Both message and sender are required", http.StatusBadRequest)
		return
	}

	resp := ParseResponse{
		Supported:   s.registry.Supports(req.Sender),
		Transaction: s.registry.Parse(req.Message, req.Sender, req.Timestamp),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ScanResponse summarizes a batch extraction.
type ScanResponse struct {
	Total        int                   `json:"total"`
	Extracted    int                   `json:"extracted"`
	Transactions []*common.Transaction `json:"transactions"`
}

// handleScan handles batch extraction requests
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req []ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("%sError decoding request: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := ScanResponse{Total: len(req), Transactions: []*common.Transaction{}}
	for _, m := range req {
		if tx := s.registry.Parse(m.Message, m.Sender, m.Timestamp); tx != nil {
			resp.Transactions = append(resp.Transactions, tx)
		}
	}
	resp.Extracted = len(resp.Transactions)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// MandateResponse wraps a recurring-payment notification lookup.
type MandateResponse struct {
	Found   bool            `json:"found"`
	Mandate *common.Mandate `json:"mandate,omitempty"`
}

// handleMandate handles mandate-notification extraction requests
func (s *Server) handleMandate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	md, ok := s.registry.ParseMandate(req.Message, req.Sender)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MandateResponse{Found: ok, Mandate: md})
}
