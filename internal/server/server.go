// Package server exposes the calculation engine as a local JSON API for the
// CRM frontend. The engine stays pure; every request recomputes from the
// project file on disk.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/project"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
)

// Server serves calculation results for one project directory.
type Server struct {
	projectPath string
	port        int
	log         *zap.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int) (*Server, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         log,
	}, nil
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/project", s.handleProject)
	mux.HandleFunc("GET /api/panel", s.handlePanel)
	mux.HandleFunc("GET /api/compliance", s.handleCompliance)
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("eltacalc server starting",
		zap.String("addr", addr),
		zap.String("project", s.projectPath))

	return http.ListenAndServe(addr, mux)
}

// calculate loads the project file and runs the full pipeline.
func (s *Server) calculate() (*project.Result, error) {
	in, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, err
	}
	return project.Calculate(*in)
}

func (s *Server) handleProject(w http.ResponseWriter, _ *http.Request) {
	res, err := s.calculate()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, res)
}

func (s *Server) handlePanel(w http.ResponseWriter, _ *http.Request) {
	res, err := s.calculate()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, res.Panel)
}

func (s *Server) handleCompliance(w http.ResponseWriter, _ *http.Request) {
	res, err := s.calculate()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, res.Compliance)
}

// handleCalculate runs the pipeline on a project posted as JSON, without
// touching the project directory.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in spec.ElectricalProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, fmt.Sprintf("decoding input: %v", err), http.StatusBadRequest)
		return
	}
	res, err := project.Calculate(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.respond(w, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, map[string]string{"status": "ok"})
}

func (s *Server) respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.log.Error("calculation failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
