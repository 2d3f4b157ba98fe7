// Package api - Thin HTTP layer over the pricing lookup
// The API is ONLY responsible for input validation, lookup orchestration
// and output serialization. It performs NO pricing logic.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"vm-pricing/core/catalog"
	"vm-pricing/core/pricing"
	"vm-pricing/internal/errors"
	"vm-pricing/internal/logging"
)

// Server is the API server
type Server struct {
	lookup  *pricing.Lookup
	mux     *http.ServeMux
	version string
	log     *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, lookup *pricing.Lookup) *Server {
	s := &Server{
		lookup:  lookup,
		mux:     http.NewServeMux(),
		version: version,
		log:     logging.Named("api"),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoint
	s.mux.HandleFunc("GET /v1/price", s.handlePrice)

	// Catalog endpoints
	s.mux.HandleFunc("GET /v1/regions", s.handleRegions)
	s.mux.HandleFunc("GET /v1/nodes", s.handleNodes)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handlePrice handles GET /v1/price?region=<region>&node=<node-type>
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	node := r.URL.Query().Get("node")
	if region == "" || node == "" {
		s.writeError(w, "MISSING_PARAMETER", "region and node query parameters are required", http.StatusBadRequest)
		return
	}

	info, err := s.lookup.Price(r.Context(), region, node)
	if err != nil {
		if errors.IsType(err, errors.TypeInvalidRegion) {
			s.writeError(w, "INVALID_REGION", err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("lookup failed",
			zap.String("region", region),
			zap.String("node", node),
			zap.Error(err))
		s.writeError(w, "LOOKUP_ERROR", err.Error(), http.StatusBadGateway)
		return
	}
	if info == nil {
		s.writeError(w, "NOT_FOUND", "no pricing for this node type in this region", http.StatusNotFound)
		return
	}

	s.writeJSON(w, info, http.StatusOK)
}

// handleRegions handles GET /v1/regions
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := catalog.Regions()
	if err != nil {
		s.writeError(w, "CATALOG_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, RegionsResponse{Regions: regions}, http.StatusOK)
}

// handleNodes handles GET /v1/nodes
func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := catalog.NodeTypes()
	if err != nil {
		s.writeError(w, "CATALOG_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	names, err := catalog.NodeTypeNames()
	if err != nil {
		s.writeError(w, "CATALOG_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	resp := NodesResponse{Nodes: make([]NodeEntry, 0, len(names))}
	for _, name := range names {
		node := nodes[name]
		resp.Nodes = append(resp.Nodes, NodeEntry{
			Name:     name,
			DBUPerHr: node.DBUPerHr,
			CPUCores: node.CPUCores,
			Memory:   node.Memory,
		})
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, VersionResponse{Version: s.version}, http.StatusOK)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes a JSON error response
func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
