// Package api - Request and response types
package api

import "vm-pricing/core/types"

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by GET /version
type VersionResponse struct {
	Version string `json:"version"`
}

// RegionsResponse is returned by GET /v1/regions
type RegionsResponse struct {
	Regions map[types.Provider][]string `json:"regions"`
}

// NodesResponse is returned by GET /v1/nodes
type NodesResponse struct {
	Nodes []NodeEntry `json:"nodes"`
}

// NodeEntry is one catalog node type in a listing
type NodeEntry struct {
	Name     string  `json:"name"`
	DBUPerHr float64 `json:"dbu_per_hr"`
	CPUCores int     `json:"cpu_cores"`
	Memory   int     `json:"memory"`
}
