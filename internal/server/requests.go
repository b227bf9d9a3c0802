// internal/server/requests.go
package server

import "primedesign-core/design"

// DesignRequest is the body of POST /v1/design.
type DesignRequest struct {
	Sequence    string         `json:"sequence"`
	TargetStart int            `json:"target_start"`
	TargetEnd   int            `json:"target_end"`
	Params      *design.Params `json:"params,omitempty"`
	Multiplex   bool           `json:"multiplex,omitempty"`
}

// ThermoRequest is the body of POST /v1/thermo/tm and
// POST /v1/thermo/comprehensive.
type ThermoRequest struct {
	Sequence string `json:"sequence"`
	Method   string `json:"method,omitempty"` // "strict" | "lenient" (tm only)
}

// StatsRequest is the body of POST /v1/stats.
type StatsRequest struct {
	Sequence   string `json:"sequence"`
	WindowSize int    `json:"window_size,omitempty"`
	WindowStep int    `json:"window_step,omitempty"`
}
