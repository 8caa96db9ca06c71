// Package models contains response types shared across handler packages.
package models

// HealthResponse is returned by the /healthz and /readyz probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
