package dispatch

import "time"

// StatusSnapshot is the latest-known system status. Snapshots fetched from
// the status endpoint have Simulated false; the fallback substituted on fetch
// failure is marked Simulated.
type StatusSnapshot struct {
	Health           string  `json:"health"`
	LatencyMS        int     `json:"latency_ms"`
	ErrorRate        float64 `json:"error_rate"`
	LastDeployment   string  `json:"last_deployment"`
	DeploymentStatus string  `json:"deployment_status"`
	IncidentActive   bool    `json:"incident_active"`
	UpdatedAt        string  `json:"updated_at"`
	Simulated        bool    `json:"simulated,omitempty"`
}

func simulatedSnapshot(now time.Time) StatusSnapshot {
	return StatusSnapshot{
		Health:           "Nominal (Simulated)",
		LatencyMS:        42,
		ErrorRate:        0.01,
		LastDeployment:   "v2.4.1",
		DeploymentStatus: "Stable",
		IncidentActive:   false,
		UpdatedAt:        now.UTC().Format(time.RFC3339),
		Simulated:        true,
	}
}
