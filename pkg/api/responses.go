package api

import (
	"github.com/leadflowhq/leadflow/pkg/database"
)

// WebhookResponse acknowledges a provider webhook delivery.
type WebhookResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}

// VersionResponse is returned by GET /api/v1/version.
type VersionResponse struct {
	App    string `json:"app"`
	Commit string `json:"commit"`
	Full   string `json:"full"`
}
