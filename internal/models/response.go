package models

import "time"

// DemoMessage is the fixed greeting returned by GET /
const DemoMessage = "Hello from demo NPM project!"

// DemoResponse represents the payload served by the root endpoint
type DemoResponse struct {
	Message       string `json:"message" example:"Hello from demo NPM project!"`
	Timestamp     string `json:"timestamp" example:"2025-11-10T14:30:00.000Z"`
	LodashVersion string `json:"lodashVersion" example:"v1.52.0"`
}

// HealthResponse represents the response structure for health check endpoints
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// ErrorResponse represents an error returned to API clients
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"No route for GET /nonexistent"`
}
