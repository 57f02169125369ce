package api

import "encoding/json"

// NewsResponse represents the response sent for the /news endpoint
type NewsResponse struct {
	Ticker   string `json:"ticker"`
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// RadarResponse represents the response sent for the /radar endpoint
type RadarResponse struct {
	Ticker   string          `json:"ticker"`
	Price    json.RawMessage `json:"price,omitempty"`
	Headline string          `json:"headline"`
	URL      string          `json:"url"`
}

// ErrorResponse represents an error response sent to the client
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse represents an upstream failure, with the provider's message as details
type FailureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status string `json:"status"`
}
