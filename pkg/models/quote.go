package models

import (
	"encoding/json"
	"fmt"
)

// quoteStatusError is the status marker the quote provider sets on failures
const quoteStatusError = "error"

// Quote represents a successful response from the quote provider.
// The body is kept verbatim; only the price field is lifted out.
type Quote struct {
	Raw   json.RawMessage
	Price json.RawMessage
}

// quoteEnvelope is the subset of the provider response we branch on
type quoteEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Price   json.RawMessage `json:"price"`
}

// UpstreamError is returned when the quote provider reports an error status
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ParseQuote decides between a quote and an *UpstreamError by inspecting the
// provider's status marker.
func ParseQuote(body []byte) (*Quote, error) {
	var env quoteEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("error decoding quote response: %w", err)
	}

	if env.Status == quoteStatusError {
		return nil, &UpstreamError{Message: env.Message}
	}

	raw := make(json.RawMessage, len(body))
	copy(raw, body)

	return &Quote{
		Raw:   raw,
		Price: env.Price,
	}, nil
}
