package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/saedabdu/stockradar/internal/config"
	"github.com/saedabdu/stockradar/pkg/models"
)

const pricePath = "/price"

// TwelveData is the Twelve Data quote API client
type TwelveData struct {
	apiKey string
	client *resty.Client
}

// NewTwelveData creates a new TwelveData API client
func NewTwelveData(cfg *config.Config) *TwelveData {
	client := resty.New()
	client.SetBaseURL(cfg.QuoteBaseURL)
	client.SetTimeout(cfg.HTTPTimeout)
	client.SetLogger(newRestyLogger("twelvedata"))

	return &TwelveData{
		apiKey: cfg.APIKey,
		client: client,
	}
}

// GetPrice retrieves the latest price payload for a ticker.
// A provider-reported failure is returned as *models.UpstreamError.
func (c *TwelveData) GetPrice(ctx context.Context, ticker string) (*models.Quote, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": ticker,
			"apikey": c.apiKey,
		}).
		Get(pricePath)
	if err != nil {
		return nil, fmt.Errorf("error making request to Twelve Data: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode())
	}

	return models.ParseQuote(resp.Body())
}
