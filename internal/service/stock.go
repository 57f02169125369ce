package service

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/saedabdu/stockradar/pkg/models"
)

// QuoteFetcher retrieves price quotes from the quote provider
type QuoteFetcher interface {
	GetPrice(ctx context.Context, ticker string) (*models.Quote, error)
}

// HeadlineFetcher retrieves the latest headline for a ticker. Implementations
// must always return a headline, using the sentinel values on failure.
type HeadlineFetcher interface {
	GetNews(ctx context.Context, ticker string) models.Headline
}

// NewsData is the latest headline for a ticker
type NewsData struct {
	Ticker string
	models.Headline
}

// RadarData combines the price and latest headline for a ticker
type RadarData struct {
	Ticker   string
	Price    json.RawMessage
	Headline string
	URL      string
}

// StockService composes the quote and headline fetchers
type StockService struct {
	quotes    QuoteFetcher
	headlines HeadlineFetcher
}

// New creates a new StockService
func New(quotes QuoteFetcher, headlines HeadlineFetcher) *StockService {
	return &StockService{
		quotes:    quotes,
		headlines: headlines,
	}
}

// GetPrice returns the quote provider's payload for a ticker
func (s *StockService) GetPrice(ctx context.Context, ticker string) (*models.Quote, error) {
	return s.quotes.GetPrice(ctx, ticker)
}

// GetNews returns the latest headline for a ticker. The error is always nil.
func (s *StockService) GetNews(ctx context.Context, ticker string) (*NewsData, error) {
	headline := s.headlines.GetNews(ctx, ticker)

	return &NewsData{
		Ticker:   strings.ToUpper(ticker),
		Headline: headline,
	}, nil
}

// GetRadar fetches the quote and the headline concurrently and waits for both.
// A quote failure fails the whole call even if the headline was found.
func (s *StockService) GetRadar(ctx context.Context, ticker string) (*RadarData, error) {
	var (
		g        errgroup.Group
		quote    *models.Quote
		headline models.Headline
	)

	g.Go(func() error {
		var err error
		quote, err = s.quotes.GetPrice(ctx, ticker)
		return err
	})

	g.Go(func() error {
		headline = s.headlines.GetNews(ctx, ticker)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &RadarData{
		Ticker:   strings.ToUpper(ticker),
		Price:    quote.Price,
		Headline: headline.Headline,
		URL:      headline.URL,
	}, nil
}
