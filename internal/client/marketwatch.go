package client

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/saedabdu/stockradar/internal/config"
	"github.com/saedabdu/stockradar/pkg/models"
)

// headlineSelector matches the link of each article headline on the news page
const headlineSelector = ".article__headline a"

// MarketWatch scrapes the first headline from a ticker's news page
type MarketWatch struct {
	urlTemplate string
	client      *resty.Client
}

// NewMarketWatch creates a new MarketWatch news scraper
func NewMarketWatch(cfg *config.Config) *MarketWatch {
	client := resty.New()
	client.SetTimeout(cfg.HTTPTimeout)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetLogger(newRestyLogger("marketwatch"))

	return &MarketWatch{
		urlTemplate: cfg.NewsURLTemplate,
		client:      client,
	}
}

// GetNews returns the most recent headline for a ticker. It never fails:
// problems are logged and reported through the sentinel headlines.
func (c *MarketWatch) GetNews(ctx context.Context, ticker string) (headline models.Headline) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Scraping failed", "ticker", ticker, "error", fmt.Sprint(r))
			headline = models.UnavailableHeadline()
		}
	}()

	headline, err := c.fetchHeadline(ctx, ticker)
	if err != nil {
		slog.Error("Scraping failed", "ticker", ticker, "error", err)
		return models.UnavailableHeadline()
	}
	return headline
}

func (c *MarketWatch) fetchHeadline(ctx context.Context, ticker string) (models.Headline, error) {
	pageURL := fmt.Sprintf(c.urlTemplate, strings.ToLower(ticker))

	resp, err := c.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return models.Headline{}, fmt.Errorf("failed to fetch news page: %w", err)
	}

	if !resp.IsSuccess() {
		return models.Headline{}, fmt.Errorf("HTTP error %d when fetching news page", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return models.Headline{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return extractHeadline(doc), nil
}

// extractHeadline reads the first headline link from the document
func extractHeadline(doc *goquery.Document) models.Headline {
	link := doc.Find(headlineSelector).First()

	text := strings.TrimSpace(link.Text())
	href, _ := link.Attr("href")

	if text == "" || href == "" {
		return models.NoHeadline()
	}

	return models.Headline{
		Headline: text,
		URL:      href,
	}
}
