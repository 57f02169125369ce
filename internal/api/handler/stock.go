package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/saedabdu/stockradar/internal/api"
	"github.com/saedabdu/stockradar/internal/service"
	"github.com/saedabdu/stockradar/pkg/models"
)

const (
	msgTickerRequired = "Ticker symbol is required"
	msgPriceFailed    = "Failed to fetch stock price"
	msgNewsFailed     = "Failed to fetch news"
	msgRadarFailed    = "Failed to fetch radar data"
	msgNotFound       = "Path not found"
)

// StockService is the subset of the service layer used by the handlers
type StockService interface {
	GetPrice(ctx context.Context, ticker string) (*models.Quote, error)
	GetNews(ctx context.Context, ticker string) (*service.NewsData, error)
	GetRadar(ctx context.Context, ticker string) (*service.RadarData, error)
}

// StockHandler handles HTTP requests for price, news and radar data
type StockHandler struct {
	stockService StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// HandlePrice handles requests to the /price endpoint
func (h *StockHandler) HandlePrice(w http.ResponseWriter, r *http.Request) {
	ticker, ok := h.requireTicker(w, r)
	if !ok {
		return
	}

	quote, err := h.stockService.GetPrice(r.Context(), ticker)
	if err != nil {
		slog.Error("Error getting stock price", "ticker", ticker, "error", err)
		h.sendFailureResponse(w, msgPriceFailed, err)
		return
	}

	// The provider payload is passed through untouched
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(quote.Raw); err != nil {
		slog.Error("Error writing price response", "error", err)
	}
}

// HandleNews handles requests to the /news endpoint
func (h *StockHandler) HandleNews(w http.ResponseWriter, r *http.Request) {
	ticker, ok := h.requireTicker(w, r)
	if !ok {
		return
	}

	news, err := h.stockService.GetNews(r.Context(), ticker)
	if err != nil {
		slog.Error("Error getting news", "ticker", ticker, "error", err)
		h.sendFailureResponse(w, msgNewsFailed, err)
		return
	}

	h.sendJSONResponse(w, http.StatusOK, api.NewsResponse{
		Ticker:   news.Ticker,
		Headline: news.Headline.Headline,
		URL:      news.URL,
	})
}

// HandleRadar handles requests to the /radar endpoint
func (h *StockHandler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	ticker, ok := h.requireTicker(w, r)
	if !ok {
		return
	}

	radar, err := h.stockService.GetRadar(r.Context(), ticker)
	if err != nil {
		slog.Error("Error getting radar data", "ticker", ticker, "error", err)
		h.sendFailureResponse(w, msgRadarFailed, err)
		return
	}

	h.sendJSONResponse(w, http.StatusOK, api.RadarResponse{
		Ticker:   radar.Ticker,
		Price:    radar.Price,
		Headline: radar.Headline,
		URL:      radar.URL,
	})
}

// HandleHealth handles requests to the /health endpoint
func (h *StockHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.sendJSONResponse(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// HandleNotFound answers requests for unknown paths
func (h *StockHandler) HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	h.sendErrorResponse(w, msgNotFound, http.StatusNotFound)
}

// requireTicker reads the ticker query parameter and answers 400 when it is missing
func (h *StockHandler) requireTicker(w http.ResponseWriter, r *http.Request) (string, bool) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		h.sendErrorResponse(w, msgTickerRequired, http.StatusBadRequest)
		return "", false
	}
	return ticker, true
}

// sendJSONResponse sends a JSON response to the client
func (h *StockHandler) sendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding JSON response", "error", err)
	}
}

// sendErrorResponse sends an error response to the client
func (h *StockHandler) sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSONResponse(w, statusCode, api.ErrorResponse{Error: message})
}

// sendFailureResponse sends a 500 carrying the upstream error text verbatim
func (h *StockHandler) sendFailureResponse(w http.ResponseWriter, message string, err error) {
	h.sendJSONResponse(w, http.StatusInternalServerError, api.FailureResponse{
		Error:   message,
		Details: err.Error(),
	})
}
