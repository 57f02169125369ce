package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saedabdu/stockradar/internal/api/handler"
	"github.com/saedabdu/stockradar/internal/client"
	"github.com/saedabdu/stockradar/internal/config"
	"github.com/saedabdu/stockradar/internal/service"
)

const headlinePage = `<html><body>
<div class="article__content"><h3 class="article__headline"><a href="Y">X</a></h3></div>
</body></html>`

// upstreams stubs the quote provider and the news page
type upstreams struct {
	quoteBody  string
	newsStatus int
	newsBody   string
	quoteCalls atomic.Int32
	newsCalls  atomic.Int32
}

func (u *upstreams) start(t *testing.T) *httptest.Server {
	t.Helper()

	quotes := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.quoteCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, u.quoteBody)
	}))
	t.Cleanup(quotes.Close)

	news := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.newsCalls.Add(1)
		w.WriteHeader(u.newsStatus)
		io.WriteString(w, u.newsBody)
	}))
	t.Cleanup(news.Close)

	cfg := &config.Config{
		APIKey:          "test-key",
		QuoteBaseURL:    quotes.URL,
		NewsURLTemplate: news.URL + "/investing/stock/%s/news",
		UserAgent:       config.DefaultUserAgent,
		HTTPTimeout:     2 * time.Second,
	}

	svc := service.New(client.NewTwelveData(cfg), client.NewMarketWatch(cfg))
	app := httptest.NewServer(Routes(handler.NewStockHandler(svc)))
	t.Cleanup(app.Close)

	return app
}

func get(t *testing.T, app *httptest.Server, target string) (int, string) {
	t.Helper()

	resp, err := http.Get(app.URL + target)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestMissingTickerOnAllEndpoints(t *testing.T) {
	u := &upstreams{quoteBody: `{"price":"1"}`, newsStatus: http.StatusOK, newsBody: headlinePage}
	app := u.start(t)

	for _, path := range []string{"/price", "/news", "/radar"} {
		status, body := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.JSONEq(t, `{"error":"Ticker symbol is required"}`, body, path)
	}

	assert.Zero(t, u.quoteCalls.Load())
	assert.Zero(t, u.newsCalls.Load())
}

func TestPricePassThrough(t *testing.T) {
	u := &upstreams{quoteBody: `{"price":"150.00"}`}
	app := u.start(t)

	status, body := get(t, app, "/price?ticker=AAPL")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"price":"150.00"}`, body)
}

func TestPriceUpstreamError(t *testing.T) {
	u := &upstreams{quoteBody: `{"status":"error","message":"symbol not found"}`}
	app := u.start(t)

	status, body := get(t, app, "/price?ticker=BAD")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Failed to fetch stock price","details":"symbol not found"}`, body)
}

func TestNewsWithoutHeadline(t *testing.T) {
	u := &upstreams{newsStatus: http.StatusOK, newsBody: `<html><body></body></html>`}
	app := u.start(t)

	status, body := get(t, app, "/news?ticker=aapl")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ticker":"AAPL","headline":"No recent headlines found.","url":""}`, body)
}

func TestNewsFetchFailureIsNeverA500(t *testing.T) {
	u := &upstreams{newsStatus: http.StatusServiceUnavailable, newsBody: "down"}
	app := u.start(t)

	status, body := get(t, app, "/news?ticker=aapl")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ticker":"AAPL","headline":"Could not fetch news.","url":""}`, body)
}

func TestRadarSuccess(t *testing.T) {
	u := &upstreams{quoteBody: `{"price":"700"}`, newsStatus: http.StatusOK, newsBody: headlinePage}
	app := u.start(t)

	status, body := get(t, app, "/radar?ticker=tsla")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ticker":"TSLA","price":"700","headline":"X","url":"Y"}`, body)
}

func TestRadarQuoteFailureIsRepeatable(t *testing.T) {
	u := &upstreams{quoteBody: `{"status":"error","message":"symbol not found"}`, newsStatus: http.StatusOK, newsBody: headlinePage}
	app := u.start(t)

	for i := 0; i < 3; i++ {
		status, body := get(t, app, "/radar?ticker=tsla")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.JSONEq(t, `{"error":"Failed to fetch radar data","details":"symbol not found"}`, body)
	}

	assert.Equal(t, int32(3), u.newsCalls.Load())
}

func TestUnroutedRequests(t *testing.T) {
	u := &upstreams{}
	app := u.start(t)

	status, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	status, body = get(t, app, "/unknown")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Path not found"}`, body)

	resp, err := http.Post(app.URL+"/price?ticker=AAPL", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := New("0", handler.NewStockHandler(nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
