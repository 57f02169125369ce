package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saedabdu/stockradar/internal/api"
	"github.com/saedabdu/stockradar/internal/api/handler"
	"github.com/saedabdu/stockradar/internal/client"
	"github.com/saedabdu/stockradar/internal/config"
	"github.com/saedabdu/stockradar/internal/server"
	"github.com/saedabdu/stockradar/internal/service"
)

// app holds what every command needs once configuration is loaded
type app struct {
	cfg     *config.Config
	service *service.StockService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "stockradar",
		Short: "Stock price and headline radar",
		Long: `stockradar serves the latest price and news headline for a ticker symbol.
Run without a subcommand to start the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	serveCmd := newServeCmd(a)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newPriceCmd(a))
	rootCmd.AddCommand(newNewsCmd(a))
	rootCmd.AddCommand(newRadarCmd(a))

	return rootCmd
}

// load reads configuration and wires the service
func (a *app) load() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	a.cfg = cfg
	a.service = service.New(client.NewTwelveData(cfg), client.NewMarketWatch(cfg))
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := a.cfg.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetString("port")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(port, handler.NewStockHandler(a.service))
			return server.Run(ctx, srv)
		},
	}
	cmd.Flags().String("port", config.DefaultPort, "port to listen on (overrides PORT)")

	return cmd
}

func newPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price [TICKER]",
		Short: "Print the provider quote for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quote, err := a.service.GetPrice(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch stock price: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(quote.Raw))
			return err
		},
	}
}

func newNewsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "news [TICKER]",
		Short: "Print the latest headline for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			news, err := a.service.GetNews(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch news: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), api.NewsResponse{
				Ticker:   news.Ticker,
				Headline: news.Headline.Headline,
				URL:      news.URL,
			})
		},
	}
}

func newRadarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "radar [TICKER]",
		Short: "Print the price and latest headline for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			radar, err := a.service.GetRadar(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch radar data: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), api.RadarResponse{
				Ticker:   radar.Ticker,
				Price:    radar.Price,
				Headline: radar.Headline,
				URL:      radar.URL,
			})
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
