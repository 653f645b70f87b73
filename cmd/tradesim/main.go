package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/config"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/store"
)

// app is everything a command needs, built once per invocation.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *engine.TradingEngine
	store      *store.SnapshotStore
	marketSvc  *service.MarketService
	accountSvc *service.AccountService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		a        app
		dataFile string
	)

	rootCmd := &cobra.Command{
		Use:          "tradesim",
		Short:        "Simulated stock trading platform",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "healthcheck" {
				return nil
			}
			return a.setup(cmd.Context(), dataFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data-file", "f", "", "Snapshot file (overrides DATA_FILE)")

	rootCmd.AddCommand(serveCmd(&a))
	rootCmd.AddCommand(healthcheckCmd())
	rootCmd.AddCommand(stocksCmd(&a))
	rootCmd.AddCommand(stockCmd(&a))
	rootCmd.AddCommand(tradeCmd(&a, domain.TransactionBuy))
	rootCmd.AddCommand(tradeCmd(&a, domain.TransactionSell))
	rootCmd.AddCommand(portfolioCmd(&a))
	rootCmd.AddCommand(historyCmd(&a))
	rootCmd.AddCommand(tickCmd(&a))

	return rootCmd
}

// setup loads configuration, sets up logging and restores the saved session.
func (a *app) setup(ctx context.Context, dataFile string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		return err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	a.cfg = cfg

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	// Logs go to stderr so command output on stdout stays clean.
	a.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(a.logger)

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.engine = engine.New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	a.store = store.NewSnapshotStore(cfg.DataFile)

	user, err := domain.NewUser(cfg.UserID, cfg.UserName, cfg.InitialCash)
	if err != nil {
		return err
	}
	if _, err := service.Bootstrap(ctx, a.engine, a.store, user, a.logger); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	a.marketSvc = service.NewMarketService(a.engine, a.store, a.logger)
	a.accountSvc = service.NewAccountService(a.engine, a.store, a.logger)
	return nil
}
