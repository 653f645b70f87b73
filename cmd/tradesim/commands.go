package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

func stocksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stocks",
		Short: "List every stock in the market",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderStocks(cmd.OutOrStdout(), a.marketSvc.ListStocks())
		},
	}
}

func stockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock SYMBOL",
		Short: "Show one stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.marketSvc.GetStock(args[0])
			if err != nil {
				return err
			}
			return renderStock(cmd.OutOrStdout(), *q)
		},
	}
}

func tradeCmd(a *app, typ domain.TransactionType) *cobra.Command {
	verb := strings.ToLower(string(typ))
	return &cobra.Command{
		Use:   verb + " SYMBOL SHARES",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " shares at the current price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return &domain.ValidationError{Message: fmt.Sprintf("shares must be a whole number, got %q", args[1])}
			}
			req := service.TradeRequest{Symbol: args[0], Shares: shares}

			var res *service.TradeResponse
			if typ == domain.TransactionBuy {
				res, err = a.accountSvc.Buy(cmd.Context(), req)
			} else {
				res, err = a.accountSvc.Sell(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return renderTrade(cmd.OutOrStdout(), res)
		},
	}
}

func portfolioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show cash, holdings and net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.accountSvc.GetAccount()
			if err != nil {
				return err
			}
			return renderAccount(cmd.OutOrStdout(), acct)
		},
	}
}

func historyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List executed trades, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := a.accountSvc.ListTransactions()
			if err != nil {
				return err
			}
			return renderHistory(cmd.OutOrStdout(), txs)
		},
	}
}

func tickCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Advance market prices and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return &domain.ValidationError{Message: "count must be >= 1"}
			}
			var res *service.TickResponse
			for i := 0; i < count; i++ {
				res = a.marketSvc.Tick(cmd.Context())
			}
			if !res.Persisted {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: market advanced but the snapshot was not saved")
			}
			return renderStocks(cmd.OutOrStdout(), res.Stocks)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of ticks")
	return cmd
}
