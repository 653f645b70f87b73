package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

const historyTimeLayout = "Jan 02, 2006 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderStocks(w io.Writer, quotes []service.StockQuote) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Symbol\tCompany\tPrice\tChange\tChange %\tVolume\tMarket Cap")
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			q.Symbol,
			q.CompanyName,
			domain.FormatMoney(q.CurrentPrice),
			domain.FormatSignedMoney(q.Change),
			domain.FormatPercent(q.ChangePercent),
			domain.FormatVolume(q.Volume),
			domain.FormatMarketCap(q.MarketCap),
		)
	}
	return tw.Flush()
}

func renderStock(w io.Writer, q service.StockQuote) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Symbol:\t%s\n", q.Symbol)
	fmt.Fprintf(tw, "Company:\t%s\n", q.CompanyName)
	fmt.Fprintf(tw, "Price:\t%s\n", domain.FormatMoney(q.CurrentPrice))
	fmt.Fprintf(tw, "Open:\t%s\n", domain.FormatMoney(q.OpenPrice))
	fmt.Fprintf(tw, "Previous Close:\t%s\n", domain.FormatMoney(q.PreviousClose))
	fmt.Fprintf(tw, "Change:\t%s (%s)\n", domain.FormatSignedMoney(q.Change), domain.FormatPercent(q.ChangePercent))
	fmt.Fprintf(tw, "Volume:\t%s\n", domain.FormatVolume(q.Volume))
	fmt.Fprintf(tw, "Market Cap:\t%s\n", domain.FormatMarketCap(q.MarketCap))
	return tw.Flush()
}

func renderTrade(w io.Writer, res *service.TradeResponse) error {
	tx := res.Transaction
	_, err := fmt.Fprintf(w, "%s %d %s @ %s = %s (cash %s)\n",
		tx.Type,
		tx.Shares,
		tx.Symbol,
		domain.FormatMoney(tx.Price),
		domain.FormatMoney(tx.TotalAmount),
		domain.FormatMoney(res.CashBalance),
	)
	return err
}

func renderAccount(w io.Writer, acct *engine.Account) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "User:\t%s (%s)\n", acct.Name, acct.UserID)
	fmt.Fprintf(tw, "Cash Balance:\t%s\n", domain.FormatMoney(acct.CashBalance))
	fmt.Fprintf(tw, "Portfolio Value:\t%s\n", domain.FormatMoney(acct.TotalValue))
	fmt.Fprintf(tw, "Total Gain/Loss:\t%s\n", domain.FormatSignedMoney(acct.TotalGainLoss))
	fmt.Fprintf(tw, "Net Worth:\t%s\n", domain.FormatMoney(acct.NetWorth))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(acct.Holdings) == 0 {
		_, err := fmt.Fprintln(w, "\nNo holdings.")
		return err
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "Symbol\tCompany\tShares\tAvg Cost\tCurrent Price\tMarket Value\tGain/Loss\tGain/Loss %")
	for _, h := range acct.Holdings {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			h.Symbol,
			h.CompanyName,
			h.Shares,
			domain.FormatMoney(h.AverageCost),
			domain.FormatMoney(h.CurrentPrice),
			domain.FormatMoney(h.MarketValue),
			domain.FormatSignedMoney(h.GainLoss),
			domain.FormatPercent(h.GainLossPercent),
		)
	}
	return tw.Flush()
}

func renderHistory(w io.Writer, txs []domain.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "No transactions.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Date/Time\tType\tSymbol\tShares\tPrice\tTotal Amount\tStatus")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\tCompleted\n",
			tx.Timestamp.Local().Format(historyTimeLayout),
			tx.Type,
			tx.Symbol,
			tx.Shares,
			domain.FormatMoney(tx.Price),
			domain.FormatMoney(tx.TotalAmount),
		)
	}
	return tw.Flush()
}
