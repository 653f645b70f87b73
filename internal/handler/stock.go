package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

// StockHandler handles HTTP requests for market endpoints.
type StockHandler struct {
	marketSvc *service.MarketService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(marketSvc *service.MarketService) *StockHandler {
	return &StockHandler{marketSvc: marketSvc}
}

// stockResponse is the JSON form of a quote.
type stockResponse struct {
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"company_name"`
	CurrentPrice  float64 `json:"current_price"`
	OpenPrice     float64 `json:"open_price"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap"`
}

// tickResponse is the JSON response for POST /market/tick.
type tickResponse struct {
	Stocks     []stockResponse `json:"stocks"`
	Persisted  bool            `json:"persisted"`
	AdvancedAt string          `json:"advanced_at"`
}

// ListStocks handles GET /stocks.
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, toStockResponses(h.marketSvc.ListStocks()))
}

// GetStock handles GET /stocks/{symbol}.
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	q, err := h.marketSvc.GetStock(chi.URLParam(r, "symbol"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toStockResponse(*q))
}

// Tick handles POST /market/tick.
func (h *StockHandler) Tick(w http.ResponseWriter, r *http.Request) {
	res := h.marketSvc.Tick(r.Context())
	WriteJSON(w, http.StatusOK, tickResponse{
		Stocks:     toStockResponses(res.Stocks),
		Persisted:  res.Persisted,
		AdvancedAt: res.AdvancedAt.UTC().Format(time.RFC3339),
	})
}

func toStockResponses(quotes []service.StockQuote) []stockResponse {
	out := make([]stockResponse, len(quotes))
	for i, q := range quotes {
		out[i] = toStockResponse(q)
	}
	return out
}

func toStockResponse(q service.StockQuote) stockResponse {
	return stockResponse{
		Symbol:        q.Symbol,
		CompanyName:   q.CompanyName,
		CurrentPrice:  q.CurrentPrice.InexactFloat64(),
		OpenPrice:     q.OpenPrice.InexactFloat64(),
		PreviousClose: q.PreviousClose.InexactFloat64(),
		Change:        q.Change.InexactFloat64(),
		ChangePercent: percent(q.ChangePercent),
		Volume:        q.Volume,
		MarketCap:     q.MarketCap.InexactFloat64(),
	}
}

var hundred = decimal.NewFromInt(100)

// percent converts a ratio to a percentage rounded to two places.
func percent(ratio decimal.Decimal) float64 {
	return ratio.Mul(hundred).Round(2).InexactFloat64()
}
