package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

// AccountHandler handles HTTP requests for the active user's account.
type AccountHandler struct {
	accountSvc *service.AccountService
	validate   *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc *service.AccountService, validate *validator.Validate) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		validate:   validate,
	}
}

// tradeRequest is the JSON body for POST /account/buy and /account/sell.
type tradeRequest struct {
	Symbol string `json:"symbol" validate:"required,symbol"`
	Shares int64  `json:"shares" validate:"required,gt=0"`
}

// transactionResponse is the JSON form of a transaction.
type transactionResponse struct {
	TransactionID string  `json:"transaction_id"`
	Symbol        string  `json:"symbol"`
	Type          string  `json:"type"`
	Shares        int64   `json:"shares"`
	Price         float64 `json:"price"`
	TotalAmount   float64 `json:"total_amount"`
	Timestamp     string  `json:"timestamp"`
}

// tradeResponse is the JSON response for a successful trade.
type tradeResponse struct {
	Transaction transactionResponse `json:"transaction"`
	CashBalance float64             `json:"cash_balance"`
	Persisted   bool                `json:"persisted"`
}

// holdingResponse is a single valued position.
type holdingResponse struct {
	Symbol          string  `json:"symbol"`
	CompanyName     string  `json:"company_name"`
	Shares          int64   `json:"shares"`
	AverageCost     float64 `json:"average_cost"`
	CurrentPrice    float64 `json:"current_price"`
	MarketValue     float64 `json:"market_value"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// accountResponse is the JSON response for GET /account.
type accountResponse struct {
	UserID         string            `json:"user_id"`
	Name           string            `json:"name"`
	CashBalance    float64           `json:"cash_balance"`
	Holdings       []holdingResponse `json:"holdings"`
	TotalValue     float64           `json:"total_value"`
	TotalCostBasis float64           `json:"total_cost_basis"`
	TotalGainLoss  float64           `json:"total_gain_loss"`
	NetWorth       float64           `json:"net_worth"`
}

// Buy handles POST /account/buy.
func (h *AccountHandler) Buy(w http.ResponseWriter, r *http.Request) {
	h.trade(w, r, h.accountSvc.Buy)
}

// Sell handles POST /account/sell.
func (h *AccountHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.trade(w, r, h.accountSvc.Sell)
}

type tradeFunc func(ctx context.Context, req service.TradeRequest) (*service.TradeResponse, error)

func (h *AccountHandler) trade(w http.ResponseWriter, r *http.Request, do tradeFunc) {
	var req tradeRequest
	if err := ParseJSON(w, r, &req); err != nil {
		WriteDomainError(w, err)
		return
	}
	if err := validateRequest(h.validate, req); err != nil {
		WriteDomainError(w, err)
		return
	}

	res, err := do(r.Context(), service.TradeRequest{Symbol: req.Symbol, Shares: req.Shares})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, tradeResponse{
		Transaction: toTransactionResponse(res.Transaction),
		CashBalance: res.CashBalance.InexactFloat64(),
		Persisted:   res.Persisted,
	})
}

// GetAccount handles GET /account.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.accountSvc.GetAccount()
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	holdings := make([]holdingResponse, len(acct.Holdings))
	for i, hv := range acct.Holdings {
		holdings[i] = holdingResponse{
			Symbol:          hv.Symbol,
			CompanyName:     hv.CompanyName,
			Shares:          hv.Shares,
			AverageCost:     hv.AverageCost.Round(4).InexactFloat64(),
			CurrentPrice:    hv.CurrentPrice.InexactFloat64(),
			MarketValue:     hv.MarketValue.Round(2).InexactFloat64(),
			GainLoss:        hv.GainLoss.Round(2).InexactFloat64(),
			GainLossPercent: percent(hv.GainLossPercent),
		}
	}
	WriteJSON(w, http.StatusOK, accountResponse{
		UserID:         acct.UserID,
		Name:           acct.Name,
		CashBalance:    acct.CashBalance.InexactFloat64(),
		Holdings:       holdings,
		TotalValue:     acct.TotalValue.Round(2).InexactFloat64(),
		TotalCostBasis: acct.TotalCostBasis.Round(2).InexactFloat64(),
		TotalGainLoss:  acct.TotalGainLoss.Round(2).InexactFloat64(),
		NetWorth:       acct.NetWorth.Round(2).InexactFloat64(),
	})
}

// ListTransactions handles GET /account/transactions.
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.accountSvc.ListTransactions()
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	out := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = toTransactionResponse(tx)
	}
	WriteJSON(w, http.StatusOK, out)
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		TransactionID: tx.TransactionID,
		Symbol:        tx.Symbol,
		Type:          string(tx.Type),
		Shares:        tx.Shares,
		Price:         tx.Price.InexactFloat64(),
		TotalAmount:   tx.TotalAmount.InexactFloat64(),
		Timestamp:     tx.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
