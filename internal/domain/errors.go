package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrStockNotFound        = errors.New("stock_not_found")
	ErrNoActiveUser         = errors.New("no_active_user")
	ErrInsufficientBalance  = errors.New("insufficient_balance")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
	ErrHoldingNotFound      = errors.New("holding_not_found")
	ErrInconsistentState    = errors.New("inconsistent_state")
	ErrInvalidSnapshot      = errors.New("invalid_snapshot")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
