package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// maxBodyBytes caps request bodies; trade requests are tiny.
const maxBodyBytes = 1 << 16

// WriteJSON writes data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // client went away; nothing left to report
}

// errorResponse is the standard error response format.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standard error body with a machine-readable code and
// a human-readable message.
func WriteError(w http.ResponseWriter, status int, errorCode, message string) {
	WriteJSON(w, status, errorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// WriteDomainError maps err onto a status code and error code.
func WriteDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteError(w, http.StatusBadRequest, "validation_error", ve.Message)
	case errors.Is(err, domain.ErrStockNotFound):
		WriteError(w, http.StatusNotFound, "stock_not_found", "Stock not found")
	case errors.Is(err, domain.ErrInsufficientBalance):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_balance", "Insufficient cash balance for this purchase")
	case errors.Is(err, domain.ErrInsufficientHoldings):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_holdings", "Insufficient shares for this sale")
	case errors.Is(err, domain.ErrNoActiveUser):
		WriteError(w, http.StatusConflict, "no_active_user", "No active user")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// ParseJSON decodes the request body into v. Unknown fields, trailing data
// and oversized bodies are rejected with a *domain.ValidationError.
func ParseJSON(w http.ResponseWriter, r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return &domain.ValidationError{Message: "Content-Type must be application/json"}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &domain.ValidationError{Message: "Request body must be a valid JSON object"}
	}
	if dec.More() {
		return &domain.ValidationError{Message: "Request body must contain a single JSON object"}
	}
	return nil
}
