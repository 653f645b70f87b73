package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

// newValidator returns a validator with the custom rules registered and
// JSON field names used in error messages.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("symbol", validateSymbol)
	return v
}

// validateSymbol applies the service's symbol rule, so the edge and the
// service never disagree on what a symbol is.
func validateSymbol(fl validator.FieldLevel) bool {
	return service.ValidSymbol(fl.Field().String())
}

// validateRequest runs v's struct tags and converts the first failure into
// a *domain.ValidationError.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.ValidationError{Message: err.Error()}
	}
	return &domain.ValidationError{Message: fieldMessage(verrs[0])}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "symbol":
		return fmt.Sprintf("%s must be 1-10 letters", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
