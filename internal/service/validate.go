package service

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ledger.NewValidationError(field, "must not be empty")
	}
	return name, nil
}

func requireCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", ledger.NewValidationError("currency", "unknown ISO 4217 code "+code)
	}
	return code, nil
}

func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ledger.NewValidationError(field, "must be greater than zero")
	}
	return nil
}

func requireRange(start, end ledger.Date) error {
	if end.Before(start) {
		return ledger.NewValidationError("range", "start "+start.String()+" is after end "+end.String())
	}
	return nil
}

func parseOptionalDate(s string) (*ledger.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := ledger.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
