// Package httperror maps ledger errors onto HTTP status codes.
package httperror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	var re *ledger.ReconciliationError
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &re):
		return http.StatusConflict
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrNotInitialized), errors.Is(err, operator.ErrStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// From wraps err in a Huma error carrying its mapped status.
func From(msg string, err error) huma.StatusError {
	return huma.NewError(Status(err), msg, err)
}
