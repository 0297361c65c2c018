package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ledger.NewValidationError("amount", "must be greater than zero"), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", ledger.NewValidationError("date", "bad")), http.StatusBadRequest},
		{"not found", ledger.ErrNotFound, http.StatusNotFound},
		{"reconciliation", &ledger.ReconciliationError{Op: "create", Err: ledger.ErrNotFound, RolledBack: true}, http.StatusConflict},
		{"not initialized", ledger.ErrNotInitialized, http.StatusServiceUnavailable},
		{"stopped", operator.ErrStopped, http.StatusServiceUnavailable},
		{"storage", &ledger.StorageError{Op: "insert", Err: errors.New("constraint failed")}, http.StatusInternalServerError},
		{"deadline", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestFrom(t *testing.T) {
	err := From("failed to get account", ledger.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Contains(t, err.Error(), "failed to get account")
}
