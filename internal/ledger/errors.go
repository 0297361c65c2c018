package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when storage is used before Init completed.
	ErrNotInitialized = errors.New("storage not initialized")

	// ErrNotFound is returned when a read, update or delete references a missing id.
	ErrNotFound = errors.New("not found")
)

// StorageError wraps an I/O or constraint failure from the storage layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// WrapStorage returns err as a StorageError for op. Nil stays nil, and errors
// that already carry a ledger meaning pass through untouched.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotInitialized) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// ValidationError reports input that violates a ledger rule.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReconciliationError reports a balance adjustment that failed after its
// paired record write succeeded. When RolledBack is false the account balance
// may no longer match its transactions and needs a repair.
type ReconciliationError struct {
	Op            string
	TransactionID int64
	AccountID     int64
	RolledBack    bool
	Err           error
}

func (e *ReconciliationError) Error() string {
	state := "rolled back"
	if !e.RolledBack {
		state = "NOT rolled back, balance needs repair"
	}
	return fmt.Sprintf("reconcile %s of transaction %d on account %d (%s): %v",
		e.Op, e.TransactionID, e.AccountID, state, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
