package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStoreUnavailable indicates that the underlying blob store failed to
// read or write a record.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrInvalidReference indicates that a transaction references a wallet that
// does not exist.
var ErrInvalidReference = errors.New("invalid wallet reference")

// ErrInvalidAmount indicates a non-positive or non-numeric amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInconsistentState indicates that a wallet balance recomputed from
// transaction history disagrees with the stored balance. It is used for
// diagnostics; the ledger repository self-heals rather than surfacing it.
var ErrInconsistentState = errors.New("inconsistent ledger state")
