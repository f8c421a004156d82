package core

import "errors"

// Errors returned by ledger operations. Callers match them with errors.Is;
// the wrapped message carries the offending value.
var (
	ErrFormat         = errors.New("invalid format")
	ErrNotPositive    = errors.New("amount must be greater than zero")
	ErrInvalidKind    = errors.New("invalid transaction type")
	ErrInvalidField   = errors.New("invalid field")
	ErrRange          = errors.New("index out of range")
	ErrIO             = errors.New("i/o error")
	ErrNoTransactions = errors.New("no transactions")
)
