package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrStatementNotLoaded     = errors.New("statement not loaded")
	ErrUnknownMessage         = errors.New("unknown message type")
)
