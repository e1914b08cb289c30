package errors

import (
	"errors"

	"omni/jsonx"
)

// LedgerErrorCode represents standardized error codes for ledger operations
type LedgerErrorCode string

const (
	// General errors
	ErrCodeInternal LedgerErrorCode = "internal_error"

	// Authorization errors
	ErrCodeUnauthorized LedgerErrorCode = "unauthorized"

	// Supply errors
	ErrCodeCapExceeded         LedgerErrorCode = "cap_exceeded"
	ErrCodeInsufficientBalance LedgerErrorCode = "insufficient_balance"
	ErrCodeOverflow            LedgerErrorCode = "overflow"
	ErrCodeInvalidAmount       LedgerErrorCode = "invalid_amount"

	// Lifecycle errors
	ErrCodeSystemPaused       LedgerErrorCode = "system_paused"
	ErrCodeAlreadyPaused      LedgerErrorCode = "already_paused"
	ErrCodeNotPaused          LedgerErrorCode = "not_paused"
	ErrCodeAlreadyInitialized LedgerErrorCode = "already_initialized"

	// Cross-chain errors
	ErrCodeUnknownPeer LedgerErrorCode = "unknown_peer"
	ErrCodeFeeNotPaid  LedgerErrorCode = "fee_not_paid"
)

// LedgerError represents a standardized ledger error
type LedgerError struct {
	Code    LedgerErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	out, _ := jsonx.Marshal(LedgerError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(out)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgUnauthorized        = "Caller lacks the required role or ownership"
	ErrMsgCapExceeded         = "Mint would exceed the configured max supply"
	ErrMsgInsufficientBalance = "Not enough balance for this operation"
	ErrMsgOverflow            = "Amount exceeds the representable range"
	ErrMsgInvalidAmount       = "Amount is invalid"
	ErrMsgSystemPaused        = "Ledger is paused"
	ErrMsgAlreadyPaused       = "Ledger is already paused"
	ErrMsgNotPaused           = "Ledger is not paused"
	ErrMsgAlreadyInitialized  = "Ledger has already been initialized"
	ErrMsgUnknownPeer         = "Origin domain is not a configured peer"
	ErrMsgFeeNotPaid          = "Transport fee was not covered"
	ErrMsgInternal            = "Server error, please try again"
)

// NewError creates a new LedgerError and returns it as error interface
func NewError(code LedgerErrorCode, message string) error {
	return &LedgerError{
		Code:    code,
		Message: message,
	}
}

func ErrUnauthorized() error        { return NewError(ErrCodeUnauthorized, ErrMsgUnauthorized) }
func ErrCapExceeded() error         { return NewError(ErrCodeCapExceeded, ErrMsgCapExceeded) }
func ErrInsufficientBalance() error { return NewError(ErrCodeInsufficientBalance, ErrMsgInsufficientBalance) }
func ErrOverflow() error            { return NewError(ErrCodeOverflow, ErrMsgOverflow) }
func ErrSystemPaused() error        { return NewError(ErrCodeSystemPaused, ErrMsgSystemPaused) }
func ErrAlreadyPaused() error       { return NewError(ErrCodeAlreadyPaused, ErrMsgAlreadyPaused) }
func ErrNotPaused() error           { return NewError(ErrCodeNotPaused, ErrMsgNotPaused) }
func ErrAlreadyInitialized() error  { return NewError(ErrCodeAlreadyInitialized, ErrMsgAlreadyInitialized) }
func ErrUnknownPeer() error         { return NewError(ErrCodeUnknownPeer, ErrMsgUnknownPeer) }
func ErrFeeNotPaid() error          { return NewError(ErrCodeFeeNotPaid, ErrMsgFeeNotPaid) }

// CodeOf extracts the taxonomy code from err, or ErrCodeInternal for plain errors
func CodeOf(err error) LedgerErrorCode {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given taxonomy code
func HasCode(err error, code LedgerErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
