package ledger

import "errors"

// Error taxonomy for the ledger. Handlers discriminate with errors.Is
// and translate to HTTP statuses; nothing here is fatal to the ledger
// itself - every failure is recoverable by retrying the same call.
var (
	ErrInvalidInput   = errors.New("invalid party input")
	ErrNotFound       = errors.New("party not found")
	ErrUnauthorized   = errors.New("only the host may perform this action")
	ErrPartyNotOpen   = errors.New("party is not open for voting")
	ErrPartyNotClosed = errors.New("party is not closed yet")
	ErrAlreadyClosed  = errors.New("party is already closed")
	ErrInvalidOption  = errors.New("movie is not on the party slate")
	ErrInvalidAmount  = errors.New("reward amount must be positive")
	ErrTransferFailed = errors.New("token transfer failed for every voter")
	ErrMintFailed     = errors.New("receipt mint failed")
)
