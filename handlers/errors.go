package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"watchparty/ledger"
	"watchparty/middleware"
)

// writeLedgerError translates the ledger's error taxonomy into HTTP
// statuses. Anything unrecognized is a server-side failure and is
// logged rather than leaked to the client.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput),
		errors.Is(err, ledger.ErrInvalidOption),
		errors.Is(err, ledger.ErrInvalidAmount):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Party not found")
	case errors.Is(err, ledger.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrPartyNotOpen),
		errors.Is(err, ledger.ErrAlreadyClosed),
		errors.Is(err, ledger.ErrPartyNotClosed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrMintFailed),
		errors.Is(err, ledger.ErrTransferFailed):
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
	default:
		slog.Error("ledger operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// partyIDFromPath parses the {id} path segment.
func partyIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
