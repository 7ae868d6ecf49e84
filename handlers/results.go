package handlers

import (
	"net/http"

	"watchparty/cliparse"
	"watchparty/ledger"
	"watchparty/middleware"
	"watchparty/models"
)

type ResultsHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewResultsHandler(l *ledger.Ledger, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ledger: l, cfg: cfg}
}

// GetResult handles GET /parties/{id}/result
//
// Results exist only for closed parties; an open party answers 409 so
// standings stay sealed until the host closes voting.
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	partyID, ok := partyIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id must be a positive integer")
		return
	}

	res, err := h.ledger.Resolve(partyID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResolveResponse{
		WinningMovie: res.WinningMovie,
		VoteCount:    res.VoteCount,
	})
}
