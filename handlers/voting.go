package handlers

import (
	"net/http"

	"watchparty/cliparse"
	"watchparty/ledger"
	"watchparty/middleware"
	"watchparty/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVotingHandler(l *ledger.Ledger, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: l, cfg: cfg}
}

// Vote handles POST /parties/{id}/votes
//
// A repeat vote by the same voter replaces their earlier choice; the
// final tally counts each voter once.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	partyID, ok := partyIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id must be a positive integer")
		return
	}

	voter, err := middleware.CallerAddress(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Wallet-Address header required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Movie == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movie is required")
		return
	}

	if err := h.ledger.Vote(partyID, voter, req.Movie); err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		PartyID: partyID,
		Movie:   req.Movie,
		Message: "Vote cast successfully",
	})
}
