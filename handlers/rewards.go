package handlers

import (
	"net/http"

	"watchparty/cliparse"
	"watchparty/ledger"
	"watchparty/middleware"
	"watchparty/models"
)

type RewardsHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewRewardsHandler(l *ledger.Ledger, cfg cliparse.Config) *RewardsHandler {
	return &RewardsHandler{ledger: l, cfg: cfg}
}

// DistributeRewards handles POST /parties/{id}/rewards
//
// The response always carries the per-voter outcome list; a failed
// transfer for one voter shows up there rather than failing the whole
// request. Retrying with the same body settles only the remainder.
func (h *RewardsHandler) DistributeRewards(w http.ResponseWriter, r *http.Request) {
	partyID, ok := partyIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id must be a positive integer")
		return
	}

	requester, err := middleware.CallerAddress(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Wallet-Address header required")
		return
	}

	var req models.DistributeRewardsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcomes, err := h.ledger.DistributeRewards(r.Context(), partyID, req.AmountPerVoter, requester)
	if err != nil && len(outcomes) == 0 {
		writeLedgerError(w, err)
		return
	}

	// Even the everyone-failed case returns the outcome list; the
	// caller retries from it.
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	middleware.JSONResponse(w, status, models.DistributeRewardsResponse{
		PartyID:  partyID,
		Outcomes: outcomes,
	})
}
