package handlers

import (
	"net/http"
	"time"

	"watchparty/cliparse"
	"watchparty/ledger"
	"watchparty/middleware"
	"watchparty/models"
)

type PartyHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewPartyHandler(l *ledger.Ledger, cfg cliparse.Config) *PartyHandler {
	return &PartyHandler{ledger: l, cfg: cfg}
}

// CreateParty handles POST /parties
func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	host, err := middleware.CallerAddress(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Wallet-Address header required")
		return
	}

	var req models.CreatePartyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	partyID, err := h.ledger.CreateParty(req.Title, req.PartyTime, req.MovieOptions, host)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePartyResponse{
		PartyID: partyID,
	})
}

// ListParties handles GET /parties
func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.ledger.ListParties()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, parties)
}

// GetParty handles GET /parties/{id}
func (h *PartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	partyID, ok := partyIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id must be a positive integer")
		return
	}

	party, err := h.ledger.GetParty(partyID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, party)
}

// CloseParty handles POST /parties/{id}/close
func (h *PartyHandler) CloseParty(w http.ResponseWriter, r *http.Request) {
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

	if err := h.ledger.CloseParty(partyID, requester); err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ClosePartyResponse{
		PartyID:  partyID,
		ClosedAt: time.Now().Unix(),
	})
}
