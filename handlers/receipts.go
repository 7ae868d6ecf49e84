package handlers

import (
	"net/http"

	"watchparty/cliparse"
	"watchparty/ledger"
	"watchparty/middleware"
	"watchparty/models"
)

type ReceiptHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewReceiptHandler(l *ledger.Ledger, cfg cliparse.Config) *ReceiptHandler {
	return &ReceiptHandler{ledger: l, cfg: cfg}
}

// MintReceipt handles POST /receipts
//
// Minting is open to any valid identity; there is no one-per-party
// restriction.
func (h *ReceiptHandler) MintReceipt(w http.ResponseWriter, r *http.Request) {
	owner, err := middleware.CallerAddress(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Wallet-Address header required")
		return
	}

	receipt, err := h.ledger.MintReceipt(r.Context(), owner)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MintReceiptResponse{
		TokenID:     receipt.TokenID,
		MetadataURI: receipt.MetadataURI,
	})
}

// MyReceipts handles GET /receipts/mine
func (h *ReceiptHandler) MyReceipts(w http.ResponseWriter, r *http.Request) {
	owner, err := middleware.CallerAddress(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Wallet-Address header required")
		return
	}

	receipts, err := h.ledger.ReceiptsByOwner(owner)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, receipts)
}
