package router

import (
	"net/http"

	"watchparty/cliparse"
	"watchparty/handlers"
	"watchparty/ledger"
	"watchparty/middleware"
)

func NewRouter(led *ledger.Ledger, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	partyHandler := handlers.NewPartyHandler(led, cfg)
	votingHandler := handlers.NewVotingHandler(led, cfg)
	resultsHandler := handlers.NewResultsHandler(led, cfg)
	rewardsHandler := handlers.NewRewardsHandler(led, cfg)
	receiptHandler := handlers.NewReceiptHandler(led, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Party lifecycle
	mux.HandleFunc("POST /parties", middleware.WithLogging(partyHandler.CreateParty))
	mux.HandleFunc("GET /parties", middleware.WithLogging(partyHandler.ListParties))
	mux.HandleFunc("GET /parties/{id}", middleware.WithLogging(partyHandler.GetParty))
	mux.HandleFunc("POST /parties/{id}/close", middleware.WithLogging(partyHandler.CloseParty))

	// Voting
	mux.HandleFunc("POST /parties/{id}/votes", middleware.WithLogging(votingHandler.Vote))

	// Results and rewards (closed parties only)
	mux.HandleFunc("GET /parties/{id}/result", middleware.WithLogging(resultsHandler.GetResult))
	mux.HandleFunc("POST /parties/{id}/rewards", middleware.WithLogging(rewardsHandler.DistributeRewards))

	// Receipts
	mux.HandleFunc("POST /receipts", middleware.WithLogging(receiptHandler.MintReceipt))
	mux.HandleFunc("GET /receipts/mine", middleware.WithLogging(receiptHandler.MyReceipts))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("watchparty API v1"))
	})

	return mux
}
