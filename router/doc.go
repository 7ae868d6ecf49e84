/*
Package router defines HTTP routes for the watch-party API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(led, cfg)

# Endpoints

Health:

	GET /health

Party lifecycle (host operations require X-Wallet-Address):

	POST /parties             - Create party
	GET  /parties             - List parties
	GET  /parties/{id}        - Get party details
	POST /parties/{id}/close  - Close voting (host only)

Voting:

	POST /parties/{id}/votes - Cast or replace a vote

Results and rewards (closed parties only):

	GET  /parties/{id}/result  - Winning movie and vote count
	POST /parties/{id}/rewards - Distribute rewards to winning voters (host only)

Receipts:

	POST /receipts      - Mint a commemorative receipt
	GET  /receipts/mine - List the caller's receipts

# Handler Initialization

The router creates handler instances with dependency injection:

	partyHandler := handlers.NewPartyHandler(led, cfg)
	votingHandler := handlers.NewVotingHandler(led, cfg)
	resultsHandler := handlers.NewResultsHandler(led, cfg)
	rewardsHandler := handlers.NewRewardsHandler(led, cfg)
	receiptHandler := handlers.NewReceiptHandler(led, cfg)

All handlers receive the ledger facade and configuration.
*/
package router
