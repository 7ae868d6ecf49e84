/*
Package handlers contains HTTP request handlers for the watch-party API.

# Handler Types

Each handler is a struct with ledger and config dependencies:

  - PartyHandler: Party lifecycle (create, list, get, close)
  - VotingHandler: Vote casting
  - ResultsHandler: Winner resolution
  - RewardsHandler: Reward distribution to winning voters
  - ReceiptHandler: Commemorative receipt minting and listing

Handlers are created via constructor functions that accept the ledger
facade and Config:

	partyHandler := handlers.NewPartyHandler(led, cfg)

They contain no business logic: they parse input, resolve the caller's
wallet address, call the ledger, and translate its error taxonomy to
HTTP statuses (see errors.go).

# Party Lifecycle

Parties progress from open to closed; closing is host-only:

	POST /parties              → CreateParty
	GET  /parties              → ListParties
	GET  /parties/{id}         → GetParty
	POST /parties/{id}/votes   → Vote (open parties only)
	POST /parties/{id}/close   → CloseParty (host only)
	GET  /parties/{id}/result  → GetResult (closed parties only)
	POST /parties/{id}/rewards → DistributeRewards (host only)

# Receipts

	POST /receipts      → MintReceipt
	GET  /receipts/mine → MyReceipts

All operations identify the caller via the X-Wallet-Address header.
*/
package handlers
