/*
Package main provides the entry point for the watch-party API server.

Watchparty is a movie-night coordination service: a host opens a party
with a slate of movies, wallet-identified guests vote for one, the host
closes voting, and the service resolves the winner, pays token rewards
to the voters who picked it, and mints commemorative attendance
receipts.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SETTLEMENT_URL=http://... go run main.go

Or with flags:

	go run main.go -p 3721 -d "postgres://..." -s "http://localhost:8545"

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - SETTLEMENT_URL (-s): Settlement gateway base URL

Optional settings:

  - PORT (-p): Server port (default: 3721)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - SETTLEMENT_TIMEOUT (-settlement-timeout): Gateway call timeout
  - RECEIPT_BASE_URI (-receipt-base-uri): Base URI for receipt metadata

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (parties, voting, results, rewards, receipts)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, wallet identity
  - models: Request/response and domain types
  - ledger: Party store, voting, closure, winner resolution, rewards, receipts
  - settlement: HTTP client for the token transfer / mint gateway
  - auth: Wallet address validation
  - db: Dialect-aware database wrapper and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
