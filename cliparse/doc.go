/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3721)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "postgres" (default) or "sqlite"
  - SettlementURL: Settlement gateway base URL (required)
  - SettlementTimeout: Timeout for transfer/mint calls (default: 10s)
  - ReceiptBaseURI: Base URI for receipt metadata

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	-s                 Settlement gateway URL
	-settlement-timeout Settlement call timeout (seconds)
	-receipt-base-uri  Receipt metadata base URI

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	SETTLEMENT_URL     → -s
	SETTLEMENT_TIMEOUT → -settlement-timeout
	RECEIPT_BASE_URI   → -receipt-base-uri

CLI flags take precedence over environment variables. main loads a .env
file (via godotenv) before parsing, so a local .env behaves like the
process environment.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SETTLEMENT_URL must be provided
*/
package cliparse
