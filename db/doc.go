/*
Package db provides the database connection wrapper and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite,
pure Go). All queries are written with $1..$N placeholders; the wrapper
rebinds them to ?1..?N for SQLite so both dialects share one query body.

# Schema Creation

CreateSchema initializes all required tables for the active dialect:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - party: Party metadata and lifecycle flags (active, party_closed)
  - movie_option: The ordered movie slate per party
  - vote: One row per (party, voter); re-votes overwrite in place
  - reward_payout: Exactly-once payment records per (party, voter)
  - receipt: Commemorative tokens with monotonic token ids

# Relationships

	party 1──* movie_option
	party 1──* vote
	party 1──* reward_payout

All foreign keys use ON DELETE CASCADE. Receipts stand alone; they are
bound to an owner, not a party.
*/
package db
