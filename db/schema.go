package db

import "fmt"

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(d *DB) error {
	schema := schemaPostgres
	if d.dialect == DialectSQLite {
		schema = schemaSQLite
	}

	if _, err := d.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Parties
CREATE TABLE IF NOT EXISTS party (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    host TEXT NOT NULL,
    party_time BIGINT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    party_closed BOOLEAN NOT NULL DEFAULT FALSE,
    winning_movie TEXT,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_party_host ON party(host);

-- Movie slate, ordered by idx
CREATE TABLE IF NOT EXISTS movie_option (
    party_id BIGINT NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    idx INT NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (party_id, idx)
);

-- Votes: one row per (party, voter); re-votes overwrite movie
CREATE TABLE IF NOT EXISTS vote (
    party_id BIGINT NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    movie TEXT NOT NULL,
    cast_at BIGINT NOT NULL,
    PRIMARY KEY (party_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_vote_party_id ON vote(party_id);

-- Reward payouts: at most one row per (party, voter)
CREATE TABLE IF NOT EXISTS reward_payout (
    id TEXT PRIMARY KEY,
    party_id BIGINT NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    amount BIGINT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('pending', 'settled', 'failed')),
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    UNIQUE (party_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_reward_payout_party_id ON reward_payout(party_id);

-- Receipts: token ids are monotonic and never reused
CREATE TABLE IF NOT EXISTS receipt (
    token_id BIGSERIAL PRIMARY KEY,
    owner TEXT NOT NULL,
    metadata_uri TEXT NOT NULL,
    minted_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_receipt_owner ON receipt(owner);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS party (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    host TEXT NOT NULL,
    party_time INTEGER NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    party_closed BOOLEAN NOT NULL DEFAULT FALSE,
    winning_movie TEXT,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_party_host ON party(host);

CREATE TABLE IF NOT EXISTS movie_option (
    party_id INTEGER NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (party_id, idx)
);

CREATE TABLE IF NOT EXISTS vote (
    party_id INTEGER NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    movie TEXT NOT NULL,
    cast_at INTEGER NOT NULL,
    PRIMARY KEY (party_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_vote_party_id ON vote(party_id);

CREATE TABLE IF NOT EXISTS reward_payout (
    id TEXT PRIMARY KEY,
    party_id INTEGER NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    amount INTEGER NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('pending', 'settled', 'failed')),
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    UNIQUE (party_id, voter)
);

CREATE INDEX IF NOT EXISTS idx_reward_payout_party_id ON reward_payout(party_id);

-- AUTOINCREMENT prevents rowid reuse after deletes, which keeps token
-- ids unique for the lifetime of the ledger.
CREATE TABLE IF NOT EXISTS receipt (
    token_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner TEXT NOT NULL,
    metadata_uri TEXT NOT NULL,
    minted_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_receipt_owner ON receipt(owner);
`
