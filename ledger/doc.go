/*
Package ledger implements the watch-party ledger: the authoritative
state machine for party lifecycle, vote accounting, winner resolution,
and reward/receipt issuance.

# Components

Each component owns its tables and exposes the only path to them:

  - Store: party and vote records (create, read, vote upsert, closure)
  - VotingEngine: one vote per (party, voter), last vote wins
  - ClosureController: host-only open→closed transition
  - WinnerResolver: deterministic tally with slate-order tie-break
  - RewardDistributor: exactly-once payout per winning voter
  - ReceiptIssuer: commemorative tokens with monotonic ids
  - Ledger: the facade composing them

# Lifecycle

	create ── votes accumulate ── close ── resolve ── distribute/mint
	                (open)      (terminal)  (repeatable, cached)

Closing is terminal for voting. Resolution is a pure read and may be
repeated; the first call caches the winner on the party record.
Distribution and minting may be retried any number of times after
closure - idempotence, not a further terminal state, guards them.

# Failure semantics

State violations (unknown party, not open, not closed, wrong host,
off-slate movie, non-positive amount) are rejected synchronously with
no side effect. External-capability failures during distribution are
captured per voter and returned as data, never aborting the batch;
retrying the same call settles only the voters that still need it.

# External collaborators

The token-transfer and receipt-minting capabilities are consumed
through the TokenTransfer and ReceiptMinter interfaces and injected by
the caller; see the settlement package for the HTTP gateway adapter.
*/
package ledger
