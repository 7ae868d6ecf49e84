package ledger

import (
	"fmt"
	"log/slog"
)

// VotingEngine validates and records a single vote per (party, voter).
// Re-voting replaces the voter's prior choice (last-vote-wins), so the
// tally always counts each voter exactly once.
type VotingEngine struct {
	store *Store
}

func NewVotingEngine(store *Store) *VotingEngine {
	return &VotingEngine{store: store}
}

// Vote records voter's choice of movie for the party. Fails with
// ErrNotFound, ErrPartyNotOpen, or ErrInvalidOption; no failure path
// leaves a side effect on the vote log.
func (e *VotingEngine) Vote(partyID int64, voter, movie string) error {
	if voter == "" {
		return fmt.Errorf("%w: voter identity is required", ErrInvalidInput)
	}
	if movie == "" {
		return ErrInvalidOption
	}

	if err := e.store.AppendVote(partyID, voter, movie); err != nil {
		return err
	}

	slog.Info("vote recorded", "party_id", partyID, "voter", voter, "movie", movie)
	return nil
}
