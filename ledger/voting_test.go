package ledger

import (
	"errors"
	"testing"
)

func newVotingFixture(t *testing.T) (*Store, *VotingEngine, int64) {
	t.Helper()

	store := NewStore(newTestDB(t))
	engine := NewVotingEngine(store)
	partyID, err := store.CreateParty("Movie Night", futureTime(), []string{"Dune", "Arrival"}, testHost)
	if err != nil {
		t.Fatalf("CreateParty failed: %v", err)
	}
	return store, engine, partyID
}

func TestVote(t *testing.T) {
	store, engine, partyID := newVotingFixture(t)

	if err := engine.Vote(partyID, testVoter1, "Dune"); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	votes, err := store.Votes(partyID)
	if err != nil {
		t.Fatalf("Votes failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("Expected 1 vote, got %d", len(votes))
	}
	if votes[0].Voter != testVoter1 || votes[0].Movie != "Dune" {
		t.Errorf("Expected (%s, Dune), got (%s, %s)", testVoter1, votes[0].Voter, votes[0].Movie)
	}
}

func TestRevoteReplacesPriorChoice(t *testing.T) {
	store, engine, partyID := newVotingFixture(t)

	if err := engine.Vote(partyID, testVoter1, "Dune"); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}
	if err := engine.Vote(partyID, testVoter1, "Arrival"); err != nil {
		t.Fatalf("Re-vote failed: %v", err)
	}

	votes, err := store.Votes(partyID)
	if err != nil {
		t.Fatalf("Votes failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("Expected 1 vote after re-vote, got %d", len(votes))
	}
	if votes[0].Movie != "Arrival" {
		t.Errorf("Expected final choice Arrival, got %s", votes[0].Movie)
	}
}

func TestVoteErrors(t *testing.T) {
	store, engine, partyID := newVotingFixture(t)

	t.Run("unknown party", func(t *testing.T) {
		err := engine.Vote(999, testVoter1, "Dune")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("movie not on slate", func(t *testing.T) {
		err := engine.Vote(partyID, testVoter1, "Tenet")
		if !errors.Is(err, ErrInvalidOption) {
			t.Errorf("Expected ErrInvalidOption, got %v", err)
		}
	})

	t.Run("empty movie", func(t *testing.T) {
		err := engine.Vote(partyID, testVoter1, "")
		if !errors.Is(err, ErrInvalidOption) {
			t.Errorf("Expected ErrInvalidOption, got %v", err)
		}
	})

	t.Run("empty voter", func(t *testing.T) {
		err := engine.Vote(partyID, "", "Dune")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("closed party", func(t *testing.T) {
		if err := engine.Vote(partyID, testVoter1, "Dune"); err != nil {
			t.Fatalf("Vote failed: %v", err)
		}
		if err := store.MarkClosed(partyID); err != nil {
			t.Fatalf("MarkClosed failed: %v", err)
		}

		err := engine.Vote(partyID, testVoter2, "Dune")
		if !errors.Is(err, ErrPartyNotOpen) {
			t.Errorf("Expected ErrPartyNotOpen, got %v", err)
		}

		// The rejected vote must leave no trace
		votes, err := store.Votes(partyID)
		if err != nil {
			t.Fatalf("Votes failed: %v", err)
		}
		if len(votes) != 1 {
			t.Errorf("Expected vote log unchanged (1 vote), got %d", len(votes))
		}
	})
}
