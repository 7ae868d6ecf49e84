package ledger

import "log/slog"

// ClosureController transitions a party from open to closed. Closing is
// terminal for voting; deactivating and closing are one transition.
type ClosureController struct {
	store *Store
}

func NewClosureController(store *Store) *ClosureController {
	return &ClosureController{store: store}
}

// CloseParty closes the party on behalf of requester. Only the host may
// close. A second close fails with ErrAlreadyClosed rather than
// silently succeeding.
func (c *ClosureController) CloseParty(partyID int64, requester string) error {
	p, err := c.store.GetParty(partyID)
	if err != nil {
		return err
	}
	if p.Host != requester {
		return ErrUnauthorized
	}

	// MarkClosed re-checks state conditionally, so a racing close still
	// resolves to exactly one winner of the transition.
	if err := c.store.MarkClosed(partyID); err != nil {
		return err
	}

	slog.Info("party closed", "party_id", partyID, "host", requester)
	return nil
}
