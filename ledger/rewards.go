package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"watchparty/db"
	"watchparty/models"
)

// TokenTransfer is the external capability that moves reward tokens to
// a voter. Implementations must respect the context deadline.
type TokenTransfer interface {
	Transfer(ctx context.Context, to string, amount int64) error
}

const (
	// A pending payout older than this is treated as abandoned by a
	// crashed run and may be reclaimed by the next distribution call.
	pendingReclaimAfter = 5 * time.Minute

	defaultTransferConcurrency = 4
)

// RewardDistributor pays the reward amount to each winning voter
// exactly once. It owns the reward_payout table; payout state never
// leaks into the party or vote tables.
type RewardDistributor struct {
	db       *db.DB
	store    *Store
	resolver *WinnerResolver
	transfer TokenTransfer

	timeout     time.Duration
	concurrency int
}

func NewRewardDistributor(d *db.DB, store *Store, resolver *WinnerResolver, transfer TokenTransfer, timeout time.Duration) *RewardDistributor {
	return &RewardDistributor{
		db:          d,
		store:       store,
		resolver:    resolver,
		transfer:    transfer,
		timeout:     timeout,
		concurrency: defaultTransferConcurrency,
	}
}

// DistributeRewards pays amountPerVoter to every voter whose final vote
// matches the winning movie. The per-voter claim step is atomic, so a
// retry after a partial failure pays only the voters who were not
// settled; a voter is never paid twice. Individual transfer failures
// are reported in the outcome list, not raised - unless every voter's
// transfer fails, in which case ErrTransferFailed accompanies the list.
func (rd *RewardDistributor) DistributeRewards(ctx context.Context, partyID, amountPerVoter int64, requester string) ([]models.PayoutOutcome, error) {
	if amountPerVoter <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := rd.store.GetParty(partyID)
	if err != nil {
		return nil, err
	}
	if p.Host != requester {
		return nil, ErrUnauthorized
	}

	// Resolve enforces the closed precondition and is idempotent.
	res, err := rd.resolver.Resolve(partyID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]models.PayoutOutcome, len(res.Voters))
	sem := make(chan struct{}, rd.concurrency)
	var wg sync.WaitGroup

	for i, voter := range res.Voters {
		wg.Add(1)
		go func(i int, voter string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = rd.payVoter(ctx, partyID, voter, amountPerVoter)
		}(i, voter)
	}
	wg.Wait()

	slog.Info("rewards distributed",
		"party_id", partyID,
		"eligible", len(res.Voters),
		"amount_per_voter", amountPerVoter,
	)

	if len(outcomes) > 0 && allFailed(outcomes) {
		return outcomes, ErrTransferFailed
	}
	return outcomes, nil
}

// payVoter claims the payout row, performs the transfer, and records
// the result. Claiming is a single upsert: it succeeds only for a new
// payout, a previously failed one, or a pending one abandoned past the
// reclaim window. Two concurrent runs can therefore never both pay the
// same voter.
func (rd *RewardDistributor) payVoter(ctx context.Context, partyID int64, voter string, amount int64) models.PayoutOutcome {
	now := time.Now().Unix()
	staleBefore := time.Now().Add(-pendingReclaimAfter).Unix()

	var payoutID string
	err := rd.db.QueryRow(`
		INSERT INTO reward_payout (id, party_id, voter, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'pending', $5, $5)
		ON CONFLICT (party_id, voter) DO UPDATE
		SET status = 'pending', amount = excluded.amount, updated_at = excluded.updated_at
		WHERE reward_payout.status = 'failed'
		   OR (reward_payout.status = 'pending' AND reward_payout.updated_at <= $6)
		RETURNING id
	`, uuid.NewString(), partyID, voter, amount, now, staleBefore).Scan(&payoutID)

	if err == sql.ErrNoRows {
		// Claim refused: the row is settled, or another run holds it.
		var status string
		if qerr := rd.db.QueryRow(`
			SELECT status FROM reward_payout WHERE party_id = $1 AND voter = $2
		`, partyID, voter).Scan(&status); qerr == nil && status == models.PayoutSettled {
			return models.PayoutOutcome{Voter: voter, Status: models.OutcomeAlreadySettled}
		}
		return models.PayoutOutcome{Voter: voter, Status: models.OutcomeSkipped, Detail: "payout in progress"}
	}
	if err != nil {
		slog.Error("failed to claim payout", "party_id", partyID, "voter", voter, "error", err)
		return models.PayoutOutcome{Voter: voter, Status: models.OutcomeFailed, Detail: err.Error()}
	}

	tctx, cancel := context.WithTimeout(ctx, rd.timeout)
	defer cancel()

	if err := rd.transfer.Transfer(tctx, voter, amount); err != nil {
		rd.markPayout(payoutID, models.PayoutFailed)
		slog.Warn("reward transfer failed", "party_id", partyID, "voter", voter, "error", err)
		return models.PayoutOutcome{Voter: voter, Status: models.OutcomeFailed, Detail: err.Error()}
	}

	rd.markPayout(payoutID, models.PayoutSettled)
	return models.PayoutOutcome{Voter: voter, Status: models.OutcomeSettled}
}

func (rd *RewardDistributor) markPayout(payoutID, status string) {
	_, err := rd.db.Exec(`
		UPDATE reward_payout SET status = $1, updated_at = $2 WHERE id = $3
	`, status, time.Now().Unix(), payoutID)
	if err != nil {
		// The payout stays pending and becomes reclaimable after the
		// stale window; a later run will settle it.
		slog.Error("failed to update payout status", "payout_id", payoutID, "status", status, "error", err)
	}
}

// Payouts returns the payout records for a party, newest last.
func (rd *RewardDistributor) Payouts(partyID int64) ([]models.RewardPayout, error) {
	rows, err := rd.db.Query(`
		SELECT id, party_id, voter, amount, status, created_at, updated_at
		FROM reward_payout
		WHERE party_id = $1
		ORDER BY created_at ASC, voter ASC
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payouts: %w", err)
	}
	defer rows.Close()

	payouts := []models.RewardPayout{}
	for rows.Next() {
		var p models.RewardPayout
		if err := rows.Scan(&p.ID, &p.PartyID, &p.Voter, &p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func allFailed(outcomes []models.PayoutOutcome) bool {
	for _, o := range outcomes {
		if o.Status != models.OutcomeFailed {
			return false
		}
	}
	return true
}
