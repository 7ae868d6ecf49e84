package ledger

import (
	"context"
	"time"

	"watchparty/db"
	"watchparty/models"
)

// Ledger is the single entry point composing the party store, voting
// engine, closure controller, winner resolver, reward distributor, and
// receipt issuer. It performs no business logic of its own beyond
// routing calls to the owning component.
type Ledger struct {
	Store    *Store
	Voting   *VotingEngine
	Closure  *ClosureController
	Resolver *WinnerResolver
	Rewards  *RewardDistributor
	Receipts *ReceiptIssuer
}

// Options carries the external collaborators and tunables New needs.
type Options struct {
	Transfer          TokenTransfer
	Minter            ReceiptMinter
	SettlementTimeout time.Duration
	ReceiptBaseURI    string
}

func New(d *db.DB, opts Options) *Ledger {
	store := NewStore(d)
	resolver := NewWinnerResolver(store)
	return &Ledger{
		Store:    store,
		Voting:   NewVotingEngine(store),
		Closure:  NewClosureController(store),
		Resolver: resolver,
		Rewards:  NewRewardDistributor(d, store, resolver, opts.Transfer, opts.SettlementTimeout),
		Receipts: NewReceiptIssuer(d, opts.Minter, opts.ReceiptBaseURI, opts.SettlementTimeout),
	}
}

func (l *Ledger) CreateParty(title string, partyTime int64, movieOptions []string, host string) (int64, error) {
	return l.Store.CreateParty(title, partyTime, movieOptions, host)
}

func (l *Ledger) GetParty(partyID int64) (models.Party, error) {
	return l.Store.GetParty(partyID)
}

func (l *Ledger) ListParties() ([]models.Party, error) {
	return l.Store.ListParties()
}

func (l *Ledger) Vote(partyID int64, voter, movie string) error {
	return l.Voting.Vote(partyID, voter, movie)
}

func (l *Ledger) CloseParty(partyID int64, requester string) error {
	return l.Closure.CloseParty(partyID, requester)
}

func (l *Ledger) Resolve(partyID int64) (Resolution, error) {
	return l.Resolver.Resolve(partyID)
}

func (l *Ledger) DistributeRewards(ctx context.Context, partyID, amountPerVoter int64, requester string) ([]models.PayoutOutcome, error) {
	return l.Rewards.DistributeRewards(ctx, partyID, amountPerVoter, requester)
}

func (l *Ledger) MintReceipt(ctx context.Context, owner string) (models.Receipt, error) {
	return l.Receipts.MintReceipt(ctx, owner)
}

func (l *Ledger) ReceiptsByOwner(owner string) ([]models.Receipt, error) {
	return l.Receipts.ReceiptsByOwner(owner)
}
