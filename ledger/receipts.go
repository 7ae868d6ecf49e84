package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchparty/db"
	"watchparty/models"
)

// ReceiptMinter is the external capability that mints the commemorative
// token on the settlement substrate. The ledger allocates the token id;
// the minter makes it real.
type ReceiptMinter interface {
	Mint(ctx context.Context, owner, metadataURI string, tokenID int64) error
}

// ReceiptIssuer mints one commemorative receipt per request. Minting is
// intentionally open: any valid identity may claim a receipt, and token
// ids are monotonic and never reused.
type ReceiptIssuer struct {
	db      *db.DB
	minter  ReceiptMinter
	baseURI string
	timeout time.Duration
}

func NewReceiptIssuer(d *db.DB, minter ReceiptMinter, baseURI string, timeout time.Duration) *ReceiptIssuer {
	return &ReceiptIssuer{db: d, minter: minter, baseURI: baseURI, timeout: timeout}
}

// MintReceipt allocates the next token id for owner, asks the external
// capability to mint it, and returns the receipt. If the external mint
// fails the ledger row is removed and ErrMintFailed returned; the
// allocated token id is burned, never reissued.
func (ri *ReceiptIssuer) MintReceipt(ctx context.Context, owner string) (models.Receipt, error) {
	mintedAt := time.Now().Unix()

	var tokenID int64
	err := ri.db.QueryRow(`
		INSERT INTO receipt (owner, metadata_uri, minted_at)
		VALUES ($1, '', $2)
		RETURNING token_id
	`, owner, mintedAt).Scan(&tokenID)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to allocate token id: %w", err)
	}

	metadataURI := fmt.Sprintf("%s/%d", ri.baseURI, tokenID)
	_, err = ri.db.Exec(`
		UPDATE receipt SET metadata_uri = $1 WHERE token_id = $2
	`, metadataURI, tokenID)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to set metadata uri: %w", err)
	}

	mctx, cancel := context.WithTimeout(ctx, ri.timeout)
	defer cancel()

	if err := ri.minter.Mint(mctx, owner, metadataURI, tokenID); err != nil {
		if _, derr := ri.db.Exec(`DELETE FROM receipt WHERE token_id = $1`, tokenID); derr != nil {
			slog.Error("failed to discard unminted receipt", "token_id", tokenID, "error", derr)
		}
		slog.Warn("receipt mint failed", "owner", owner, "token_id", tokenID, "error", err)
		return models.Receipt{}, fmt.Errorf("%w: %v", ErrMintFailed, err)
	}

	slog.Info("receipt minted", "owner", owner, "token_id", tokenID)
	return models.Receipt{
		TokenID:     tokenID,
		Owner:       owner,
		MetadataURI: metadataURI,
		MintedAt:    mintedAt,
	}, nil
}

// ReceiptsByOwner lists the receipts held by owner, oldest first.
func (ri *ReceiptIssuer) ReceiptsByOwner(owner string) ([]models.Receipt, error) {
	rows, err := ri.db.Query(`
		SELECT token_id, owner, metadata_uri, minted_at
		FROM receipt
		WHERE owner = $1
		ORDER BY token_id ASC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		var r models.Receipt
		if err := rows.Scan(&r.TokenID, &r.Owner, &r.MetadataURI, &r.MintedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}
