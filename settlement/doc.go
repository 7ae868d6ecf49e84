/*
Package settlement adapts the external execution/settlement substrate.

The ledger's reward transfers and receipt mints go through a settlement
gateway over HTTP:

	POST {base}/transfers  {"to": ..., "amount": ...}
	POST {base}/mints      {"owner": ..., "metadata_uri": ..., "token_id": ...}

Client implements the ledger.TokenTransfer and ledger.ReceiptMinter
interfaces. Calls honor the caller's context and the configured
timeout; a timed-out call surfaces as an error so the corresponding
payout is marked failed and retried later, never left hanging.
*/
package settlement
