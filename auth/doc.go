/*
Package auth validates caller identity.

Callers identify themselves with a wallet address carried in the
X-Wallet-Address header. Addresses are validated and lowercased once at
the boundary so every downstream comparison (host checks, voter
dedup, receipt ownership) is a plain string equality:

	addr, err := auth.NormalizeAddress(r.Header.Get("X-Wallet-Address"))
	if err != nil {
		// 401
	}

Signature verification is the identity provider's concern, not the
ledger's; this package only enforces the address format contract.
*/
package auth
