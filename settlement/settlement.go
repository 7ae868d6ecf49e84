package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the settlement gateway that executes token transfers
// and receipt mints on the underlying substrate. The ledger never
// signs or submits anything itself; it just asks the gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type transferRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type mintRequest struct {
	Owner       string `json:"owner"`
	MetadataURI string `json:"metadata_uri"`
	TokenID     int64  `json:"token_id"`
}

// Transfer sends amount (token base units) to a wallet address.
func (c *Client) Transfer(ctx context.Context, to string, amount int64) error {
	return c.post(ctx, "/transfers", transferRequest{To: to, Amount: amount})
}

// Mint records the receipt token on the settlement substrate.
func (c *Client) Mint(ctx context.Context, owner, metadataURI string, tokenID int64) error {
	return c.post(ctx, "/mints", mintRequest{Owner: owner, MetadataURI: metadataURI, TokenID: tokenID})
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode settlement request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build settlement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("settlement call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep the gateway's message; it names the on-substrate reason.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("settlement gateway returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
