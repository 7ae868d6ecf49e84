package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"watchparty/cliparse"
	"watchparty/db"
	"watchparty/ledger"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	d, err := db.Open(db.DialectSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(d); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return d
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3721,
		DatabaseURL:       ":memory:",
		DatabaseType:      db.DialectSQLite,
		SettlementURL:     "http://localhost:9", // unreachable, tests use fakes
		SettlementTimeout: time.Second,
		ReceiptBaseURI:    "ipfs://test/receipts",
	}
}

// FakeTransfer records transfer calls and fails addresses listed in FailFor.
type FakeTransfer struct {
	mu      sync.Mutex
	FailFor map[string]bool
	Calls   map[string]int
}

func NewFakeTransfer() *FakeTransfer {
	return &FakeTransfer{FailFor: make(map[string]bool), Calls: make(map[string]int)}
}

func (f *FakeTransfer) Transfer(ctx context.Context, to string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[to]++
	if f.FailFor[to] {
		return fmt.Errorf("transfer rejected for %s", to)
	}
	return nil
}

// CallCount returns how many times a transfer was attempted for an address.
func (f *FakeTransfer) CallCount(to string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[to]
}

// FakeMinter records mint calls and fails when Fail is set.
type FakeMinter struct {
	mu    sync.Mutex
	Fail  bool
	Calls int
}

func (f *FakeMinter) Mint(ctx context.Context, owner, metadataURI string, tokenID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.Fail {
		return fmt.Errorf("mint rejected for %s", owner)
	}
	return nil
}

// NewTestLedger wires a ledger over the given database with fake
// settlement collaborators.
func NewTestLedger(t *testing.T, d *db.DB) (*ledger.Ledger, *FakeTransfer, *FakeMinter) {
	t.Helper()

	transfer := NewFakeTransfer()
	minter := &FakeMinter{}
	led := ledger.New(d, ledger.Options{
		Transfer:          transfer,
		Minter:            minter,
		SettlementTimeout: time.Second,
		ReceiptBaseURI:    "ipfs://test/receipts",
	})
	return led, transfer, minter
}

// CreateTestParty creates a party via the store and returns its ID
func CreateTestParty(t *testing.T, led *ledger.Ledger, host string, movies ...string) int64 {
	t.Helper()

	if len(movies) == 0 {
		movies = []string{"Dune", "Arrival"}
	}
	partyID, err := led.CreateParty("Test Party", time.Now().Add(time.Hour).Unix(), movies, host)
	if err != nil {
		t.Fatalf("Failed to create test party: %v", err)
	}
	return partyID
}

// CastTestVote records a vote, failing the test on error
func CastTestVote(t *testing.T, led *ledger.Ledger, partyID int64, voter, movie string) {
	t.Helper()

	if err := led.Vote(partyID, voter, movie); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
