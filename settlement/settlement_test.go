package settlement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTransfer(t *testing.T) {
	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transfers" {
			t.Errorf("Expected path /transfers, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	err := client.Transfer(context.Background(), "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.To != "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("Expected recipient address, got %q", got.To)
	}
	if got.Amount != 10 {
		t.Errorf("Expected amount 10, got %d", got.Amount)
	}
}

func TestMint(t *testing.T) {
	var got mintRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mints" {
			t.Errorf("Expected path /mints, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	err := client.Mint(context.Background(), "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "ipfs://receipts/7", 7)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.TokenID != 7 {
		t.Errorf("Expected token id 7, got %d", got.TokenID)
	}
	if got.MetadataURI != "ipfs://receipts/7" {
		t.Errorf("Expected metadata uri, got %q", got.MetadataURI)
	}
}

func TestGatewayErrorSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient balance", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	err := client.Transfer(context.Background(), "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 10)
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "insufficient balance") {
		t.Errorf("Expected gateway message in error, got %q", err)
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("Expected status code in error, got %q", err)
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := New(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Transfer(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 10)
	if err == nil {
		t.Fatal("Expected error when context times out")
	}
}
