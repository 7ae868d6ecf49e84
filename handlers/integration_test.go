package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"watchparty/models"
	"watchparty/testutil"
)

// TestFullPartyWorkflow tests the complete end-to-end workflow:
// 1. Host creates a party
// 2. Guests vote (one changes their mind)
// 3. Host closes voting
// 4. Winner is resolved
// 5. Host distributes rewards to the winning voters
// 6. A voter mints a commemorative receipt
func TestFullPartyWorkflow(t *testing.T) {
	led, transfer, _, cfg := setupHandlerTest(t)
	partyHandler := NewPartyHandler(led, cfg)
	votingHandler := NewVotingHandler(led, cfg)
	resultsHandler := NewResultsHandler(led, cfg)
	rewardsHandler := NewRewardsHandler(led, cfg)
	receiptHandler := NewReceiptHandler(led, cfg)

	// Step 1: Create a party
	createReq := models.CreatePartyRequest{
		Title:        "Integration Test Night",
		PartyTime:    time.Now().Add(2 * time.Hour).Unix(),
		MovieOptions: []string{"Dune", "Arrival", "Blade Runner"},
	}
	req := testutil.MakeRequest("POST", "/parties", createReq, walletHeaders(testHost))
	w := httptest.NewRecorder()
	partyHandler.CreateParty(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create party failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreatePartyResponse
	testutil.AssertJSON(t, w, &createResp)
	partyID := createResp.PartyID
	idStr := strconv.FormatInt(partyID, 10)
	t.Logf("Step 1 - Created party: %d", partyID)

	// Step 2: Three guests vote; the third changes their mind
	votes := []struct {
		voter string
		movie string
	}{
		{testVoter1, "Dune"},
		{testVoter2, "Dune"},
		{testVoter3, "Blade Runner"},
		{testVoter3, "Arrival"},
	}
	for _, v := range votes {
		req := testutil.MakeRequest("POST", "/parties/"+idStr+"/votes",
			models.VoteRequest{Movie: v.movie}, walletHeaders(v.voter))
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		votingHandler.Vote(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Vote %s -> %s failed: %d - %s", v.voter, v.movie, w.Code, w.Body.String())
		}
	}

	// Step 3: Host closes voting
	req = testutil.MakeRequest("POST", "/parties/"+idStr+"/close", nil, walletHeaders(testHost))
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	partyHandler.CloseParty(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Close party failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 4: Resolve the winner
	req = testutil.MakeRequest("GET", "/parties/"+idStr+"/result", nil, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	resultsHandler.GetResult(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Get result failed: %d - %s", w.Code, w.Body.String())
	}
	var result models.ResolveResponse
	testutil.AssertJSON(t, w, &result)
	if result.WinningMovie != "Dune" || result.VoteCount != 2 {
		t.Fatalf("Step 4 - Expected Dune with 2 votes, got %s with %d", result.WinningMovie, result.VoteCount)
	}

	// Step 5: Distribute rewards
	req = testutil.MakeRequest("POST", "/parties/"+idStr+"/rewards",
		models.DistributeRewardsRequest{AmountPerVoter: 50}, walletHeaders(testHost))
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	rewardsHandler.DistributeRewards(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Distribute rewards failed: %d - %s", w.Code, w.Body.String())
	}
	var distResp models.DistributeRewardsResponse
	testutil.AssertJSON(t, w, &distResp)
	if len(distResp.Outcomes) != 2 {
		t.Fatalf("Step 5 - Expected 2 outcomes, got %d", len(distResp.Outcomes))
	}
	for _, o := range distResp.Outcomes {
		if o.Status != models.OutcomeSettled {
			t.Errorf("Step 5 - Expected %s settled, got %s", o.Voter, o.Status)
		}
	}
	if transfer.CallCount(testVoter3) != 0 {
		t.Errorf("Step 5 - Losing voter must not be paid, got %d transfers", transfer.CallCount(testVoter3))
	}

	// Step 6: A winning voter mints a receipt
	req = testutil.MakeRequest("POST", "/receipts", nil, walletHeaders(testVoter1))
	w = httptest.NewRecorder()
	receiptHandler.MintReceipt(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 6 - Mint receipt failed: %d - %s", w.Code, w.Body.String())
	}
	var mintResp models.MintReceiptResponse
	testutil.AssertJSON(t, w, &mintResp)
	if mintResp.TokenID <= 0 || mintResp.MetadataURI == "" {
		t.Fatalf("Step 6 - Bad receipt: %+v", mintResp)
	}

	t.Logf("Workflow complete: party %d, winner %s, receipt %d", partyID, result.WinningMovie, mintResp.TokenID)
}
