package models

// Payout status constants
const (
	PayoutPending = "pending"
	PayoutSettled = "settled"
	PayoutFailed  = "failed"
)

// Per-voter distribution outcome constants
const (
	OutcomeSettled        = "settled"
	OutcomeFailed         = "failed"
	OutcomeAlreadySettled = "already_settled"
	OutcomeSkipped        = "skipped"
)

// Request types

type CreatePartyRequest struct {
	Title        string   `json:"title"`
	PartyTime    int64    `json:"party_time"` // epoch seconds, must be in the future
	MovieOptions []string `json:"movie_options"`
}

type VoteRequest struct {
	Movie string `json:"movie"`
}

type DistributeRewardsRequest struct {
	AmountPerVoter int64 `json:"amount_per_voter"` // token base units
}

// Response types

type CreatePartyResponse struct {
	PartyID int64 `json:"party_id"`
}

type VoteResponse struct {
	PartyID int64  `json:"party_id"`
	Movie   string `json:"movie"`
	Message string `json:"message"`
}

type ClosePartyResponse struct {
	PartyID  int64 `json:"party_id"`
	ClosedAt int64 `json:"closed_at"`
}

type ResolveResponse struct {
	WinningMovie string `json:"winning_movie"`
	VoteCount    int    `json:"vote_count"`
}

type DistributeRewardsResponse struct {
	PartyID  int64           `json:"party_id"`
	Outcomes []PayoutOutcome `json:"outcomes"`
}

type MintReceiptResponse struct {
	TokenID     int64  `json:"token_id"`
	MetadataURI string `json:"metadata_uri"`
}

// Domain types

type Party struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Host         string   `json:"host"`
	PartyTime    int64    `json:"party_time"`
	MovieOptions []string `json:"movie_options"`
	Active       bool     `json:"active"`
	PartyClosed  bool     `json:"party_closed"`
	WinningMovie string   `json:"winning_movie,omitempty"`
	CreatedAt    int64    `json:"created_at"`
}

type Vote struct {
	PartyID int64  `json:"party_id"`
	Voter   string `json:"voter"`
	Movie   string `json:"movie"`
	CastAt  int64  `json:"cast_at"`
}

type RewardPayout struct {
	ID        string `json:"id"`
	PartyID   int64  `json:"party_id"`
	Voter     string `json:"voter"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// PayoutOutcome reports what happened to a single voter during a
// distribution run. Failed outcomes carry the transfer error in Detail
// so the caller can retry just that subset.
type PayoutOutcome struct {
	Voter  string `json:"voter"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type Receipt struct {
	TokenID     int64  `json:"token_id"`
	Owner       string `json:"owner"`
	MetadataURI string `json:"metadata_uri"`
	MintedAt    int64  `json:"minted_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
