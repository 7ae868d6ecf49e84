package ledger

import (
	"log/slog"
	"sort"
)

// Resolution is the outcome of tallying a closed party's vote log.
// Voters is the reward-eligible population: everyone whose final vote
// matches the winning movie.
type Resolution struct {
	WinningMovie string
	VoteCount    int
	Voters       []string
}

// WinnerResolver computes the winning option of a closed party. It is a
// pure read over the vote log: repeated calls on an unchanged party
// return identical results.
type WinnerResolver struct {
	store *Store
}

func NewWinnerResolver(store *Store) *WinnerResolver {
	return &WinnerResolver{store: store}
}

// Resolve tallies the party's votes and returns the winner, its count,
// and the voters who picked it. Ties break toward the movie appearing
// earliest in the slate, independent of vote arrival order. The first
// resolution persists the winner on the party record as a cache.
func (r *WinnerResolver) Resolve(partyID int64) (Resolution, error) {
	p, err := r.store.GetParty(partyID)
	if err != nil {
		return Resolution{}, err
	}
	if !p.PartyClosed {
		return Resolution{}, ErrPartyNotClosed
	}

	votes, err := r.store.Votes(partyID)
	if err != nil {
		return Resolution{}, err
	}

	// One row per voter by construction, so a plain count is already
	// the deduplicated tally.
	counts := make(map[string]int, len(p.MovieOptions))
	for _, v := range votes {
		counts[v.Movie]++
	}

	res := Resolution{}
	for _, movie := range p.MovieOptions {
		if res.WinningMovie == "" || counts[movie] > res.VoteCount {
			res.WinningMovie = movie
			res.VoteCount = counts[movie]
		}
	}

	for _, v := range votes {
		if v.Movie == res.WinningMovie {
			res.Voters = append(res.Voters, v.Voter)
		}
	}
	sort.Strings(res.Voters)

	if p.WinningMovie == "" {
		if err := r.store.SetWinningMovie(partyID, res.WinningMovie); err != nil {
			return Resolution{}, err
		}
		slog.Info("party resolved", "party_id", partyID, "winning_movie", res.WinningMovie, "vote_count", res.VoteCount)
	}

	return res, nil
}
