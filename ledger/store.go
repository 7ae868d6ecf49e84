package ledger

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"watchparty/db"
	"watchparty/models"
)

// Store owns the party and vote tables. It is the only component that
// mutates them; every other component reads parties and votes through
// its query methods.
type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// CreateParty validates the creation parameters, persists the party and
// its ordered slate atomically, and returns the new monotonic party id.
func (s *Store) CreateParty(title string, partyTime int64, movieOptions []string, host string) (int64, error) {
	if title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(movieOptions) == 0 {
		return 0, fmt.Errorf("%w: at least one movie option is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(movieOptions))
	for _, m := range movieOptions {
		if m == "" {
			return 0, fmt.Errorf("%w: movie options must be non-empty", ErrInvalidInput)
		}
		if seen[m] {
			return 0, fmt.Errorf("%w: duplicate movie option %q", ErrInvalidInput, m)
		}
		seen[m] = true
	}
	now := time.Now().Unix()
	if partyTime <= now {
		return 0, fmt.Errorf("%w: party time must be in the future", ErrInvalidInput)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var partyID int64
	err = tx.QueryRow(`
		INSERT INTO party (title, host, party_time, active, party_closed, created_at)
		VALUES ($1, $2, $3, TRUE, FALSE, $4)
		RETURNING id
	`, title, host, partyTime, now).Scan(&partyID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert party: %w", err)
	}

	for idx, label := range movieOptions {
		_, err = tx.Exec(`
			INSERT INTO movie_option (party_id, idx, label)
			VALUES ($1, $2, $3)
		`, partyID, idx, label)
		if err != nil {
			return 0, fmt.Errorf("failed to insert movie option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit party: %w", err)
	}

	slog.Info("party created", "party_id", partyID, "host", host, "options", len(movieOptions))
	return partyID, nil
}

// GetParty returns a single party with its slate.
func (s *Store) GetParty(partyID int64) (models.Party, error) {
	var p models.Party
	var winning sql.NullString
	err := s.db.QueryRow(`
		SELECT id, title, host, party_time, active, party_closed, winning_movie, created_at
		FROM party
		WHERE id = $1
	`, partyID).Scan(&p.ID, &p.Title, &p.Host, &p.PartyTime, &p.Active, &p.PartyClosed, &winning, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Party{}, ErrNotFound
	}
	if err != nil {
		return models.Party{}, fmt.Errorf("failed to query party: %w", err)
	}
	p.WinningMovie = winning.String

	p.MovieOptions, err = s.movieOptions(partyID)
	if err != nil {
		return models.Party{}, err
	}
	return p, nil
}

// ListParties returns every party ordered by id ascending.
func (s *Store) ListParties() ([]models.Party, error) {
	rows, err := s.db.Query(`
		SELECT id, title, host, party_time, active, party_closed, winning_movie, created_at
		FROM party
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		var p models.Party
		var winning sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Host, &p.PartyTime, &p.Active, &p.PartyClosed, &winning, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		p.WinningMovie = winning.String
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range parties {
		parties[i].MovieOptions, err = s.movieOptions(parties[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return parties, nil
}

// AppendVote records a voter's choice. The check that the party is open
// and the movie is on the slate happens inside one transaction with the
// write, so a vote can never land after a closure it observed as open.
// A repeat vote by the same voter overwrites their previous row.
func (s *Store) AppendVote(partyID int64, voter, movie string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var active, closed bool
	err = tx.QueryRow(`
		SELECT active, party_closed FROM party WHERE id = $1`+s.db.ForUpdate(),
		partyID).Scan(&active, &closed)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query party state: %w", err)
	}
	if closed || !active {
		return ErrPartyNotOpen
	}

	var onSlate bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM movie_option WHERE party_id = $1 AND label = $2
		)
	`, partyID, movie).Scan(&onSlate)
	if err != nil {
		return fmt.Errorf("failed to check slate: %w", err)
	}
	if !onSlate {
		return ErrInvalidOption
	}

	_, err = tx.Exec(`
		INSERT INTO vote (party_id, voter, movie, cast_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (party_id, voter) DO UPDATE
		SET movie = excluded.movie, cast_at = excluded.cast_at
	`, partyID, voter, movie, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	return tx.Commit()
}

// MarkClosed flips a party from open to closed in a single conditional
// update. Returns ErrAlreadyClosed when the transition already happened,
// so a caller can tell "my close landed" from "someone beat me to it".
func (s *Store) MarkClosed(partyID int64) error {
	res, err := s.db.Exec(`
		UPDATE party
		SET active = FALSE, party_closed = TRUE
		WHERE id = $1 AND active = TRUE AND party_closed = FALSE
	`, partyID)
	if err != nil {
		return fmt.Errorf("failed to close party: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read close result: %w", err)
	}
	if n == 1 {
		return nil
	}

	// No row transitioned: either unknown id or already closed.
	var closed bool
	err = s.db.QueryRow(`SELECT party_closed FROM party WHERE id = $1`, partyID).Scan(&closed)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query party state: %w", err)
	}
	return ErrAlreadyClosed
}

// SetWinningMovie caches the resolved winner on the party record.
func (s *Store) SetWinningMovie(partyID int64, movie string) error {
	res, err := s.db.Exec(`
		UPDATE party SET winning_movie = $1 WHERE id = $2
	`, movie, partyID)
	if err != nil {
		return fmt.Errorf("failed to set winning movie: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Votes returns the vote log for a party. Each voter appears at most
// once, holding their most recent choice.
func (s *Store) Votes(partyID int64) ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT party_id, voter, movie, cast_at
		FROM vote
		WHERE party_id = $1
		ORDER BY voter ASC
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.PartyID, &v.Voter, &v.Movie, &v.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (s *Store) movieOptions(partyID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT label FROM movie_option WHERE party_id = $1 ORDER BY idx ASC
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie options: %w", err)
	}
	defer rows.Close()

	options := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan movie option: %w", err)
		}
		options = append(options, label)
	}
	return options, rows.Err()
}
