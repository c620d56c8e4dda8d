package cache

import (
	"birth-chart-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache mapping place-search queries to their candidate
// lists. Query keys are stored as-is; callers decide normalization.
type SqlitePlaceCache struct {
	DB *sql.DB
}

func NewSqlitePlaceCache(db *sql.DB) *SqlitePlaceCache {
	return &SqlitePlaceCache{DB: db}
}

// Fetch cached candidates for the given query.
func (s *SqlitePlaceCache) Get(ctx context.Context, query string) ([]domain.PlaceCandidate, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("place cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false, nil
	}

	var payload []byte
	row := s.DB.QueryRowContext(ctx, `
	SELECT payload
	FROM place_cache
	WHERE query = ?;
	`, query)

	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get place cache: query place_cache table: %w", err)
	}

	candidates, err := decodeCandidates(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get place cache: %w", err)
	}

	return candidates, true, nil
}

// Store the candidate list for a query.
func (s *SqlitePlaceCache) Put(ctx context.Context, query string, candidates []domain.PlaceCandidate) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert place cache: empty query key")
	}

	payload, err := encodeCandidates(candidates)
	if err != nil {
		return fmt.Errorf("insert place cache: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO place_cache (
	    query,
	    payload
	)
	VALUES (?, ?);
	`, query, string(payload)); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}

	return nil
}
