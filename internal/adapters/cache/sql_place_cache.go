package cache

import (
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLPlaceCache is a Postgres-backed cache mapping place-search queries
// to their candidate lists.
type SQLPlaceCache struct {
	DB *sql.DB
}

func NewSQLPlaceCache(db *sql.DB) *SQLPlaceCache {
	return &SQLPlaceCache{DB: db}
}

// Fetch cached candidates for the given query.
func (s *SQLPlaceCache) Get(ctx context.Context, query string) (_ []domain.PlaceCandidate, _ bool, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

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
	WHERE query = $1;
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
func (s *SQLPlaceCache) Put(ctx context.Context, query string, candidates []domain.PlaceCandidate) (err error) {
	defer obs.Time(ctx, "place.cache.Put")(&err)

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
	INSERT INTO place_cache (query, payload)
	VALUES ($1, $2)
	ON CONFLICT (query) DO UPDATE
	SET payload = EXCLUDED.payload;
	`, query, string(payload)); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}

	return nil
}
