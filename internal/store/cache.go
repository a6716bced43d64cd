package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// CacheTTL is how long a cached requirement set stays valid. Job postings
// rarely change within a couple of days, so re-extraction is wasted work.
const CacheTTL = 48 * time.Hour

// JobTextHash returns the cache key for a cleaned job posting.
func JobTextHash(jobText string) string {
	sum := sha256.Sum256([]byte(jobText))
	return hex.EncodeToString(sum[:])
}

// GetCachedRequirements looks up a previously extracted requirement set by
// job-text hash. A nil result with nil error means a cache miss (including
// expired entries).
func (s *Store) GetCachedRequirements(ctx context.Context, jobTextHash string) (*types.RequirementSet, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT requirements FROM requirement_cache
		 WHERE job_text_hash = $1 AND created_at > NOW() - $2::interval`,
		jobTextHash, fmt.Sprintf("%d hours", int(CacheTTL.Hours())),
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached requirements: %w", err)
	}

	var reqs types.RequirementSet
	if err := json.Unmarshal(content, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode cached requirements: %w", err)
	}
	return &reqs, nil
}

// SaveCachedRequirements stores an extracted requirement set keyed by
// job-text hash, replacing any previous entry.
func (s *Store) SaveCachedRequirements(ctx context.Context, jobTextHash string, reqs *types.RequirementSet) error {
	content, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO requirement_cache (job_text_hash, requirements)
		 VALUES ($1, $2)
		 ON CONFLICT (job_text_hash) DO UPDATE SET requirements = $2, created_at = NOW()`,
		jobTextHash, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save cached requirements: %w", err)
	}
	return nil
}

// PruneExpiredRequirements removes cache entries past the TTL and returns
// how many were deleted.
func (s *Store) PruneExpiredRequirements(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx,
		`DELETE FROM requirement_cache WHERE created_at <= NOW() - $1::interval`,
		fmt.Sprintf("%d hours", int(CacheTTL.Hours())),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune requirement cache: %w", err)
	}
	return result.RowsAffected(), nil
}
