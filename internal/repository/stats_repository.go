package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FilterHit is an aggregate dispatch count for one keyword.
type FilterHit struct {
	ConversationID string `json:"conversation_id"`
	Keyword        string `json:"keyword"`
	Hits           int64  `json:"hits"`
}

// StatsRepository tracks how often each filter fires.
type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// IncrementHit bumps the dispatch counter for a filter.
func (r *StatsRepository) IncrementHit(ctx context.Context, conversationID, keyword string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO filter_hits (conversation_id, keyword, hits)
		VALUES ($1, $2, 1)
		ON CONFLICT (conversation_id, keyword)
		DO UPDATE SET hits = filter_hits.hits + 1
	`, conversationID, keyword)
	return err
}

// TopFilters returns the most-fired filters in a conversation.
func (r *StatsRepository) TopFilters(ctx context.Context, conversationID string, limit int) ([]FilterHit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT conversation_id, keyword, hits
		FROM filter_hits
		WHERE conversation_id = $1
		ORDER BY hits DESC, keyword
		LIMIT $2
	`, conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []FilterHit{}
	for rows.Next() {
		var h FilterHit
		if err := rows.Scan(&h.ConversationID, &h.Keyword, &h.Hits); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
