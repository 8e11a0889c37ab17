package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"filterbot/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FilterRepository persists filters in Postgres, one row per
// (conversation_id, keyword). Buttons are stored as a JSONB array.
type FilterRepository struct {
	db *pgxpool.Pool
}

func NewFilterRepository(db *pgxpool.Pool) *FilterRepository {
	return &FilterRepository{db: db}
}

// Upsert inserts or atomically replaces the filter for its key.
func (r *FilterRepository) Upsert(ctx context.Context, f *entities.Filter) error {
	f.Normalize()

	buttons, err := json.Marshal(f.Buttons)
	if err != nil {
		return fmt.Errorf("marshal buttons: %w", err)
	}

	var kind, fileID *string
	if f.Media != nil {
		k := string(f.Media.Kind)
		kind = &k
		fileID = &f.Media.FileID
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO filters (conversation_id, keyword, text, media_kind, file_id, caption, buttons, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (conversation_id, keyword) DO UPDATE
		SET text = EXCLUDED.text,
		    media_kind = EXCLUDED.media_kind,
		    file_id = EXCLUDED.file_id,
		    caption = EXCLUDED.caption,
		    buttons = EXCLUDED.buttons
	`, f.ConversationID, f.Keyword, f.Text, kind, fileID, f.Caption, buttons)
	if err != nil {
		return fmt.Errorf("upsert filter: %w", err)
	}
	return nil
}

// Delete removes the filter for the key and reports how many rows went away.
func (r *FilterRepository) Delete(ctx context.Context, conversationID, keyword string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM filters WHERE conversation_id = $1 AND keyword = $2",
		conversationID, keyword)
	if err != nil {
		return 0, fmt.Errorf("delete filter: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ScanByConversation returns all filters for a conversation in insertion
// order. Insertion order is the pinned tie-break so matching is
// deterministic across calls.
func (r *FilterRepository) ScanByConversation(ctx context.Context, conversationID string) ([]entities.Filter, error) {
	rows, err := r.db.Query(ctx, `
		SELECT conversation_id, keyword, text, media_kind, file_id, caption, buttons, created_at
		FROM filters
		WHERE conversation_id = $1
		ORDER BY created_at, id
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFilters(rows)
}

func scanFilters(rows pgx.Rows) ([]entities.Filter, error) {
	filters := []entities.Filter{}
	for rows.Next() {
		var f entities.Filter
		var kind, fileID *string
		var buttons []byte

		if err := rows.Scan(&f.ConversationID, &f.Keyword, &f.Text, &kind, &fileID, &f.Caption, &buttons, &f.CreatedAt); err != nil {
			return nil, err
		}
		if kind != nil && fileID != nil {
			f.Media = &entities.Media{Kind: entities.MediaKind(*kind), FileID: *fileID}
		}
		if len(buttons) > 0 {
			if err := json.Unmarshal(buttons, &f.Buttons); err != nil {
				return nil, fmt.Errorf("unmarshal buttons for %q: %w", f.Keyword, err)
			}
		}
		if f.Buttons == nil {
			f.Buttons = []entities.Button{}
		}
		filters = append(filters, f)
	}
	return filters, rows.Err()
}
