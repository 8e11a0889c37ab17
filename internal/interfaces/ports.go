package interfaces

import (
	"context"

	"filterbot/internal/entities"
)

// FilterStore is the persistence capability for filters, keyed by
// (conversation_id, keyword). Upsert replaces any existing record for the
// key atomically. ScanByConversation returns records in insertion order.
type FilterStore interface {
	Upsert(ctx context.Context, f *entities.Filter) error
	Delete(ctx context.Context, conversationID, keyword string) (int64, error)
	ScanByConversation(ctx context.Context, conversationID string) ([]entities.Filter, error)
}

// Transport sends a dispatch payload into a conversation.
type Transport interface {
	SendDispatch(conversationID string, replyTo int, d *entities.Dispatch) error
	SendText(conversationID, text string) error
}
