package usecases

import (
	"context"
	"fmt"
	"strings"

	"filterbot/internal/entities"
	"filterbot/internal/interfaces"
)

// FilterMatchingEngine scans incoming text against a conversation's saved
// filters. Matching is substring-based and case-insensitive; the first
// record in store order wins and scanning stops there.
type FilterMatchingEngine struct {
	store interfaces.FilterStore
}

func NewFilterMatchingEngine(store interfaces.FilterStore) *FilterMatchingEngine {
	return &FilterMatchingEngine{store: store}
}

// Match returns the first filter whose keyword occurs in the incoming text,
// or nil when nothing matches. A store failure is returned for the caller
// to log and skip; it must never take down the update loop.
func (e *FilterMatchingEngine) Match(ctx context.Context, conversationID, incomingText string) (*entities.Filter, error) {
	text := strings.ToLower(incomingText)

	records, err := e.store.ScanByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("scan filters for %s: %w", conversationID, err)
	}

	for i := range records {
		if strings.Contains(text, records[i].Keyword) {
			return &records[i], nil
		}
	}
	return nil, nil
}
