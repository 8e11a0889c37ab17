package usecases

import (
	"context"
	"fmt"
	"strings"

	"filterbot/internal/entities"
	"filterbot/internal/interfaces"
)

// FilterAuthoringService builds filter records from a replied-to message
// plus the trailing text of the add-filter command, and saves them.
type FilterAuthoringService struct {
	store interfaces.FilterStore
}

func NewFilterAuthoringService(store interfaces.FilterStore) *FilterAuthoringService {
	return &FilterAuthoringService{store: store}
}

// Author assembles a filter record. The keyword must already be validated
// non-empty by the caller. Button precedence: buttons supplied in the
// command's trailing text win over buttons embedded in the replied content;
// the two sources are never merged. A replied message with no text, caption
// or media still yields a record, with an empty body that never dispatches.
func (s *FilterAuthoringService) Author(conversationID, keyword string, src entities.SourceMessage, trailing string) *entities.Filter {
	// Trailing text minus the keyword (first occurrence only) may carry
	// override buttons.
	overrideText := strings.TrimSpace(strings.Replace(trailing, keyword, "", 1))
	_, cmdButtons := ExtractButtons(overrideText)

	f := &entities.Filter{
		ConversationID: conversationID,
		Keyword:        keyword,
	}

	var bodyButtons []entities.Button
	if src.Text != "" {
		f.Text, bodyButtons = ExtractButtons(src.Text)
	} else if src.Caption != "" {
		f.Caption, bodyButtons = ExtractButtons(src.Caption)
	}

	if len(cmdButtons) > 0 {
		f.Buttons = cmdButtons
	} else {
		f.Buttons = bodyButtons
	}

	f.Media = src.PickMedia()
	f.Normalize()
	return f
}

// Save upserts the record, replacing any existing filter for the same
// (conversation, keyword) pair.
func (s *FilterAuthoringService) Save(ctx context.Context, f *entities.Filter) error {
	if err := s.store.Upsert(ctx, f); err != nil {
		return fmt.Errorf("save filter %q: %w", f.Keyword, err)
	}
	return nil
}
