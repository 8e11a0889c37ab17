package http

import (
	"regexp"
	"strings"
)

// Input validation constants
const (
	MaxKeywordLength = 255
)

var conversationIDPattern = regexp.MustCompile(`^-?[0-9]+$`)

// ValidConversationID checks that a conversation ID is a chat ID
// (Telegram IDs may be negative for groups) or a bare phone number.
func ValidConversationID(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	return conversationIDPattern.MatchString(s)
}

// ValidKeyword checks that a keyword is non-empty after trimming and fits
// the stored column.
func ValidKeyword(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= MaxKeywordLength
}
