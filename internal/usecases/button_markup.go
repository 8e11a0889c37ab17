package usecases

import (
	"fmt"
	"regexp"
	"strings"

	"filterbot/internal/entities"
)

// buttonPattern matches the embedded [label](buttonurl:url) mini-syntax.
// Labels run up to the closing bracket, URLs up to the closing paren.
var buttonPattern = regexp.MustCompile(`\[([^\]]+)\]\(buttonurl:([^)]+)\)`)

// ExtractButtons pulls every button markup occurrence out of raw, in order
// of appearance, and returns the text with the markup removed. Only the two
// ends of the result are trimmed; internal whitespace left by removal stays.
// Total function: empty input yields ("", empty list).
func ExtractButtons(raw string) (string, []entities.Button) {
	buttons := []entities.Button{}
	if raw == "" {
		return "", buttons
	}
	for _, m := range buttonPattern.FindAllStringSubmatch(raw, -1) {
		buttons = append(buttons, entities.Button{Label: m[1], URL: m[2]})
	}
	clean := strings.TrimSpace(buttonPattern.ReplaceAllString(raw, ""))
	return clean, buttons
}

// SerializeButtons re-embeds buttons as markup text. Extracting the result
// reproduces the same button list.
func SerializeButtons(buttons []entities.Button) string {
	var sb strings.Builder
	for _, b := range buttons {
		sb.WriteString(fmt.Sprintf("[%s](buttonurl:%s)", b.Label, b.URL))
	}
	return sb.String()
}
