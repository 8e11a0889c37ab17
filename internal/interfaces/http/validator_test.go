package http

import "testing"

func TestValidConversationID(t *testing.T) {
	valid := []string{"100", "-1001234567890", "628912345678"}
	for _, s := range valid {
		if !ValidConversationID(s) {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []string{"", "abc", "12 34", "1; DROP TABLE filters"}
	for _, s := range invalid {
		if ValidConversationID(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestValidKeyword(t *testing.T) {
	if !ValidKeyword("sale") {
		t.Error("'sale' should be valid")
	}
	if ValidKeyword("   ") {
		t.Error("blank keyword should be invalid")
	}
	if ValidKeyword("") {
		t.Error("empty keyword should be invalid")
	}
}
