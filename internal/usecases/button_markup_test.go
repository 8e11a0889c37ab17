package usecases

import (
	"reflect"
	"testing"

	"filterbot/internal/entities"
)

func TestExtractButtonsBasic(t *testing.T) {
	clean, buttons := ExtractButtons("50% off! [Shop](buttonurl:https://shop.example)")
	if clean != "50% off!" {
		t.Errorf("expected clean text '50%% off!', got %q", clean)
	}
	want := []entities.Button{{Label: "Shop", URL: "https://shop.example"}}
	if !reflect.DeepEqual(buttons, want) {
		t.Errorf("expected %v, got %v", want, buttons)
	}
}

func TestExtractButtonsOrderPreserved(t *testing.T) {
	_, buttons := ExtractButtons("[A](buttonurl:u1) middle [B](buttonurl:u2)")
	want := []entities.Button{
		{Label: "A", URL: "u1"},
		{Label: "B", URL: "u2"},
	}
	if !reflect.DeepEqual(buttons, want) {
		t.Errorf("expected %v, got %v", want, buttons)
	}
}

func TestExtractButtonsEmptyInput(t *testing.T) {
	clean, buttons := ExtractButtons("")
	if clean != "" {
		t.Errorf("expected empty clean text, got %q", clean)
	}
	if buttons == nil || len(buttons) != 0 {
		t.Errorf("expected empty button list, got %v", buttons)
	}
}

func TestExtractButtonsNoMarkup(t *testing.T) {
	clean, buttons := ExtractButtons("just some text")
	if clean != "just some text" {
		t.Errorf("unexpected clean text %q", clean)
	}
	if len(buttons) != 0 {
		t.Errorf("expected no buttons, got %v", buttons)
	}
}

func TestExtractButtonsMalformedMarkupLeftAlone(t *testing.T) {
	// Plain markdown links are not button markup.
	clean, buttons := ExtractButtons("see [docs](https://example.com)")
	if clean != "see [docs](https://example.com)" {
		t.Errorf("plain link should survive, got %q", clean)
	}
	if len(buttons) != 0 {
		t.Errorf("expected no buttons, got %v", buttons)
	}
}

func TestExtractButtonsTrimsOnlyOuterWhitespace(t *testing.T) {
	clean, _ := ExtractButtons("a [X](buttonurl:u) b")
	if clean != "a  b" {
		t.Errorf("internal whitespace must stay, got %q", clean)
	}

	clean, _ = ExtractButtons("[X](buttonurl:u) hello ")
	if clean != "hello" {
		t.Errorf("outer whitespace must go, got %q", clean)
	}
}

func TestExtractButtonsIdempotent(t *testing.T) {
	raw := "promo [Buy](buttonurl:http://x) and [More](buttonurl:http://y)"
	clean, buttons := ExtractButtons(raw)
	if len(buttons) != 2 {
		t.Fatalf("expected 2 buttons on first pass, got %d", len(buttons))
	}

	again, more := ExtractButtons(clean)
	if len(more) != 0 {
		t.Errorf("second pass must find nothing, got %v", more)
	}
	if again != clean {
		t.Errorf("second pass changed text: %q -> %q", clean, again)
	}
}

func TestSerializeButtonsRoundTrip(t *testing.T) {
	want := []entities.Button{
		{Label: "A", URL: "u1"},
		{Label: "B", URL: "u2"},
	}

	embedded := "some base text " + SerializeButtons(want) + " tail"
	clean, got := ExtractButtons(embedded)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip lost buttons: want %v, got %v", want, got)
	}
	if clean != "some base text  tail" {
		t.Errorf("unexpected clean text %q", clean)
	}
}
