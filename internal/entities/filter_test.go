package entities

import "testing"

func TestNormalizeLowercasesKeyword(t *testing.T) {
	f := &Filter{Keyword: "  PROMO "}
	f.Normalize()
	if f.Keyword != "promo" {
		t.Errorf("expected 'promo', got %q", f.Keyword)
	}
	if f.Buttons == nil {
		t.Error("expected buttons normalized to empty slice")
	}
}

func TestNormalizeDropsStickerCaption(t *testing.T) {
	f := &Filter{
		Keyword: "hi",
		Media:   &Media{Kind: MediaSticker, FileID: "abc"},
		Caption: "should vanish",
	}
	f.Normalize()
	if f.Caption != "" {
		t.Errorf("sticker caption must be dropped, got %q", f.Caption)
	}
}

func TestNormalizeKeepsCaptionForOtherKinds(t *testing.T) {
	f := &Filter{
		Keyword: "hi",
		Media:   &Media{Kind: MediaPhoto, FileID: "abc"},
		Caption: "stays",
	}
	f.Normalize()
	if f.Caption != "stays" {
		t.Errorf("photo caption must survive, got %q", f.Caption)
	}
}

func TestBuildDispatchMedia(t *testing.T) {
	f := &Filter{
		Media:   &Media{Kind: MediaVideo, FileID: "vid1"},
		Caption: "watch this",
		Buttons: []Button{{Label: "A", URL: "u"}},
	}
	d, ok := BuildDispatch(f)
	if !ok {
		t.Fatal("expected a dispatch")
	}
	if d.Media == nil || d.Media.Kind != MediaVideo || d.Media.FileID != "vid1" {
		t.Errorf("unexpected media %+v", d.Media)
	}
	if d.Caption != "watch this" {
		t.Errorf("unexpected caption %q", d.Caption)
	}
	if len(d.Buttons) != 1 {
		t.Errorf("buttons must carry over, got %v", d.Buttons)
	}
}

func TestBuildDispatchStickerOmitsCaption(t *testing.T) {
	f := &Filter{
		Media:   &Media{Kind: MediaSticker, FileID: "st1"},
		Caption: "never shown",
	}
	d, ok := BuildDispatch(f)
	if !ok {
		t.Fatal("expected a dispatch")
	}
	if d.Caption != "" {
		t.Errorf("sticker dispatch must omit caption, got %q", d.Caption)
	}
}

func TestBuildDispatchText(t *testing.T) {
	f := &Filter{Text: "hello"}
	d, ok := BuildDispatch(f)
	if !ok {
		t.Fatal("expected a dispatch")
	}
	if d.Media != nil || d.Text != "hello" {
		t.Errorf("unexpected dispatch %+v", d)
	}
}

func TestBuildDispatchEmptyBodyIsNoOp(t *testing.T) {
	f := &Filter{Keyword: "ghost"}
	if _, ok := BuildDispatch(f); ok {
		t.Error("empty-bodied filter must not dispatch")
	}
}

func TestPickMediaPrecedence(t *testing.T) {
	src := SourceMessage{Sticker: "s1", Photo: "p1", Voice: "v1"}
	m := src.PickMedia()
	if m == nil || m.Kind != MediaPhoto || m.FileID != "p1" {
		t.Errorf("photo must win over later slots, got %+v", m)
	}

	src = SourceMessage{Audio: "a1", Voice: "v1"}
	m = src.PickMedia()
	if m == nil || m.Kind != MediaAudio {
		t.Errorf("audio must win over voice, got %+v", m)
	}

	if (SourceMessage{}).PickMedia() != nil {
		t.Error("no populated slot must yield nil media")
	}
}
