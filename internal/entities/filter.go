package entities

import (
	"strings"
	"time"
)

// MediaKind is the closed set of media types a filter can replay.
type MediaKind string

const (
	MediaPhoto     MediaKind = "photo"
	MediaVideo     MediaKind = "video"
	MediaDocument  MediaKind = "document"
	MediaAnimation MediaKind = "animation"
	MediaSticker   MediaKind = "sticker"
	MediaAudio     MediaKind = "audio"
	MediaVoice     MediaKind = "voice"
)

// MediaKinds lists all kinds in media-slot precedence order (first populated slot wins).
var MediaKinds = []MediaKind{
	MediaPhoto, MediaVideo, MediaDocument, MediaAnimation, MediaSticker, MediaAudio, MediaVoice,
}

// Media is an externally-issued file handle plus its kind. The file content
// is never fetched or validated here, only stored and replayed.
type Media struct {
	Kind   MediaKind `json:"kind"`
	FileID string    `json:"file_id"`
}

// Button is a single inline URL button. Buttons render one per row, in order.
type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Filter is a saved keyword-triggered auto-response, unique per
// (conversation_id, keyword).
type Filter struct {
	ConversationID string    `json:"conversation_id"`
	Keyword        string    `json:"keyword"`
	Text           string    `json:"text"`
	Media          *Media    `json:"media,omitempty"`
	Caption        string    `json:"caption"`
	Buttons        []Button  `json:"buttons"`
	CreatedAt      time.Time `json:"created_at"`
}

// Normalize lower-cases the keyword, drops captions on sticker media and
// ensures buttons are never nil in stored form.
func (f *Filter) Normalize() {
	f.Keyword = strings.ToLower(strings.TrimSpace(f.Keyword))
	if f.Media != nil && f.Media.Kind == MediaSticker {
		f.Caption = ""
	}
	if f.Buttons == nil {
		f.Buttons = []Button{}
	}
}

// Dispatch is the payload handed to a transport after a keyword match.
// Exactly one of Media or Text drives the send.
type Dispatch struct {
	Media   *Media
	Text    string
	Caption string
	Buttons []Button
}

// BuildDispatch selects the send payload for a matched filter. The second
// return is false when the filter has no sendable body: a keyword matched
// but nothing happens.
func BuildDispatch(f *Filter) (*Dispatch, bool) {
	if f.Media != nil {
		d := &Dispatch{Media: f.Media, Caption: f.Caption, Buttons: f.Buttons}
		if f.Media.Kind == MediaSticker {
			d.Caption = ""
		}
		return d, true
	}
	if f.Text != "" {
		return &Dispatch{Text: f.Text, Buttons: f.Buttons}, true
	}
	return nil, false
}

// SourceMessage is the transport-neutral view of a replied-to message used
// when authoring a filter. Text and Caption arrive HTML-rendered. At most
// one media slot is expected to be populated; if several are, the slot
// precedence in MediaKinds is authoritative.
type SourceMessage struct {
	Text    string
	Caption string

	Photo     string
	Video     string
	Document  string
	Animation string
	Sticker   string
	Audio     string
	Voice     string
}

// MediaSlot returns the file ID for a kind.
func (m SourceMessage) MediaSlot(kind MediaKind) string {
	switch kind {
	case MediaPhoto:
		return m.Photo
	case MediaVideo:
		return m.Video
	case MediaDocument:
		return m.Document
	case MediaAnimation:
		return m.Animation
	case MediaSticker:
		return m.Sticker
	case MediaAudio:
		return m.Audio
	case MediaVoice:
		return m.Voice
	}
	return ""
}

// PickMedia returns the first populated media slot in precedence order.
func (m SourceMessage) PickMedia() *Media {
	for _, kind := range MediaKinds {
		if id := m.MediaSlot(kind); id != "" {
			return &Media{Kind: kind, FileID: id}
		}
	}
	return nil
}
