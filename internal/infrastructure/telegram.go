package infrastructure

import (
	"fmt"
	"strconv"

	"filterbot/internal/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramClient struct {
	Bot *tgbotapi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &TelegramClient{Bot: bot}, nil
}

// SendText sends a plain text message without reply threading.
func (t *TelegramClient) SendText(conversationID, text string) error {
	chatID, err := strconv.ParseInt(conversationID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conversation id %q: %w", conversationID, err)
	}
	_, err = t.Bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendDispatch replays a matched filter into a conversation as a reply to
// the triggering message. replyTo of 0 sends without threading.
func (t *TelegramClient) SendDispatch(conversationID string, replyTo int, d *entities.Dispatch) error {
	chatID, err := strconv.ParseInt(conversationID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conversation id %q: %w", conversationID, err)
	}

	var markup *tgbotapi.InlineKeyboardMarkup
	if len(d.Buttons) > 0 {
		kb := BuildButtonKeyboard(d.Buttons)
		markup = &kb
	}

	if d.Media == nil {
		msg := tgbotapi.NewMessage(chatID, d.Text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		_, err = t.Bot.Send(msg)
		return err
	}

	file := tgbotapi.FileID(d.Media.FileID)
	var chattable tgbotapi.Chattable

	switch d.Media.Kind {
	case entities.MediaPhoto:
		msg := tgbotapi.NewPhoto(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaVideo:
		msg := tgbotapi.NewVideo(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaDocument:
		msg := tgbotapi.NewDocument(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaAnimation:
		msg := tgbotapi.NewAnimation(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaSticker:
		// Stickers carry no caption or parse mode.
		msg := tgbotapi.NewSticker(chatID, file)
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaAudio:
		msg := tgbotapi.NewAudio(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	case entities.MediaVoice:
		msg := tgbotapi.NewVoice(chatID, file)
		msg.Caption = d.Caption
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyToMessageID = replyTo
		if markup != nil {
			msg.ReplyMarkup = markup
		}
		chattable = msg
	default:
		return fmt.Errorf("unknown media kind %q", d.Media.Kind)
	}

	_, err = t.Bot.Send(chattable)
	return err
}

// BuildButtonKeyboard renders saved buttons as an inline keyboard, one URL
// button per row in list order.
func BuildButtonKeyboard(buttons []entities.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SourceFromMessage maps a replied-to Telegram message onto the
// transport-neutral authoring view. Photos pick the largest size.
func SourceFromMessage(msg *tgbotapi.Message) entities.SourceMessage {
	var src entities.SourceMessage
	if msg == nil {
		return src
	}

	src.Text = msg.Text
	src.Caption = msg.Caption

	if len(msg.Photo) > 0 {
		src.Photo = msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Video != nil {
		src.Video = msg.Video.FileID
	}
	if msg.Document != nil {
		src.Document = msg.Document.FileID
	}
	if msg.Animation != nil {
		src.Animation = msg.Animation.FileID
	}
	if msg.Sticker != nil {
		src.Sticker = msg.Sticker.FileID
	}
	if msg.Audio != nil {
		src.Audio = msg.Audio.FileID
	}
	if msg.Voice != nil {
		src.Voice = msg.Voice.FileID
	}
	return src
}
