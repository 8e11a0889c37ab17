package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// WhatsAppClient is the optional second transport. Filters replay as plain
// text here; media and buttons are Telegram-only.
type WhatsAppClient struct {
	Client *whatsmeow.Client

	qrCode string
	qrLock sync.RWMutex
}

func NewWhatsAppClient(dbPath string) (*WhatsAppClient, error) {
	dbLog := waLog.Stdout("Database", "INFO", true)
	container, err := sqlstore.New(context.Background(), "sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)", dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %v", err)
	}

	clientLog := waLog.Stdout("Client", "INFO", true)
	client := whatsmeow.NewClient(deviceStore, clientLog)

	return &WhatsAppClient{Client: client}, nil
}

func (w *WhatsAppClient) Connect() error {
	if w.Client.Store.ID == nil {
		// No ID stored, new login
		qrChan, _ := w.Client.GetQRChannel(context.Background())
		if err := w.Client.Connect(); err != nil {
			return err
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					w.qrLock.Lock()
					w.qrCode = evt.Code
					w.qrLock.Unlock()
					fmt.Println("WhatsApp pairing code available, scan via admin API")
				} else {
					fmt.Println("WhatsApp login event:", evt.Event)
				}
			}
		}()
		return nil
	}

	if err := w.Client.Connect(); err != nil {
		return err
	}
	fmt.Println("WhatsApp Client Connected (Existing Session)")
	return nil
}

func (w *WhatsAppClient) GetQR() string {
	w.qrLock.RLock()
	defer w.qrLock.RUnlock()
	return w.qrCode
}

func (w *WhatsAppClient) IsLoggedIn() bool {
	return w.Client.Store.ID != nil
}

func (w *WhatsAppClient) Disconnect() {
	w.Client.Disconnect()
}

func (w *WhatsAppClient) AddHandler(handler func(interface{})) {
	w.Client.AddEventHandler(handler)
}

// SendMessage sends plain text to a phone number (without JID suffix).
func (w *WhatsAppClient) SendMessage(to string, content string) error {
	jid, err := types.ParseJID(to + "@s.whatsapp.net")
	if err != nil {
		return fmt.Errorf("invalid number format: %v", err)
	}

	_, err = w.Client.SendMessage(context.Background(), jid, &waProto.Message{
		Conversation: &content,
	})
	return err
}

// ParseMessage extracts the sender phone number and text content from an
// incoming event.
func (w *WhatsAppClient) ParseMessage(evt *events.Message) (string, string) {
	sender := evt.Info.Sender.User
	var content string

	if evt.Message.Conversation != nil {
		content = *evt.Message.Conversation
	} else if evt.Message.ExtendedTextMessage != nil {
		content = *evt.Message.ExtendedTextMessage.Text
	}

	return sender, content
}
