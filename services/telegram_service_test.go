package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muniras-delights/bakery-app/config"
	"github.com/muniras-delights/bakery-app/models"
)

// telegramStub emulates the Bot API and records what it was sent.
type telegramStub struct {
	server    *httptest.Server
	messages  []string
	photos    int
	failSends int // fail this many sendMessage calls before succeeding
}

func newTelegramStub(t *testing.T) *telegramStub {
	t.Helper()
	stub := &telegramStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("/bottest-token/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		stub.messages = append(stub.messages, body.Text)
		if stub.failSends > 0 {
			stub.failSends--
			fmt.Fprint(w, `{"ok":false,"description":"Bad Request: message text is empty"}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":42}}`)
	})
	mux.HandleFunc("/bottest-token/sendPhoto", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(32 << 20)
		stub.photos++
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":43}}`)
	})
	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *telegramStub) config() config.TelegramConfig {
	return config.TelegramConfig{
		BotToken: "test-token",
		ChatID:   "12345",
		APIBase:  s.server.URL,
	}
}

func sampleOrder() *models.OrderPayload {
	return &models.OrderPayload{
		Items: []models.OrderItem{
			{ID: "honey-cake", Quantity: 2},
			{ID: "baklava-tray", Quantity: 1},
		},
		Customer: models.CustomerInfo{
			Name:         "Ada",
			Phone:        "0911111111",
			Address:      "Bole",
			DeliveryDate: "2099-01-01",
		},
		PaymentMethod: models.PaymentMethodBankTransfer,
		Total:         68,
		Timestamp:     "2026-08-31T10:00:00Z",
	}
}

func TestEscapeMarkdown(t *testing.T) {
	reserved := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	for _, ch := range reserved {
		escaped := EscapeMarkdown("a" + ch + "b")
		assert.Equal(t, "a\\"+ch+"b", escaped, "reserved character %q", ch)
	}
}

func TestEscapeMarkdownSinglePass(t *testing.T) {
	// every reserved character ends up with exactly one backslash, even
	// when the input repeats them
	escaped := EscapeMarkdown("a.b.c!!")
	assert.Equal(t, `a\.b\.c\!\!`, escaped)
	assert.NotContains(t, escaped, `\\`)
}

func TestFormatOrderMessagePlain(t *testing.T) {
	ts := NewTelegramService(config.TelegramConfig{})
	text := ts.FormatOrderMessage(sampleOrder(), false)

	assert.Contains(t, text, "Name: Ada")
	assert.Contains(t, text, "Phone: 0911111111")
	assert.Contains(t, text, "1. honey-cake (Qty: 2)")
	assert.Contains(t, text, "2. baklava-tray (Qty: 1)")
	assert.Contains(t, text, "Total Amount: $68")
	assert.Contains(t, text, "Payment Method: bank_transfer")
	assert.Contains(t, text, "Order Time: 2026-08-31T10:00:00Z")
	assert.NotContains(t, text, `\`)
}

func TestFormatOrderMessagePlaceholders(t *testing.T) {
	ts := NewTelegramService(config.TelegramConfig{})
	order := &models.OrderPayload{
		Items: []models.OrderItem{{}},
	}
	text := ts.FormatOrderMessage(order, false)

	assert.Contains(t, text, "Name: Not provided")
	assert.Contains(t, text, "Phone: Not provided")
	assert.Contains(t, text, "Address: Not provided")
	assert.Contains(t, text, "1. Item (Qty: 0)")
	assert.Contains(t, text, "Total Amount: $0")
}

func TestFormatOrderMessageMarkupEscaping(t *testing.T) {
	ts := NewTelegramService(config.TelegramConfig{})
	order := sampleOrder()
	order.Customer.Name = "Ada_Lovelace (VIP)!"

	text := ts.FormatOrderMessage(order, true)

	assert.Contains(t, text, `Ada\_Lovelace \(VIP\)\!`)
	// single pass, never double-escaped
	assert.NotContains(t, text, `\\`)
}

func TestSendOrderMessage(t *testing.T) {
	stub := newTelegramStub(t)
	ts := NewTelegramService(stub.config())

	result := ts.SendOrderMessage(sampleOrder())

	assert.True(t, result.OK)
	assert.Equal(t, int64(42), result.MessageID)
	assert.Len(t, stub.messages, 1)
	assert.Contains(t, stub.messages[0], "NEW ORDER RECEIVED")
}

func TestSendOrderMessageUpstreamRejection(t *testing.T) {
	stub := newTelegramStub(t)
	stub.failSends = 1
	ts := NewTelegramService(stub.config())

	result := ts.SendOrderMessage(sampleOrder())

	assert.False(t, result.OK)
	assert.Equal(t, "Bad Request: message text is empty", result.Err)
}

func TestSendOrderMessageWithoutCredentials(t *testing.T) {
	stub := newTelegramStub(t)
	ts := NewTelegramService(config.TelegramConfig{APIBase: stub.server.URL})

	result := ts.SendOrderMessage(sampleOrder())

	assert.False(t, result.OK)
	assert.Contains(t, result.Err, "credentials missing")
	assert.Empty(t, stub.messages, "no call should reach the API without credentials")
}

func TestSendFallbackMessage(t *testing.T) {
	stub := newTelegramStub(t)
	ts := NewTelegramService(stub.config())

	result := ts.SendFallbackMessage(sampleOrder())

	assert.True(t, result.OK)
	assert.Len(t, stub.messages, 1)
	text := stub.messages[0]
	assert.Contains(t, text, "Ada")
	assert.Contains(t, text, "0911111111")
	assert.Contains(t, text, "$68")
	assert.False(t, strings.Contains(text, `\`), "fallback is plain text, never escaped")
}

func TestSendPhoto(t *testing.T) {
	stub := newTelegramStub(t)
	ts := NewTelegramService(stub.config())

	proof := &models.PaymentProof{Name: "receipt.png", MIME: "image/png", Data: []byte("png-bytes")}
	result := ts.SendPhoto(proof, "Payment screenshot")

	assert.True(t, result.OK)
	assert.Equal(t, int64(43), result.MessageID)
	assert.Equal(t, 1, stub.photos)
}
