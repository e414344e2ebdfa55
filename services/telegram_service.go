package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/muniras-delights/bakery-app/config"
	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/utils"
)

// TelegramService relays order notifications to the operator's chat via the
// Bot API. Every call is attempted exactly once; there is no retry or
// backoff anywhere in the pipeline.
type TelegramService struct {
	cfg        config.TelegramConfig
	httpClient *http.Client
}

func NewTelegramService(cfg config.TelegramConfig) *TelegramService {
	return &TelegramService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RelayResult reports the outcome of a single outbound Telegram call.
// Internal callers inspect it freely; HTTP boundaries decide how much of a
// failure the storefront visitor gets to see.
type RelayResult struct {
	OK        bool
	MessageID int64
	Err       string
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// markdownEscaper prefixes every MarkdownV2 reserved character with a single
// backslash. One pass, so characters are never double-escaped.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
	"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
	">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
	".", "\\.", "!", "\\!",
)

// EscapeMarkdown escapes the MarkdownV2 reserved character set.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

func orField(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// FormatOrderMessage builds the operator-facing order text. Missing fields
// render as placeholders instead of failing. With markup on, the whole
// message is escaped once so every reserved character in a customer-supplied
// field carries exactly one backslash.
func (ts *TelegramService) FormatOrderMessage(order *models.OrderPayload, markup bool) string {
	var b strings.Builder
	b.WriteString("🎂 NEW ORDER RECEIVED! 🎂\n\n")

	if order != nil {
		b.WriteString("CUSTOMER DETAILS:\n")
		fmt.Fprintf(&b, "👤 Name: %s\n", orField(order.Customer.Name, "Not provided"))
		fmt.Fprintf(&b, "📞 Phone: %s\n", orField(order.Customer.Phone, "Not provided"))
		fmt.Fprintf(&b, "📍 Address: %s\n", orField(order.Customer.Address, "Not provided"))
		fmt.Fprintf(&b, "📅 Delivery Date: %s\n\n", orField(order.Customer.DeliveryDate, "Not provided"))

		b.WriteString("ORDER ITEMS:\n")
		for i, item := range order.Items {
			fmt.Fprintf(&b, "%d. %s (Qty: %d)\n", i+1, orField(item.ID, "Item"), item.Quantity)
		}

		fmt.Fprintf(&b, "\n💰 Total Amount: $%s\n", utils.FormatAmount(order.Total))
		fmt.Fprintf(&b, "💳 Payment Method: %s\n", orField(order.PaymentMethod, "Not provided"))
		timestamp := order.Timestamp
		if timestamp == "" {
			timestamp = time.Now().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(&b, "⏰ Order Time: %s\n", timestamp)
	}

	text := b.String()
	if markup {
		text = EscapeMarkdown(text)
	}
	return text
}

// SendOrderMessage relays the formatted order text. Callers decide whether a
// failure is fatal, silent, or a reason to try SendFallbackMessage.
func (ts *TelegramService) SendOrderMessage(order *models.OrderPayload) RelayResult {
	text := ts.FormatOrderMessage(order, ts.cfg.Markdown)
	return ts.sendMessage(text, ts.cfg.Markdown)
}

// SendFallbackMessage sends the minimal plain-text notification (name,
// phone, total) used when the formatted send fails. No markup, no escaping.
func (ts *TelegramService) SendFallbackMessage(order *models.OrderPayload) RelayResult {
	name, phone := "Not provided", "Not provided"
	var total float64
	if order != nil {
		name = orField(order.Customer.Name, name)
		phone = orField(order.Customer.Phone, phone)
		total = order.Total
	}
	text := fmt.Sprintf("New order from %s, phone %s, total $%s", name, phone, utils.FormatAmount(total))
	return ts.sendMessage(text, false)
}

// SendOperatorAlert notifies the operator that an order request arrived but
// could not be understood. Plain text.
func (ts *TelegramService) SendOperatorAlert(text string) RelayResult {
	return ts.sendMessage(text, false)
}

func (ts *TelegramService) sendMessage(text string, markup bool) RelayResult {
	if !ts.cfg.Configured() {
		utils.ErrorLogger.Println("Telegram credentials missing, dropping message")
		return RelayResult{Err: "Telegram credentials missing"}
	}

	payload := map[string]interface{}{
		"chat_id": ts.cfg.ChatID,
		"text":    text,
	}
	if markup {
		payload["parse_mode"] = "MarkdownV2"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return RelayResult{Err: err.Error()}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", ts.cfg.APIBase, ts.cfg.BotToken)
	resp, err := ts.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		utils.ErrorLogger.Printf("Telegram sendMessage network error: %v", err)
		return RelayResult{Err: "Network error while sending to Telegram"}
	}
	defer resp.Body.Close()

	return decodeTelegramResponse(resp.Body)
}

// SendPhoto relays the payment proof as a captioned photo in its own call,
// independent of the text message's outcome.
func (ts *TelegramService) SendPhoto(proof *models.PaymentProof, caption string) RelayResult {
	if !ts.cfg.Configured() {
		utils.ErrorLogger.Println("Telegram credentials missing, dropping photo")
		return RelayResult{Err: "Telegram credentials missing"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", ts.cfg.ChatID); err != nil {
		return RelayResult{Err: err.Error()}
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return RelayResult{Err: err.Error()}
	}
	name := proof.Name
	if name == "" {
		name = "screenshot"
	}
	part, err := writer.CreateFormFile("photo", name)
	if err != nil {
		return RelayResult{Err: err.Error()}
	}
	if _, err := part.Write(proof.Data); err != nil {
		return RelayResult{Err: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return RelayResult{Err: err.Error()}
	}

	url := fmt.Sprintf("%s/bot%s/sendPhoto", ts.cfg.APIBase, ts.cfg.BotToken)
	resp, err := ts.httpClient.Post(url, writer.FormDataContentType(), &body)
	if err != nil {
		utils.ErrorLogger.Printf("Telegram sendPhoto network error: %v", err)
		return RelayResult{Err: "Network error while sending image to Telegram"}
	}
	defer resp.Body.Close()

	return decodeTelegramResponse(resp.Body)
}

func decodeTelegramResponse(r io.Reader) RelayResult {
	var tr telegramResponse
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return RelayResult{Err: "Invalid response from Telegram"}
	}
	if !tr.OK {
		desc := tr.Description
		if desc == "" {
			desc = "Telegram API rejected the call"
		}
		utils.ErrorLogger.Printf("Telegram API error: %s", desc)
		return RelayResult{Err: desc}
	}
	return RelayResult{OK: true, MessageID: tr.Result.MessageID}
}
