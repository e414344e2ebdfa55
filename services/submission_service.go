package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/utils"
)

// SubmissionClient posts a completed order to the notification gateway. It
// issues exactly one request per submission and never raises a hard failure
// to the wizard.
type SubmissionClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSubmissionClient(baseURL string) *SubmissionClient {
	return &SubmissionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SubmissionOutcome is what the wizard learns about a submission. OK false
// never stops the flow; it only colors the toast.
type SubmissionOutcome struct {
	OK      bool
	OrderID string
	Err     string
}

// IsInAppBrowser detects Telegram's embedded browser from the user-agent.
func IsInAppBrowser(userAgent string) bool {
	return strings.Contains(userAgent, inAppBrowserMarker)
}

// Submit picks the encoding for the order and posts it:
//   - proof + in-app browser: JSON with the screenshot re-encoded as a
//     base64 data URL (the in-app browser mangles multipart bodies)
//   - proof elsewhere: multipart form with the raw file
//   - no proof: plain JSON to the order endpoint
func (sc *SubmissionClient) Submit(order models.OrderPayload, proof *models.PaymentProof, userAgent string) SubmissionOutcome {
	switch {
	case proof != nil && IsInAppBrowser(userAgent):
		return sc.postJSONUpload(order, proof)
	case proof != nil:
		return sc.postMultipartUpload(order, proof)
	default:
		return sc.postOrder(order)
	}
}

func (sc *SubmissionClient) postOrder(order models.OrderPayload) SubmissionOutcome {
	body, err := json.Marshal(order)
	if err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}
	return sc.post("/api/order", "application/json", bytes.NewReader(body))
}

func (sc *SubmissionClient) postJSONUpload(order models.OrderPayload, proof *models.PaymentProof) SubmissionOutcome {
	dataURL := fmt.Sprintf("data:%s;base64,%s", proof.MIME, base64.StdEncoding.EncodeToString(proof.Data))
	body, err := json.Marshal(map[string]interface{}{
		"orderData":  order,
		"screenshot": dataURL,
	})
	if err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}
	return sc.post("/api/upload", "application/json", bytes.NewReader(body))
}

func (sc *SubmissionClient) postMultipartUpload(order models.OrderPayload, proof *models.PaymentProof) SubmissionOutcome {
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	name := proof.Name
	if name == "" {
		name = "screenshot"
	}
	part, err := writer.CreateFormFile("screenshot", name)
	if err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}
	if _, err := part.Write(proof.Data); err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}
	if err := writer.WriteField("orderData", string(orderJSON)); err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return SubmissionOutcome{Err: err.Error()}
	}

	return sc.post("/api/upload", writer.FormDataContentType(), &body)
}

// gatewayEnvelope covers both gateway response shapes.
type gatewayEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Warning string `json:"warning"`
	OrderID string `json:"orderId"`
}

func (sc *SubmissionClient) post(path, contentType string, body io.Reader) SubmissionOutcome {
	resp, err := sc.httpClient.Post(sc.baseURL+path, contentType, body)
	if err != nil {
		utils.ErrorLogger.Printf("Order submission network error: %v", err)
		return SubmissionOutcome{Err: "Network issue detected. Please check your internet connection."}
	}
	defer resp.Body.Close()

	var envelope gatewayEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return SubmissionOutcome{Err: fmt.Sprintf("Server error: %d", resp.StatusCode)}
	}
	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = fmt.Sprintf("Server error: %d", resp.StatusCode)
		}
		return SubmissionOutcome{Err: msg}
	}
	return SubmissionOutcome{OK: true, OrderID: envelope.OrderID, Err: envelope.Warning}
}
