package controllers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/muniras-delights/bakery-app/models"
)

// RecoveredRequest is what the parser chain managed to pull out of an
// incoming upload request. Either field may be nil.
type RecoveredRequest struct {
	Order *models.OrderPayload
	Proof *models.PaymentProof
}

// orderParser attempts to read one request encoding. ok false means the
// strategy does not apply or found nothing; the chain moves on.
type orderParser func(contentType string, body []byte) (RecoveredRequest, bool)

// orderParsers is the ordered strategy chain: declared JSON, declared
// multipart, then a raw-body scan for an orderData fragment regardless of
// what the Content-Type claims.
var orderParsers = []orderParser{
	parseJSONRequest,
	parseMultipartRequest,
	parseRawFragment,
}

// RecoverOrder runs the strategy chain and returns the first hit.
func RecoverOrder(contentType string, body []byte) RecoveredRequest {
	for _, parse := range orderParsers {
		if rec, ok := parse(contentType, body); ok {
			return rec
		}
	}
	return RecoveredRequest{}
}

func parseJSONRequest(contentType string, body []byte) (RecoveredRequest, bool) {
	if !strings.Contains(contentType, "application/json") {
		return RecoveredRequest{}, false
	}

	var envelope struct {
		OrderData  json.RawMessage `json:"orderData"`
		Screenshot string          `json:"screenshot"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return RecoveredRequest{}, false
	}

	var rec RecoveredRequest
	if len(envelope.OrderData) > 0 {
		rec.Order = unmarshalOrder(envelope.OrderData)
	}
	if envelope.Screenshot != "" {
		rec.Proof = decodeDataURL(envelope.Screenshot)
	}
	if rec.Order == nil && rec.Proof == nil {
		return RecoveredRequest{}, false
	}
	return rec, true
}

// unmarshalOrder accepts the orderData field both as an object and as a
// JSON-encoded string, which is how multipart clients pack it.
func unmarshalOrder(raw json.RawMessage) *models.OrderPayload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil
		}
		trimmed = []byte(inner)
	}
	var order models.OrderPayload
	if err := json.Unmarshal(trimmed, &order); err != nil {
		return nil
	}
	return &order
}

var dataURLPattern = regexp.MustCompile(`^data:([^;,]+);base64,`)

// decodeDataURL turns a base64 data URL back into binary. A bare base64
// string without the data: prefix is accepted too.
func decodeDataURL(s string) *models.PaymentProof {
	mimeType := "application/octet-stream"
	payload := s
	if m := dataURLPattern.FindStringSubmatch(s); m != nil {
		mimeType = m[1]
		payload = s[len(m[0]):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	return &models.PaymentProof{Name: "screenshot", MIME: mimeType, Data: data}
}

func parseMultipartRequest(contentType string, body []byte) (RecoveredRequest, bool) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return RecoveredRequest{}, false
	}
	boundary := params["boundary"]
	if boundary == "" {
		return RecoveredRequest{}, false
	}

	var rec RecoveredRequest
	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch part.FormName() {
		case "orderData":
			data, err := io.ReadAll(part)
			if err == nil {
				rec.Order = unmarshalOrder(data)
			}
		case "screenshot":
			data, err := io.ReadAll(part)
			if err != nil {
				continue
			}
			mimeType := part.Header.Get("Content-Type")
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}
			rec.Proof = &models.PaymentProof{
				Name: part.FileName(),
				MIME: mimeType,
				Data: data,
			}
		}
	}

	if rec.Order == nil && rec.Proof == nil {
		return RecoveredRequest{}, false
	}
	return rec, true
}

// parseRawFragment is the last resort: scan the raw body for an
// "orderData": {...} fragment whatever the Content-Type says.
func parseRawFragment(_ string, body []byte) (RecoveredRequest, bool) {
	idx := bytes.Index(body, []byte(`"orderData"`))
	if idx < 0 {
		return RecoveredRequest{}, false
	}
	rest := body[idx+len(`"orderData"`):]
	colon := bytes.IndexByte(rest, ':')
	if colon < 0 {
		return RecoveredRequest{}, false
	}
	rest = bytes.TrimLeft(rest[colon+1:], " \t\r\n")
	if len(rest) == 0 || rest[0] != '{' {
		return RecoveredRequest{}, false
	}
	fragment, ok := extractJSONObject(rest)
	if !ok {
		return RecoveredRequest{}, false
	}
	order := unmarshalOrder(fragment)
	if order == nil {
		return RecoveredRequest{}, false
	}
	return RecoveredRequest{Order: order}, true
}

// extractJSONObject slices the balanced {...} object at the start of b,
// ignoring braces inside string literals.
func extractJSONObject(b []byte) ([]byte, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(b); i++ {
		ch := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1], true
			}
		}
	}
	return nil, false
}
