package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/services"
	"github.com/muniras-delights/bakery-app/utils"
)

// maxUploadBytes is the gateway-side cap on a payment screenshot.
const maxUploadBytes = 10 << 20

// maxUploadBodyBytes caps how much of a request body the gateway buffers:
// the screenshot cap plus headroom for multipart framing and the order JSON.
const maxUploadBodyBytes = 12 << 20

// userAgentPreviewLen bounds the user-agent echoed in operator alerts.
const userAgentPreviewLen = 150

// UploadController is the defensive revision of the notification gateway:
// whatever arrives, the caller gets HTTP 200 with success true. Problems are
// downgraded to a warning field and operator-side alerts, never to an error
// the storefront visitor would see.
type UploadController struct {
	Telegram *services.TelegramService
}

func NewUploadController(tg *services.TelegramService) *UploadController {
	return &UploadController{Telegram: tg}
}

// HandleUpload -> POST /api/upload. Accepts JSON with a base64 screenshot,
// multipart with a raw file, or any body the recovery chain can make sense
// of. Sends the order text first and the image second; the image is
// attempted even when the text failed.
func (uc *UploadController) HandleUpload(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBodyBytes))
	if err != nil {
		utils.ErrorLogger.Printf("Failed to read upload body: %v", err)
	}

	rec := RecoverOrder(c.GetHeader("Content-Type"), body)

	resp := gin.H{"success": true}
	var warnings []string

	if rec.Order == nil {
		ua := c.Request.UserAgent()
		if len(ua) > userAgentPreviewLen {
			// cut on a rune boundary; Telegram rejects invalid UTF-8
			cut := userAgentPreviewLen
			for cut > 0 && !utf8.RuneStart(ua[cut]) {
				cut--
			}
			ua = ua[:cut]
		}
		utils.ErrorLogger.Printf("Order upload could not be parsed (content type %q, %d bytes)", c.GetHeader("Content-Type"), len(body))
		alert := uc.Telegram.SendOperatorAlert("⚠️ An order attempt arrived but could not be parsed.\nUser-Agent: " + ua)
		if !alert.OK {
			utils.ErrorLogger.Printf("Operator alert failed: %s", alert.Err)
		}
		warnings = append(warnings, "Order data could not be parsed")
	}

	orderSent := false
	if rec.Order != nil {
		result := uc.Telegram.SendOrderMessage(rec.Order)
		if result.OK {
			orderSent = true
			resp["orderId"] = strconv.FormatInt(result.MessageID, 10)
		} else {
			utils.ErrorLogger.Printf("Order message failed (%s), sending fallback", result.Err)
			if fallback := uc.Telegram.SendFallbackMessage(rec.Order); !fallback.OK {
				utils.ErrorLogger.Printf("Fallback message failed too: %s", fallback.Err)
			}
			warnings = append(warnings, "Order message could not be delivered")
		}
	}

	imageSent := false
	if rec.Proof != nil {
		resp["filename"] = rec.Proof.Name
		switch {
		case !rec.Proof.IsImage():
			warnings = append(warnings, "Only images allowed")
		case rec.Proof.Size() > maxUploadBytes:
			warnings = append(warnings, "File too large (max 10MB)")
		default:
			result := uc.Telegram.SendPhoto(rec.Proof, proofCaption(rec.Order))
			if result.OK {
				imageSent = true
			} else {
				utils.ErrorLogger.Printf("Payment screenshot relay failed: %s", result.Err)
				warnings = append(warnings, "Payment screenshot could not be delivered")
			}
		}
	}

	resp["orderSent"] = orderSent
	resp["imageSent"] = imageSent
	if len(warnings) > 0 {
		resp["warning"] = strings.Join(warnings, "; ")
	}
	if orderSent && imageSent {
		resp["message"] = "Order and payment screenshot submitted successfully!"
	} else {
		resp["message"] = "Order received"
	}

	c.JSON(http.StatusOK, resp)
}

func proofCaption(order *models.OrderPayload) string {
	name := "Customer"
	total := "N/A"
	if order != nil {
		if strings.TrimSpace(order.Customer.Name) != "" {
			name = order.Customer.Name
		}
		total = utils.FormatAmount(order.Total)
	}
	return fmt.Sprintf("💰 Payment screenshot for order from %s\nTotal: $%s", name, total)
}
