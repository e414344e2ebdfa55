package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/services"
)

// TelegramController exposes the internal relay helper directly: one body,
// one formatted message, no image.
type TelegramController struct {
	Telegram *services.TelegramService
}

func NewTelegramController(tg *services.TelegramService) *TelegramController {
	return &TelegramController{Telegram: tg}
}

// RelayOrder -> POST /api/telegram with {"order": {...}}.
func (tc *TelegramController) RelayOrder(c *gin.Context) {
	var body struct {
		Order *models.OrderPayload `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process Telegram request"})
		return
	}

	result := tc.Telegram.SendOrderMessage(body.Order)
	if !result.OK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Order sent to Telegram successfully",
		"messageId": result.MessageID,
	})
}
