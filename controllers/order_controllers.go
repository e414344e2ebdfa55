package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/services"
	"github.com/muniras-delights/bakery-app/utils"
)

// OrderController handles the strict order endpoint: validation failures and
// relay failures are real HTTP errors here, unlike the upload gateway.
type OrderController struct {
	Telegram *services.TelegramService
}

func NewOrderController(tg *services.TelegramService) *OrderController {
	return &OrderController{Telegram: tg}
}

// CreateOrder -> POST /api/order. Accepts a bare OrderPayload, relays one
// formatted message, answers with the Telegram message id as the order id.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.OrderPayload
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}

	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items in order"})
		return
	}
	if strings.TrimSpace(order.Customer.Name) == "" || strings.TrimSpace(order.Customer.Phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone are required"})
		return
	}

	utils.InfoLogger.Printf("Order received from %s (%d items)", order.Customer.Name, len(order.Items))

	result := oc.Telegram.SendOrderMessage(&order)
	if !result.OK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send to Telegram: " + result.Err})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order submitted successfully!",
		"orderId": strconv.FormatInt(result.MessageID, 10),
	})
}
