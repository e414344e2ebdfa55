package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/muniras-delights/bakery-app/config"
	"github.com/muniras-delights/bakery-app/controllers"
	"github.com/muniras-delights/bakery-app/services"
)

func setupRelayRouter(t *testing.T, fail bool) (*gin.Engine, *[]string) {
	t.Helper()
	var messages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		messages = append(messages, body.Text)
		if fail {
			fmt.Fprint(w, `{"ok":false,"description":"bot was blocked by the user"}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":303}}`)
	}))
	t.Cleanup(server.Close)

	tg := services.NewTelegramService(config.TelegramConfig{
		BotToken: "test-token",
		ChatID:   "12345",
		APIBase:  server.URL,
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/telegram", controllers.NewTelegramController(tg).RelayOrder)
	return r, &messages
}

func TestRelayOrderSuccess(t *testing.T) {
	r, messages := setupRelayRouter(t, false)

	payload := map[string]interface{}{
		"order": map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": "honey-cake", "quantity": 1},
			},
			"customer": map[string]interface{}{
				"name":  "Ada",
				"phone": "0911111111",
			},
			"paymentMethod": "bank_transfer",
			"total":         25,
		},
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/api/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(303), resp["messageId"])

	assert.Len(t, *messages, 1)
	assert.Contains(t, (*messages)[0], "Ada")
}

func TestRelayOrderUpstreamFailure(t *testing.T) {
	r, _ := setupRelayRouter(t, true)

	body, _ := json.Marshal(map[string]interface{}{"order": map[string]interface{}{}})
	req, _ := http.NewRequest("POST", "/api/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bot was blocked by the user", resp["error"])
}
