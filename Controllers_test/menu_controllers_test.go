package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/controllers"
	"github.com/muniras-delights/bakery-app/database"
	"github.com/muniras-delights/bakery-app/models"
)

func setupMenuRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/categories", menuCtrl.GetAllCategories)
	return r
}

func getMenus(t *testing.T, r *gin.Engine, path string) []models.MenuItem {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  bool              `json:"status"`
		Message string            `json:"message"`
		Data    []models.MenuItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	return resp.Data
}

func TestGetAllMenus(t *testing.T) {
	r := setupMenuRouter(t)

	items := getMenus(t, r, "/menus")
	assert.Len(t, items, len(database.CatalogItems))

	// localized copy round-trips through the catalog table
	for _, item := range items {
		if item.ID == "honey-cake" {
			assert.Equal(t, "Honey Cake", item.Name.Get(models.LangEnglish))
			assert.NotEmpty(t, item.Name.Get(models.LangAmharic))
			assert.Equal(t, 25.0, item.Price)
		}
	}
}

func TestGetMenusFilteredByCategory(t *testing.T) {
	r := setupMenuRouter(t)

	cakes := getMenus(t, r, "/menus?category=cakes")
	assert.NotEmpty(t, cakes)
	for _, item := range cakes {
		assert.Equal(t, "cakes", item.Category)
	}

	all := getMenus(t, r, "/menus?category=all")
	assert.Len(t, all, len(database.CatalogItems))

	none := getMenus(t, r, "/menus?category=sushi")
	assert.Empty(t, none)
}

func TestGetAllCategories(t *testing.T) {
	r := setupMenuRouter(t)

	req, _ := http.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"cakes", "pastries", "catering", "icecream"}, resp.Data)
}
