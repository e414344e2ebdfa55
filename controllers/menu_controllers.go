package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/services"
	"github.com/muniras-delights/bakery-app/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Catalog: services.NewCatalogService(db)}
}

// GetAllMenus -> list catalog items, optionally filtered by ?category=.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Catalog.List(c.Query("category"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", items)
}

// GetAllCategories -> the fixed category set the storefront filters on.
func (mc *MenuController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", models.MenuCategories)
}
