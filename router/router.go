package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/controllers"
	"github.com/muniras-delights/bakery-app/middlewares"
	"github.com/muniras-delights/bakery-app/services"
)

func SetupRouter(db *gorm.DB, tg *services.TelegramService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(tg)
	uploadCtrl := controllers.NewUploadController(tg)
	telegramCtrl := controllers.NewTelegramController(tg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Catalog, read-only
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/categories", menuCtrl.GetAllCategories)

	// Notification gateway
	api := r.Group("/api")
	{
		api.POST("/order", orderCtrl.CreateOrder)
		api.POST("/upload", uploadCtrl.HandleUpload)

		// Internal relay helper, directly callable but throttled hard
		api.POST("/telegram", middlewares.NewStrictRateLimiter(), telegramCtrl.RelayOrder)
	}

	return r
}
