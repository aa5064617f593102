package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(items *controllers.ItemController) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/items", items.ListItems)
		api.POST("/items", items.CreateItem)
		api.PUT("/items/:id", items.UpdateItem)
		api.DELETE("/items/:id", items.DeleteItem)
		api.POST("/items/:id/image", items.UploadItemImage)
		api.POST("/items/digest", items.SendExpiryDigest)
		api.GET("/meta", items.GetMeta)
	}

	return r
}
