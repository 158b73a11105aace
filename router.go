package main

import (
	"github.com/gin-gonic/gin"
	"gridCore/contracts"
	"net/http"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)

	sheetsGroup := apiRouterGroup.Group("/sheets")
	sheetsGroup.GET("", controller.ListSheetsAction)
	sheetsGroup.POST("", controller.AddSheetAction)
	sheetsGroup.PUT("/current", controller.SwitchSheetAction)
	sheetsGroup.DELETE("/:sheet_id", controller.DeleteSheetAction)

	cellGroup := sheetsGroup.Group("/:sheet_id/cells/:cell_id")
	cellGroup.GET("", controller.GetCellAction)
	cellGroup.POST("", controller.SetCellAction)
	cellGroup.POST("/formula", controller.SetFormulaAction)
	cellGroup.POST("/style", controller.SetStyleAction)
	cellGroup.POST("/focus", controller.FocusCellAction)
	cellGroup.POST("/move", controller.MoveFocusAction)
	cellGroup.POST("/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.GET("/focus/ws", controller.FocusStreamAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
