package routes

import (
	controller "go-restaurant-operations/controllers"
	"go-restaurant-operations/store"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, ops *store.Operations) {
	incomingRoutes.GET("/menus", controller.GetMenuItems(ops))
	incomingRoutes.GET("/menus/search", controller.GetMenuItem(ops))
	incomingRoutes.GET("/menus/:item_id", controller.GetMenuItem(ops))
	incomingRoutes.POST("/menus", controller.CreateMenuItem(ops))
	incomingRoutes.PATCH("/menus/:item_id/price", controller.UpdateMenuPrice(ops))
}
