package routes

import (
	controller "go-restaurant-operations/controllers"
	"go-restaurant-operations/store"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, ops *store.Operations) {
	incomingRoutes.GET("/orders", controller.GetActiveOrders(ops))
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder(ops))
	incomingRoutes.POST("/orders", controller.CreateOrder(ops))
	incomingRoutes.POST("/orders/:order_id/lines", controller.AddOrderLine(ops))
	incomingRoutes.POST("/orders/:order_id/cancel", controller.CancelOrder(ops))
	incomingRoutes.POST("/orders/:order_id/checkout", controller.PlaceOrderAndBill(ops))
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
