package routes

import (
	controller "go-restaurant-operations/controllers"
	"go-restaurant-operations/store"

	"github.com/gin-gonic/gin"
)

func BillRoutes(incomingRoutes *gin.Engine, ops *store.Operations) {
	incomingRoutes.GET("/bills/:bill_id", controller.GetBill(ops))
	incomingRoutes.GET("/orders/:order_id/bill", controller.GetBillForOrder(ops))
	incomingRoutes.POST("/orders/:order_id/bill", controller.GenerateBill(ops))
	incomingRoutes.POST("/bills/:bill_id/settle", controller.SettleBill(ops))
}
