package routes

import (
	controller "go-restaurant-operations/controllers"
	"go-restaurant-operations/store"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine, ops *store.Operations) {
	incomingRoutes.GET("/tables", controller.GetTables(ops))
	incomingRoutes.GET("/tables/free", controller.GetFreeTables(ops))
	incomingRoutes.GET("/tables/:table_number", controller.GetTable(ops))
	incomingRoutes.POST("/tables", controller.CreateTable(ops))
	incomingRoutes.POST("/tables/:table_number/reserve", controller.ReserveTable(ops))
	incomingRoutes.POST("/tables/:table_number/release", controller.ReleaseTable(ops))
}
