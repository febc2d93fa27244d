package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/order"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/middleware"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func SetupOrderRoutes(r *gin.Engine, orders *services.OrderService) {
	group := r.Group("/api/orders")
	{
		// websocket endpoint for real-time order updates
		group.GET("/ws", orderControllers.OrderWebSocketHandler)

		group.POST("/", middleware.EnsureSession, middleware.OptionalAuth, orderControllers.CreateOrder(orders))
		group.GET("/", orderControllers.GetAllOrders(orders))
		group.GET("/:id", orderControllers.GetOrderByID(orders))
	}
}
