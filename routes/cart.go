package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/cart"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/middleware"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func SetupCartRoutes(r *gin.Engine, cart *services.CartService) {
	group := r.Group("/api/cart")
	group.Use(middleware.EnsureSession)
	{
		group.GET("/", cartControllers.GetCart(cart))
		group.DELETE("/", cartControllers.ClearCart(cart))
		group.GET("/items", cartControllers.GetCartItems(cart))
		group.POST("/items", cartControllers.AddItem(cart))
		group.PATCH("/items/:productId", cartControllers.UpdateItem(cart))
		group.DELETE("/items/:productId", cartControllers.RemoveItem(cart))
	}
}
