package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, auth *services.AuthService, products *services.ProductService, cart *services.CartService, orders *services.OrderService) {
	SetupAuthRoutes(r, auth)
	SetupProductRoutes(r, products)
	SetupCartRoutes(r, cart)
	SetupOrderRoutes(r, orders)
}
