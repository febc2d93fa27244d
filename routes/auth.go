package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/auth"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/middleware"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func SetupAuthRoutes(r *gin.Engine, auth *services.AuthService) {
	group := r.Group("/auth")
	{
		group.POST("/register", authControllers.Register(auth))
		group.POST("/login", authControllers.Login(auth))
		group.GET("/me", middleware.ValidateToken, authControllers.Me(auth))
	}
}
