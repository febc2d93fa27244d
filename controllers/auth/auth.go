package authControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/respond"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := svc.Register(req.Username, req.Password)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// POST /auth/login
func Login(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, err := svc.Login(req.Username, req.Password)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

// GET /auth/me (JWT-protected)
func Me(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("user_id")
		idStr, ok := val.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := svc.FindByID(uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
