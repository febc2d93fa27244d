package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/respond"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

type CreateOrderRequest struct {
	UserID string `json:"user_id"` // optional explicit owner
}

// POST /api/orders
func CreateOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		userID := req.UserID
		if userID == "" {
			// Authenticated requests own the order under their user id.
			if v, ok := c.Get("user_id"); ok {
				if s, ok := v.(string); ok {
					userID = s
				}
			}
		}

		order, err := svc.CreateFromCart(c.GetString("session_id"), userID)
		if err != nil {
			respond.Error(c, err)
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetAllOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.FindAll()
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": orders})
	}
}

// GET /api/orders/:id
func GetOrderByID(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := svc.FindOne(uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
