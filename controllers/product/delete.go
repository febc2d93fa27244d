package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/respond"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

// DELETE /api/products/:id
func DeleteProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := svc.Remove(id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
