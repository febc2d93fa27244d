package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/controllers/product"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func SetupProductRoutes(r *gin.Engine, products *services.ProductService) {
	group := r.Group("/api/products")
	{
		group.GET("/", productControllers.GetProducts(products))
		group.GET("/export", productControllers.ExportProductsToExcel(products))
		group.GET("/:id", productControllers.GetProductByID(products))
		group.POST("/", productControllers.CreateProduct(products))
		group.PUT("/:id", productControllers.UpdateProduct(products))
		group.DELETE("/:id", productControllers.DeleteProduct(products))
	}
}
