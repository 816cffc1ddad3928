package routes

import (
	"modugarden-backend/handlers/categories"
	"modugarden-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CategoriesRoutes(r *gin.Engine) {
	r.GET("/categories", categories.GetAllCategories)

	// Admin only
	categoriesPrivateRoutes := r.Group("/categories")
	categoriesPrivateRoutes.Use(middleware.JWTAuth())
	categoriesPrivateRoutes.Use(middleware.AdminAuth())
	{
		categoriesPrivateRoutes.POST("", categories.CreateCategory)
		categoriesPrivateRoutes.PUT("/:id", categories.UpdateCategory)
		categoriesPrivateRoutes.DELETE("/:id", categories.DeleteCategory)
	}
}
