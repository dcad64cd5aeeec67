package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/categories"
	"github.com/sunnyBaby1024/blog/middleware"
)

func CategoriesRoutes(r *gin.Engine) {
	r.GET("/categories", categories.GetAllCategories)

	adminCategories := r.Group("/admin/categories")
	adminCategories.Use(middleware.AdminAuth())
	{
		adminCategories.POST("", categories.CreateCategory)
		adminCategories.PUT("/:id", categories.UpdateCategory)
		adminCategories.DELETE("/:id", categories.DeleteCategory)
	}
}
