package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/tags"
	"github.com/sunnyBaby1024/blog/middleware"
)

func TagsRoutes(r *gin.Engine) {
	r.GET("/tags", tags.GetAllTags)

	adminTags := r.Group("/admin/tags")
	adminTags.Use(middleware.AdminAuth())
	{
		adminTags.POST("", tags.CreateTag)
		adminTags.PUT("/:id", tags.UpdateTag)
		adminTags.DELETE("/:id", tags.DeleteTag)
	}
}
