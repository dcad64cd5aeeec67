package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/comments"
	"github.com/sunnyBaby1024/blog/middleware"
)

func CommentsRoutes(r *gin.Engine) {
	// Commenting is public and unauthenticated
	r.POST("/posts/:id/comments", comments.CreateComment)

	adminComments := r.Group("/admin/comments")
	adminComments.Use(middleware.AdminAuth())
	{
		adminComments.GET("", comments.GetAdminComments)
		adminComments.DELETE("/:id", comments.DeleteComment)
	}
}
