package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/posts"
	"github.com/sunnyBaby1024/blog/middleware"
)

func PostsRoutes(r *gin.Engine) {
	// Public listings; drafts never show up here
	r.GET("/posts", posts.GetAllPosts)
	r.GET("/posts/recent", posts.GetRecentPosts)
	r.GET("/posts/popular", posts.GetPopularPosts)
	r.GET("/posts/:id", posts.GetPostByID)

	adminPosts := r.Group("/admin/posts")
	adminPosts.Use(middleware.AdminAuth())
	{
		adminPosts.GET("", posts.GetAdminPosts)
		adminPosts.POST("", posts.CreatePost)
		adminPosts.PUT("/:id", posts.UpdatePost)
		adminPosts.DELETE("/:id", posts.DeletePost)
		adminPosts.POST("/:id/cover", posts.UploadPostCover)
	}
}
