package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/auth"
	"github.com/sunnyBaby1024/blog/middleware"
)

func AuthRoutes(r *gin.Engine) {
	r.GET("/admin/login", auth.LoginPrompt)
	r.POST("/admin/login", auth.Login)
	r.GET("/admin/logout", auth.Logout)

	protected := r.Group("/admin")
	protected.Use(middleware.AdminAuth())
	{
		protected.PUT("/password", auth.UpdatePassword)
	}
}
