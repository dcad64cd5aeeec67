package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/handlers/dashboard"
	"github.com/sunnyBaby1024/blog/middleware"
)

func DashboardRoutes(r *gin.Engine) {
	adminDashboard := r.Group("/admin/dashboard")
	adminDashboard.Use(middleware.AdminAuth())
	adminDashboard.GET("", dashboard.GetDashboard)
}
