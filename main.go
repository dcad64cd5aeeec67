package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/db"
	_ "github.com/sunnyBaby1024/blog/docs"
	"github.com/sunnyBaby1024/blog/routes"
	"github.com/sunnyBaby1024/blog/utils"
)

// @title Blog API
// @version 1.0
// @description Personal blog backend: posts, categories, tags, comments and an admin dashboard
// @host localhost:8080
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}
	config.Load()

	db.InitDB()

	// Cover uploads are optional; keep serving without them
	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Cloudinary initialization failed, cover uploads are disabled")
	}

	r := routes.SetupRouter()

	utils.LogInfo("Listening on :" + config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		utils.LogError(err, "Error starting the server")
		panic(err)
	}
}
