package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnyBaby1024/blog/db"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

const recentLimit = 5

type stats struct {
	TotalPosts      int64 `json:"totalPosts"`
	PublishedPosts  int64 `json:"publishedPosts"`
	DraftPosts      int64 `json:"draftPosts"`
	TotalCategories int64 `json:"totalCategories"`
	TotalTags       int64 `json:"totalTags"`
	TotalComments   int64 `json:"totalComments"`
}

// @Summary Dashboard overview
// @Description Content counts plus the most recent posts and comments
// @Tags admin
// @Produce json
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/dashboard [get]
func GetDashboard(c *gin.Context) {
	var s stats

	if err := db.DB.Model(&models.Post{}).Count(&s.TotalPosts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}
	if err := db.DB.Model(&models.Post{}).Where("is_published = ?", true).Count(&s.PublishedPosts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}
	s.DraftPosts = s.TotalPosts - s.PublishedPosts
	if err := db.DB.Model(&models.Category{}).Count(&s.TotalCategories).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}
	if err := db.DB.Model(&models.Tag{}).Count(&s.TotalTags).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}
	if err := db.DB.Model(&models.Comment{}).Count(&s.TotalComments).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}

	var recentPosts []models.Post
	if err := db.DB.Order("created_at DESC").Limit(recentLimit).Find(&recentPosts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}

	var recentComments []models.Comment
	if err := db.DB.Order("created_at DESC").Limit(recentLimit).Find(&recentComments).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving dashboard data")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Dashboard data retrieved successfully", gin.H{
		"stats":          s,
		"recentPosts":    recentPosts,
		"recentComments": recentComments,
	})
}
