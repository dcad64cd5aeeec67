package comments

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/db"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

// @Summary Comment on a post
// @Description Public, unmoderated comment creation. The target post must exist and be published.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body models.CommentCreate true "Comment information"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var input models.CommentCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Author = strings.TrimSpace(input.Author)
	input.Email = strings.TrimSpace(input.Email)
	input.Content = strings.TrimSpace(input.Content)

	if input.Author == "" || input.Content == "" {
		utils.SendError(c, http.StatusBadRequest, "Author and content cannot be empty")
		return
	}

	if !strings.Contains(input.Email, "@") || !strings.Contains(input.Email[strings.LastIndex(input.Email, "@")+1:], ".") {
		utils.SendError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	// Commenting on a draft or a missing post is rejected the same way
	var post models.Post
	err := db.DB.Where("id = ? AND is_published = ?", postID, true).First(&post).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		Author:  input.Author,
		Email:   input.Email,
		Content: input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogError(err, "Error creating comment")
		utils.SendError(c, http.StatusInternalServerError, "Error creating comment")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Comment created successfully", comment)
}

// @Summary List comments for the dashboard
// @Description All comments, newest first, paginated
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/comments [get]
func GetAdminComments(c *gin.Context) {
	page := utils.ParsePage(c)
	perPage := config.App.AdminPerPage

	var total int64
	if err := db.DB.Model(&models.Comment{}).Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving comments")
		return
	}

	var comments []models.Comment
	err := db.DB.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&comments).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving comments")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Comments retrieved successfully", gin.H{
		"comments":   comments,
		"pagination": utils.NewPagination(page, perPage, total),
	})
}

// @Summary Delete a comment
// @Tags admin
// @Produce json
// @Param id path string true "Comment ID"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		utils.LogError(err, "Error deleting comment")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting comment")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Comment deleted successfully", nil)
}
