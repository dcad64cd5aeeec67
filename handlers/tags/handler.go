package tags

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/db"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

// @Summary List tags
// @Description All tags with their published-post counts, for the tag cloud
// @Tags tags
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tags [get]
func GetAllTags(c *gin.Context) {
	var tags []models.TagWithCount
	err := db.DB.Model(&models.Tag{}).
		Select("tags.*, count(posts.id) as post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("LEFT JOIN posts ON posts.id = post_tags.post_id AND posts.is_published = ?", true).
		Group("tags.id").
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		utils.LogError(err, "Error retrieving tags")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving tags")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Tags retrieved successfully", tags)
}

// @Summary Create a tag
// @Tags admin
// @Accept json
// @Produce json
// @Param tag body models.TagCreate true "Tag information"
// @Security AdminSession
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/tags [post]
func CreateTag(c *gin.Context) {
	var input models.TagCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.SendError(c, http.StatusBadRequest, "The tag name cannot be empty")
		return
	}

	var existing models.Tag
	err := db.DB.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "A tag with this name already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error checking the tag name")
		return
	}

	tag := models.Tag{Name: input.Name}

	if err := db.DB.Create(&tag).Error; err != nil {
		utils.LogError(err, "Error creating tag")
		utils.SendError(c, http.StatusInternalServerError, "Error creating tag")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Tag created successfully", tag)
}

// @Summary Update a tag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param tag body models.TagCreate true "Tag information"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/tags/{id} [put]
func UpdateTag(c *gin.Context) {
	var tag models.Tag
	if err := db.DB.First(&tag, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Tag not found")
		return
	}

	var input models.TagCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.SendError(c, http.StatusBadRequest, "The tag name cannot be empty")
		return
	}

	var existing models.Tag
	err := db.DB.Where("name = ? AND id <> ?", input.Name, tag.ID).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "A tag with this name already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error checking the tag name")
		return
	}

	tag.Name = input.Name

	if err := db.DB.Save(&tag).Error; err != nil {
		utils.LogError(err, "Error updating tag")
		utils.SendError(c, http.StatusInternalServerError, "Error updating tag")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Tag updated successfully", tag)
}

// @Summary Delete a tag
// @Description Removes the tag and its post associations; posts themselves are untouched
// @Tags admin
// @Produce json
// @Param id path string true "Tag ID"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	var tag models.Tag
	if err := db.DB.First(&tag, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Tag not found")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		utils.LogError(err, "Error deleting tag")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting tag")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Tag deleted successfully", nil)
}
