package categories

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

// @Summary List categories
// @Description All categories with their published-post counts
// @Tags categories
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	var categories []models.CategoryWithCount
	err := db.DB.Model(&models.Category{}).
		Select("categories.*, count(posts.id) as post_count").
		Joins("LEFT JOIN posts ON posts.category_id = categories.id AND posts.is_published = ?", true).
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		utils.LogError(err, "Error retrieving categories")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving categories")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param category body models.CategoryCreate true "Category information"
// @Security AdminSession
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var input models.CategoryCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.SendError(c, http.StatusBadRequest, "The category name cannot be empty")
		return
	}

	var existing models.Category
	err := db.DB.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "A category with this name already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error checking the category name")
		return
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		utils.LogError(err, "Error creating category")
		utils.SendError(c, http.StatusInternalServerError, "Error creating category")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryCreate true "Category information"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := db.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Category not found")
		return
	}

	var input models.CategoryCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.SendError(c, http.StatusBadRequest, "The category name cannot be empty")
		return
	}

	var existing models.Category
	err := db.DB.Where("name = ? AND id <> ?", input.Name, category.ID).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "A category with this name already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error checking the category name")
		return
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := db.DB.Save(&category).Error; err != nil {
		utils.LogError(err, "Error updating category")
		utils.SendError(c, http.StatusInternalServerError, "Error updating category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// @Summary Delete a category
// @Description Deletion is blocked while posts still reference the category
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := db.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Category not found")
		return
	}

	var postCount int64
	if err := db.DB.Model(&models.Post{}).Where("category_id = ?", category.ID).Count(&postCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error checking category usage")
		return
	}
	if postCount > 0 {
		utils.SendError(c, http.StatusConflict, "The category still has posts and cannot be deleted")
		return
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		utils.LogError(err, "Error deleting category")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
