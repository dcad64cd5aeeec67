package posts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/db"
	"github.com/sunnyBaby1024/blog/middleware"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

// Number of posts the sidebar widgets show
const widgetLimit = 5

// @Summary List published posts
// @Description Paginated listing of published posts, newest first, with optional category, tag and keyword filters
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param category query string false "Filter by category ID"
// @Param tag query string false "Filter by tag ID"
// @Param q query string false "Keyword matched against title and content"
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /posts [get]
func GetAllPosts(c *gin.Context) {
	page := utils.ParsePage(c)
	perPage := config.App.PostsPerPage

	query := db.DB.Model(&models.Post{}).Where("is_published = ?", true)

	if categoryID := c.Query("category"); categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			sendEmptyPage(c, page, perPage)
			return
		}
		query = query.Where("category_id = ?", categoryID)
	}

	if tagID := c.Query("tag"); tagID != "" {
		if _, err := uuid.Parse(tagID); err != nil {
			sendEmptyPage(c, page, perPage)
			return
		}
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", tagID)
	}

	if keyword := strings.TrimSpace(c.Query("q")); keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting posts")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	var posts []models.Post
	err := query.Preload("Category").Preload("Tags").
		Order("posts.created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&posts).Error
	if err != nil {
		utils.LogError(err, "Error retrieving posts")
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Posts retrieved successfully", gin.H{
		"posts":      posts,
		"pagination": utils.NewPagination(page, perPage, total),
	})
}

// A page past the end and an unknown filter id both answer with an empty
// page, never an error.
func sendEmptyPage(c *gin.Context, page, perPage int) {
	utils.SendSuccess(c, http.StatusOK, "Posts retrieved successfully", gin.H{
		"posts":      []models.Post{},
		"pagination": utils.NewPagination(page, perPage, 0),
	})
}

// @Summary Recent posts widget
// @Description The five most recently published posts
// @Tags posts
// @Produce json
// @Success 200 {object} utils.Response
// @Router /posts/recent [get]
func GetRecentPosts(c *gin.Context) {
	var posts []models.Post
	err := db.DB.Where("is_published = ?", true).
		Order("created_at DESC").Limit(widgetLimit).
		Find(&posts).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Recent posts retrieved successfully", posts)
}

// @Summary Popular posts widget
// @Description The five most viewed published posts
// @Tags posts
// @Produce json
// @Success 200 {object} utils.Response
// @Router /posts/popular [get]
func GetPopularPosts(c *gin.Context) {
	var posts []models.Post
	err := db.DB.Where("is_published = ?", true).
		Order("views DESC").Limit(widgetLimit).
		Find(&posts).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Popular posts retrieved successfully", posts)
}

// @Summary Get a post by ID
// @Description Post detail with comments and prev/next navigation; increments the view counter. Drafts 404 unless an admin session is present.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var post models.Post
	err := db.DB.Preload("Category").Preload("Tags").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		First(&post, "id = ?", postID).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Drafts stay invisible to everyone but a logged-in admin
	if !post.IsPublished && !middleware.HasAdminSession(c) {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Last-writer-wins; two racing reads may lose an increment and that is
	// acceptable for a view counter.
	if err := db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		utils.LogError(err, "Error incrementing views")
	} else {
		post.Views++
	}

	utils.SendSuccess(c, http.StatusOK, "Post retrieved successfully", gin.H{
		"post": post,
		"prev": findNeighbor(post, true),
		"next": findNeighbor(post, false),
	})
}

func findNeighbor(post models.Post, previous bool) *models.PostNeighbor {
	query := db.DB.Model(&models.Post{}).Select("id, title").
		Where("is_published = ?", true)

	if previous {
		query = query.Where("created_at < ?", post.CreatedAt).Order("created_at DESC")
	} else {
		query = query.Where("created_at > ?", post.CreatedAt).Order("created_at ASC")
	}

	var neighbor models.PostNeighbor
	if err := query.Take(&neighbor).Error; err != nil {
		return nil
	}
	return &neighbor
}

// @Summary List posts for the dashboard
// @Description All posts regardless of status, with an optional status filter
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param status query string false "all, published or draft"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/posts [get]
func GetAdminPosts(c *gin.Context) {
	page := utils.ParsePage(c)
	perPage := config.App.AdminPerPage

	query := db.DB.Model(&models.Post{})
	switch c.DefaultQuery("status", "all") {
	case "published":
		query = query.Where("is_published = ?", true)
	case "draft":
		query = query.Where("is_published = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	var posts []models.Post
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&posts).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Posts retrieved successfully", gin.H{
		"posts":      posts,
		"pagination": utils.NewPagination(page, perPage, total),
	})
}

// @Summary Create a post
// @Description Create a post; tags are resolved by name and created when missing, the summary is derived from the content
// @Tags admin
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post information"
// @Security AdminSession
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/posts [post]
func CreatePost(c *gin.Context) {
	var input models.PostCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if _, err := uuid.Parse(input.CategoryID); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category models.Category
	if err := db.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Category not found")
		return
	}

	tags, err := resolveTags(input.Tags)
	if err != nil {
		utils.LogError(err, "Error resolving tags")
		utils.SendError(c, http.StatusInternalServerError, "Error creating post")
		return
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	post := models.Post{
		Title:       input.Title,
		Content:     input.Content,
		Summary:     utils.GenerateSummary(input.Content, config.App.SummaryLength),
		CategoryID:  input.CategoryID,
		IsPublished: published,
		Tags:        tags,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogError(err, "Error creating post")
		utils.SendError(c, http.StatusInternalServerError, "Error creating post")
		return
	}

	if err := db.DB.Preload("Category").Preload("Tags").First(&post, "id = ?", post.ID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving created post")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Post created successfully", post)
}

// @Summary Update a post
// @Description Update a post; the summary is regenerated from the content on every save
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body models.PostUpdate true "Fields to update"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/posts/{id} [put]
func UpdatePost(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var input models.PostUpdate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.CategoryID != "" {
		if _, err := uuid.Parse(input.CategoryID); err != nil {
			utils.SendError(c, http.StatusBadRequest, "Invalid category id")
			return
		}
		var category models.Category
		if err := db.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			utils.SendError(c, http.StatusBadRequest, "Category not found")
			return
		}
		post.CategoryID = input.CategoryID
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	post.Summary = utils.GenerateSummary(post.Content, config.App.SummaryLength)

	if err := db.DB.Save(&post).Error; err != nil {
		utils.LogError(err, "Error updating post")
		utils.SendError(c, http.StatusInternalServerError, "Error updating post")
		return
	}

	if input.Tags != nil {
		tags, err := resolveTags(input.Tags)
		if err != nil {
			utils.LogError(err, "Error resolving tags")
			utils.SendError(c, http.StatusInternalServerError, "Error updating post")
			return
		}
		if err := db.DB.Model(&post).Association("Tags").Replace(tags); err != nil {
			utils.LogError(err, "Error replacing tags")
			utils.SendError(c, http.StatusInternalServerError, "Error updating post")
			return
		}
	}

	if err := db.DB.Preload("Category").Preload("Tags").First(&post, "id = ?", post.ID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving updated post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Post updated successfully", post)
}

// @Summary Delete a post
// @Description Delete a post along with its comments; tag associations are removed, the tags themselves stay
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		utils.LogError(err, "Error deleting post")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Post deleted successfully", nil)
}

// @Summary Upload a post cover image
// @Description Upload a cover image through Cloudinary and store its URL on the post
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post ID"
// @Param cover formData file true "Cover image"
// @Security AdminSession
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/posts/{id}/cover [post]
func UploadPostCover(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Cover image is required")
		return
	}

	imageURL, err := utils.UploadCoverImage(file)
	if err != nil {
		utils.LogError(err, "Error uploading cover image")
		utils.SendError(c, http.StatusInternalServerError, "Error uploading cover image")
		return
	}

	if err := db.DB.Model(&post).UpdateColumn("cover_url", imageURL).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error saving cover image")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Cover image uploaded successfully", gin.H{
		"coverUrl": imageURL,
	})
}

// resolveTags maps tag names to rows, creating the ones that do not exist
// yet. Matching is a case-sensitive exact match.
func resolveTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var tag models.Tag
		err := db.DB.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err := db.DB.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}
	return tags, nil
}
