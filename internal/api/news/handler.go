package newsapi

import (
	"errors"
	"net/http"
	"time"

	"blockcms/database"
	"blockcms/internal/domain/collections"
	"blockcms/internal/domain/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NewsInput struct {
	Slug        string     `json:"slug" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" binding:"required"`
	ImageURL    string     `json:"imageUrl" binding:"omitempty,uri"`
	Category    string     `json:"category"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// GET /admin/api/news
func ListNews(c *gin.Context) {
	items, err := collections.ListNews(database.DB.Preload("CreatedBy"), collections.NewsListOptions{
		Category: c.Query("category"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": items})
}

// POST /admin/api/news
func CreateNews(c *gin.Context) {
	userID := c.GetString("user_id")

	var input NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if verrs := validation.Var(input.Slug, "slug", "slug", "slug must be lowercase alphanumeric with hyphens"); len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": verrs})
		return
	}

	article := collections.News{
		Slug:        input.Slug,
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		PublishedAt: input.PublishedAt,
		CreatedByID: &userID,
		UpdatedByID: &userID,
	}
	if err := database.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An article with this slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// PUT /admin/api/news/:id
func UpdateNews(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var input NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if verrs := validation.Var(input.Slug, "slug", "slug", "slug must be lowercase alphanumeric with hyphens"); len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": verrs})
		return
	}

	var article collections.News
	if err := database.DB.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	article.Slug = input.Slug
	article.Title = input.Title
	article.Excerpt = input.Excerpt
	article.Content = input.Content
	article.ImageURL = input.ImageURL
	article.Category = input.Category
	article.PublishedAt = input.PublishedAt
	article.UpdatedByID = &userID

	if err := database.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An article with this slug already exists"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// DELETE /admin/api/news/:id
func DeleteNews(c *gin.Context) {
	res := database.DB.Delete(&collections.News{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
