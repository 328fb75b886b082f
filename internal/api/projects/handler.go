package projectsapi

import (
	"errors"
	"net/http"

	"blockcms/database"
	"blockcms/internal/domain/collections"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,uri"`
	URL         string `json:"url" binding:"omitempty,url"`
	Category    string `json:"category"`
	Order       int    `json:"order" binding:"min=0"`
	IsActive    *bool  `json:"isActive"`
}

// GET /admin/api/projects
func ListProjects(c *gin.Context) {
	items, err := collections.ListProjects(database.DB.Preload("CreatedBy"), collections.ProjectListOptions{
		Category: c.Query("category"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// POST /admin/api/projects
func CreateProject(c *gin.Context) {
	userID := c.GetString("user_id")

	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	project := collections.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		URL:         input.URL,
		Category:    input.Category,
		Order:       input.Order,
		IsActive:    active,
		CreatedByID: &userID,
		UpdatedByID: &userID,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// PUT /admin/api/projects/:id
func UpdateProject(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project collections.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	project.Title = input.Title
	project.Description = input.Description
	project.ImageURL = input.ImageURL
	project.URL = input.URL
	project.Category = input.Category
	project.Order = input.Order
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}
	project.UpdatedByID = &userID

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// DELETE /admin/api/projects/:id
func DeleteProject(c *gin.Context) {
	res := database.DB.Delete(&collections.Project{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
