package servicesapi

import (
	"errors"
	"net/http"

	"blockcms/database"
	"blockcms/internal/domain/collections"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order" binding:"min=0"`
	IsActive    *bool  `json:"isActive"`
}

// GET /admin/api/services
func ListServices(c *gin.Context) {
	items, err := collections.ListServices(database.DB.Preload("CreatedBy"), collections.ServiceListOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

// POST /admin/api/services
func CreateService(c *gin.Context) {
	userID := c.GetString("user_id")

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	svc := collections.Service{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Order:       input.Order,
		IsActive:    active,
		CreatedByID: &userID,
		UpdatedByID: &userID,
	}
	if err := database.DB.Create(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// PUT /admin/api/services/:id
func UpdateService(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var svc collections.Service
	if err := database.DB.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}

	svc.Title = input.Title
	svc.Description = input.Description
	svc.Icon = input.Icon
	svc.Order = input.Order
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	svc.UpdatedByID = &userID

	if err := database.DB.Save(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DELETE /admin/api/services/:id
func DeleteService(c *gin.Context) {
	res := database.DB.Delete(&collections.Service{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
