package pagesapi

import (
	"errors"
	"net/http"
	"time"

	"blockcms/database"
	"blockcms/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /admin/api/pages?status=DRAFT
func ListPages(c *gin.Context) {
	q := database.DB.
		Omit("body").
		Preload("CreatedBy").
		Order("updated_at DESC")

	if status := c.Query("status"); status != "" {
		if !pages.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		q = q.Where("status = ?", status)
	}

	var all []pages.Page
	err := q.Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := ListPagesResponse{Pages: make([]PageSummaryDTO, 0, len(all))}
	for _, p := range all {
		out.Pages = append(out.Pages, toSummaryDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/api/pages/:id
func GetPage(c *gin.Context) {
	id := c.Param("id")

	var page pages.Page
	err := database.DB.Preload("CreatedBy").First(&page, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": toPageDTO(page)})
}

// POST /admin/api/pages
func CreatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input pages.PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	validated, verrs := pages.ValidateInput(input)
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": verrs})
		return
	}

	body, err := pages.EncodeBody(validated.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode page body"})
		return
	}

	uid := userID
	page := pages.Page{
		Slug:        validated.Slug,
		Title:       validated.Title,
		Status:      validated.Status,
		Body:        body,
		PublishAt:   validated.PublishAt,
		CreatedByID: &uid,
		UpdatedByID: &uid,
	}

	// Slug uniqueness is enforced by the unique index; surface the
	// conflict before hitting it for a friendlier error.
	var count int64
	if err := database.DB.Model(&pages.Page{}).Where("slug = ?", validated.Slug).Count(&count).Error; err == nil && count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A page with this slug already exists"})
		return
	}

	if err := database.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A page with this slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": toPageDTO(page)})
}

// PUT /admin/api/pages/:id
//
// The admin form holds the full document and replaces it wholesale; there
// are no partial-block patches.
func UpdatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var input pages.PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	validated, verrs := pages.ValidateInput(input)
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": verrs})
		return
	}

	body, err := pages.EncodeBody(validated.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode page body"})
		return
	}

	var page pages.Page
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&page, "id = ?", id).Error; err != nil {
			return err
		}

		if page.Slug != validated.Slug {
			var count int64
			if err := tx.Model(&pages.Page{}).
				Where("slug = ? AND id <> ?", validated.Slug, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errSlugTaken
			}
		}

		uid := userID
		page.Slug = validated.Slug
		page.Title = validated.Title
		page.Status = validated.Status
		page.Body = body
		page.PublishAt = validated.PublishAt
		page.UpdatedByID = &uid
		return tx.Save(&page).Error
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		case errors.Is(txErr, errSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "A page with this slug already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": toPageDTO(page)})
}

var errSlugTaken = errors.New("slug taken")

// DELETE /admin/api/pages/:id
func DeletePage(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&pages.Page{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /admin/api/pages/:id/publish
func PublishPage(c *gin.Context) {
	setStatus(c, pages.StatusPublished)
}

// POST /admin/api/pages/:id/unpublish
func UnpublishPage(c *gin.Context) {
	setStatus(c, pages.StatusDraft)
}

// POST /admin/api/pages/:id/archive
func ArchivePage(c *gin.Context) {
	setStatus(c, pages.StatusArchived)
}

// setStatus performs a status-only transition. Any direction is allowed
// and the body is not revalidated: only slug/title/body changes re-trigger
// document validation.
func setStatus(c *gin.Context, status string) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	updates := map[string]any{
		"status":        status,
		"updated_by_id": userID,
	}
	if status == pages.StatusPublished {
		now := time.Now()
		updates["publish_at"] = &now
	}

	res := database.DB.Model(&pages.Page{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var page pages.Page
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": toPageDTO(page)})
}
