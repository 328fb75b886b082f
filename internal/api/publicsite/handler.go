// Package publicsite serves rendered pages to the public frontend: the
// published document is parsed, collection data prefetched, and every
// block dispatched to its renderer.
package publicsite

import (
	"errors"
	"log/slog"
	"net/http"

	"blockcms/database"
	"blockcms/internal/domain/pages"
	"blockcms/internal/render"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SEOResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
	OGType      string   `json:"ogType"`
}

type RenderedPageResponse struct {
	Slug   string                 `json:"slug"`
	Title  string                 `json:"title"`
	SEO    SEOResponse            `json:"seo"`
	Blocks []render.RenderedBlock `json:"blocks"`
}

// GET /pages/:slug
func GetPage(c *gin.Context) {
	slug := c.Param("slug")

	var page pages.Page
	err := database.DB.
		First(&page, "slug = ? AND status = ?", slug, pages.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	body, err := pages.DecodeBody(page.Body)
	if err != nil {
		slog.Error("stored page body is corrupted", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	collections := render.Prefetch(c.Request.Context(), body.Blocks, render.DBSource{DB: database.DB})
	rendered := render.Page(body, collections)

	ogType := body.SEO.OGType
	if ogType == "" {
		ogType = "website"
	}
	seoTitle := body.SEO.Title
	if seoTitle == "" {
		seoTitle = page.Title
	}

	c.JSON(http.StatusOK, RenderedPageResponse{
		Slug:  page.Slug,
		Title: page.Title,
		SEO: SEOResponse{
			Title:       seoTitle,
			Description: body.SEO.Description,
			Keywords:    body.SEO.Keywords,
			OGImage:     body.SEO.OGImage,
			OGType:      ogType,
		},
		Blocks: rendered,
	})
}
