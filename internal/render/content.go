package render

import (
	"github.com/microcosm-cc/bluemonday"

	"blockcms/internal/domain/blocks"
)

// HTML rich text is sanitized before it ever reaches a page. Markdown is
// passed through as-is; it is the frontend's job to render it.
var richTextPolicy = bluemonday.UGCPolicy()

func renderRichText(data any, _ Collections) map[string]any {
	d := data.(*blocks.RichTextData)

	content := d.Content
	if d.Format == "html" {
		content = richTextPolicy.Sanitize(content)
	}
	return map[string]any{
		"content": content,
		"format":  d.Format,
	}
}

func renderGallery(data any, _ Collections) map[string]any {
	d := data.(*blocks.GalleryData)

	images := make([]map[string]any, 0, len(d.Images))
	for _, img := range d.Images {
		entry := map[string]any{
			"id":  img.ID,
			"url": img.URL,
		}
		if img.Alt != "" {
			entry["alt"] = img.Alt
		}
		if *d.ShowCaptions && img.Caption != "" {
			entry["caption"] = img.Caption
		}
		if img.Thumbnail != "" {
			entry["thumbnail"] = img.Thumbnail
		}
		images = append(images, entry)
	}

	props := map[string]any{
		"images":       images,
		"displayStyle": d.DisplayStyle,
		"columns":      *d.Columns,
		"lightbox":     *d.Lightbox,
	}
	if d.Title != "" {
		props["title"] = d.Title
	}
	return props
}

func renderContact(data any, _ Collections) map[string]any {
	d := data.(*blocks.ContactData)

	props := map[string]any{
		"title":   d.Title,
		"ctaText": d.CTAText,
	}
	if d.Description != "" {
		props["description"] = d.Description
	}
	if d.CTALink != "" {
		props["ctaLink"] = d.CTALink
	}
	if *d.ShowEmail && d.Email != "" {
		props["email"] = d.Email
	}
	if *d.ShowPhone && d.Phone != "" {
		props["phone"] = d.Phone
	}
	if *d.ShowAddress && d.Address != "" {
		props["address"] = d.Address
	}
	return props
}
