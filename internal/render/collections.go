package render

import (
	"time"

	"blockcms/internal/domain/blocks"
)

// Collection-backed renderers. The item lists come pre-fetched by
// Prefetch; each renderer trims to its own limit and shapes the items per
// its display flags. An empty collection renders an explicit empty state,
// never an error.

func renderServices(data any, c Collections) map[string]any {
	d := data.(*blocks.ServicesData)

	items := make([]map[string]any, 0, len(c.Services))
	for _, s := range c.Services {
		if len(items) >= *d.Limit {
			break
		}
		item := map[string]any{
			"id":    s.ID,
			"title": s.Title,
		}
		if *d.ShowIcon && s.Icon != "" {
			item["icon"] = s.Icon
		}
		if *d.ShowDescription && s.Description != "" {
			item["description"] = s.Description
		}
		items = append(items, item)
	}

	props := map[string]any{
		"displayStyle": d.DisplayStyle,
		"columns":      *d.Columns,
		"items":        items,
		"empty":        len(items) == 0,
	}
	if d.Title != "" {
		props["title"] = d.Title
	}
	if d.Description != "" {
		props["description"] = d.Description
	}
	return props
}

func renderProjects(data any, c Collections) map[string]any {
	d := data.(*blocks.ProjectsData)

	items := make([]map[string]any, 0, len(c.Projects))
	for _, p := range c.Projects {
		if len(items) >= *d.Limit {
			break
		}
		item := map[string]any{
			"id":    p.ID,
			"title": p.Title,
		}
		if p.ImageURL != "" {
			item["image"] = p.ImageURL
		}
		if p.URL != "" {
			item["url"] = p.URL
		}
		if *d.ShowDescription && p.Description != "" {
			item["description"] = p.Description
		}
		items = append(items, item)
	}

	props := map[string]any{
		"displayStyle": d.DisplayStyle,
		"columns":      *d.Columns,
		"items":        items,
		"empty":        len(items) == 0,
	}
	if d.Title != "" {
		props["title"] = d.Title
	}
	if d.Description != "" {
		props["description"] = d.Description
	}
	return props
}

func renderNews(data any, c Collections) map[string]any {
	d := data.(*blocks.NewsData)

	items := make([]map[string]any, 0, len(c.News))
	for _, n := range c.News {
		if len(items) >= *d.Limit {
			break
		}
		item := map[string]any{
			"id":    n.ID,
			"slug":  n.Slug,
			"title": n.Title,
		}
		if *d.ShowExcerpt && n.Excerpt != "" {
			item["excerpt"] = n.Excerpt
		}
		if *d.ShowImage && n.ImageURL != "" {
			item["image"] = n.ImageURL
		}
		if *d.ShowDate && n.PublishedAt != nil {
			item["publishedAt"] = n.PublishedAt.Format(time.RFC3339)
		}
		items = append(items, item)
	}

	props := map[string]any{
		"displayStyle": d.DisplayStyle,
		"columns":      *d.Columns,
		"items":        items,
		"empty":        len(items) == 0,
	}
	if d.Title != "" {
		props["title"] = d.Title
	}
	if d.Description != "" {
		props["description"] = d.Description
	}
	return props
}
