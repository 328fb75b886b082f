package render

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"blockcms/internal/domain/blocks"
	"blockcms/internal/domain/collections"
)

// Collections carries the pre-fetched item lists a page render needs. A
// collection that no block references, or whose fetch failed, is left
// empty.
type Collections struct {
	Services []collections.Service
	Projects []collections.Project
	News     []collections.News
}

// Source supplies collection data for rendering.
type Source interface {
	ListServices(ctx context.Context, opts collections.ServiceListOptions) ([]collections.Service, error)
	ListProjects(ctx context.Context, opts collections.ProjectListOptions) ([]collections.Project, error)
	ListNews(ctx context.Context, opts collections.NewsListOptions) ([]collections.News, error)
}

// Prefetch inspects the block list once, determines which collections are
// referenced, and fetches each needed collection at most once, in
// parallel. When several blocks of the same collection type exist on one
// page, the first block's limit and category win; that is a documented
// simplification, not a per-block guarantee. A failed fetch degrades to an
// empty list for that collection rather than aborting the page.
func Prefetch(ctx context.Context, blks []blocks.Block, src Source) Collections {
	var (
		servicesOpts *collections.ServiceListOptions
		projectsOpts *collections.ProjectListOptions
		newsOpts     *collections.NewsListOptions
	)

	for _, b := range blks {
		t := blocks.Type(b.Type)
		if !blocks.CollectionBacked(t) {
			continue
		}
		switch t {
		case blocks.TypeServices:
			if servicesOpts != nil {
				continue
			}
			var d blocks.ServicesData
			decodeSettings(b.Data, &d)
			servicesOpts = &collections.ServiceListOptions{ActiveOnly: true, Limit: intOr(d.Limit, 6)}
		case blocks.TypeProjects:
			if projectsOpts != nil {
				continue
			}
			var d blocks.ProjectsData
			decodeSettings(b.Data, &d)
			projectsOpts = &collections.ProjectListOptions{ActiveOnly: true, Category: d.Category, Limit: intOr(d.Limit, 6)}
		case blocks.TypeNews:
			if newsOpts != nil {
				continue
			}
			var d blocks.NewsData
			decodeSettings(b.Data, &d)
			newsOpts = &collections.NewsListOptions{Category: d.Category, Limit: intOr(d.Limit, 6)}
		}
	}

	var (
		out Collections
		wg  sync.WaitGroup
	)

	if servicesOpts != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := src.ListServices(ctx, *servicesOpts)
			if err != nil {
				slog.Error("services prefetch failed, rendering empty", "error", err)
				return
			}
			out.Services = items
		}()
	}
	if projectsOpts != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := src.ListProjects(ctx, *projectsOpts)
			if err != nil {
				slog.Error("projects prefetch failed, rendering empty", "error", err)
				return
			}
			out.Projects = items
		}()
	}
	if newsOpts != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := src.ListNews(ctx, *newsOpts)
			if err != nil {
				slog.Error("news prefetch failed, rendering empty", "error", err)
				return
			}
			out.News = items
		}()
	}

	wg.Wait()
	return out
}

func decodeSettings(raw json.RawMessage, into any) {
	if len(raw) == 0 {
		return
	}
	// Best effort: a malformed payload falls back to default fetch options,
	// the block itself will surface as an error fallback at dispatch.
	_ = json.Unmarshal(raw, into)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
