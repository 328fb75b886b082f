package render

import (
	"context"

	"gorm.io/gorm"

	"blockcms/internal/domain/collections"
)

// DBSource serves collection data straight from the database.
type DBSource struct {
	DB *gorm.DB
}

func (s DBSource) ListServices(ctx context.Context, opts collections.ServiceListOptions) ([]collections.Service, error) {
	return collections.ListServices(s.DB.WithContext(ctx), opts)
}

func (s DBSource) ListProjects(ctx context.Context, opts collections.ProjectListOptions) ([]collections.Project, error) {
	return collections.ListProjects(s.DB.WithContext(ctx), opts)
}

func (s DBSource) ListNews(ctx context.Context, opts collections.NewsListOptions) ([]collections.News, error) {
	return collections.ListNews(s.DB.WithContext(ctx), opts)
}
