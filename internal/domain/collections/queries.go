package collections

import "gorm.io/gorm"

// List options for collection queries. A zero Limit means no cap.

type ServiceListOptions struct {
	ActiveOnly bool
	Limit      int
}

type ProjectListOptions struct {
	ActiveOnly bool
	Category   string
	Limit      int
}

type NewsListOptions struct {
	Category string
	Limit    int
}

// ListServices returns services ordered by their explicit order field,
// ascending.
func ListServices(db *gorm.DB, opts ServiceListOptions) ([]Service, error) {
	q := db.Model(&Service{}).Order("sort_order ASC")
	if opts.ActiveOnly {
		q = q.Where("is_active = true")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	var out []Service
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects returns projects ordered by their explicit order field,
// ascending, optionally filtered by category.
func ListProjects(db *gorm.DB, opts ProjectListOptions) ([]Project, error) {
	q := db.Model(&Project{}).Order("sort_order ASC")
	if opts.ActiveOnly {
		q = q.Where("is_active = true")
	}
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	var out []Project
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListNews returns news articles by descending publish date, optionally
// filtered by category.
func ListNews(db *gorm.DB, opts NewsListOptions) ([]News, error) {
	q := db.Model(&News{}).Order("published_at DESC")
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	var out []News
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
