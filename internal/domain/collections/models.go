package collections

import (
	"time"

	"blockcms/internal/domain/users"
)

// Service is one entry of the services collection, shown by services
// blocks. Explicit Order drives public listing order.
type Service struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	CreatedByID *string     `gorm:"type:uuid" json:"-"`
	CreatedBy   *users.User `gorm:"foreignKey:CreatedByID;references:ID" json:"createdBy,omitempty"`
	UpdatedByID *string     `gorm:"type:uuid" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project is one entry of the projects collection.
type Project struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `gorm:"index" json:"category,omitempty"`
	Order       int    `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	CreatedByID *string     `gorm:"type:uuid" json:"-"`
	CreatedBy   *users.User `gorm:"foreignKey:CreatedByID;references:ID" json:"createdBy,omitempty"`
	UpdatedByID *string     `gorm:"type:uuid" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// News is one article of the news collection. Public listing is by
// descending publish date.
type News struct {
	ID          string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string     `gorm:"not null;uniqueIndex" json:"slug"`
	Title       string     `gorm:"not null" json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `gorm:"not null" json:"content"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    string     `gorm:"index" json:"category,omitempty"`
	PublishedAt *time.Time `gorm:"index" json:"publishedAt,omitempty"`

	CreatedByID *string     `gorm:"type:uuid" json:"-"`
	CreatedBy   *users.User `gorm:"foreignKey:CreatedByID;references:ID" json:"createdBy,omitempty"`
	UpdatedByID *string     `gorm:"type:uuid" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
