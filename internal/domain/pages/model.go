package pages

import (
	"encoding/json"
	"time"

	"blockcms/internal/domain/users"
)

// Page is one slug-addressed page. The content document lives in Body as a
// single jsonb value; the whole document is the unit of storage and is
// replaced atomically on save.
type Page struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug   string `gorm:"not null;uniqueIndex" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:'DRAFT';index" json:"status"`

	Body json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"body"`

	PublishAt *time.Time `json:"publishAt,omitempty"`

	CreatedByID *string     `gorm:"type:uuid;index" json:"-"`
	CreatedBy   *users.User `gorm:"foreignKey:CreatedByID;references:ID" json:"createdBy,omitempty"`
	UpdatedByID *string     `gorm:"type:uuid" json:"-"`
	UpdatedBy   *users.User `gorm:"foreignKey:UpdatedByID;references:ID" json:"updatedBy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
