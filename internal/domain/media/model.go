package media

import "time"

type Media struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Filename     string `gorm:"not null;uniqueIndex" json:"filename"`
	OriginalName string `gorm:"not null" json:"originalName"`
	URL          string `gorm:"not null" json:"url"`
	Size         int64  `gorm:"not null" json:"size"`
	MimeType     string `gorm:"not null" json:"mimeType"`
	Alt          string `json:"alt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
