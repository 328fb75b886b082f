package pagesapi

import (
	"encoding/json"
	"time"

	"blockcms/internal/domain/pages"
	"blockcms/internal/domain/users"
)

type UserRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PageSummaryDTO is the list-view shape: no body.
type PageSummaryDTO struct {
	ID        string      `json:"id"`
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	CreatedBy *UserRefDTO `json:"createdBy,omitempty"`
}

type PageDTO struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Status    string          `json:"status"`
	Body      json.RawMessage `json:"body"`
	PublishAt *time.Time      `json:"publishAt,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	CreatedBy *UserRefDTO     `json:"createdBy,omitempty"`
}

type ListPagesResponse struct {
	Pages []PageSummaryDTO `json:"pages"`
}

func userRef(u *users.User) *UserRefDTO {
	if u == nil {
		return nil
	}
	return &UserRefDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toSummaryDTO(p pages.Page) PageSummaryDTO {
	return PageSummaryDTO{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		CreatedBy: userRef(p.CreatedBy),
	}
}

func toPageDTO(p pages.Page) PageDTO {
	return PageDTO{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Status:    p.Status,
		Body:      p.Body,
		PublishAt: p.PublishAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		CreatedBy: userRef(p.CreatedBy),
	}
}
