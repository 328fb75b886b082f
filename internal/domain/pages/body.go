package pages

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/creasty/defaults"

	"blockcms/internal/domain/blocks"
	"blockcms/internal/domain/validation"
)

// SEO metadata carried by every page document.
type SEO struct {
	Title       string   `json:"title" validate:"required,max=60"`
	Description string   `json:"description" validate:"required,max=160"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty" validate:"omitempty,url"`
	OGType      string   `json:"ogType,omitempty" default:"website" validate:"oneof=website article blog"`
}

// PageBody is the full content document for one page: a format version, SEO
// metadata and an ordered list of blocks. Block order is rendering order.
type PageBody struct {
	Version *int           `json:"version,omitempty" default:"1" validate:"min=1"`
	SEO     SEO            `json:"seo"`
	Blocks  []blocks.Block `json:"blocks" validate:"-"`
}

// PageInput is the create/update payload for a page. Saves replace the
// whole document; there are no partial-block patches.
type PageInput struct {
	Slug      string     `json:"slug" validate:"required,max=100,slug"`
	Title     string     `json:"title" validate:"required,max=200"`
	Status    string     `json:"status,omitempty" default:"DRAFT" validate:"oneof=DRAFT PUBLISHED ARCHIVED"`
	Body      PageBody   `json:"body"`
	PublishAt *time.Time `json:"publishAt,omitempty"`
}

// ValidateInput validates a whole page document. Every block is checked
// against its type's schema and ALL failing blocks are reported; the
// document is rejected if any one of them fails. On success the returned
// input is normalized: declared defaults are filled in, both on the shell
// and inside each block's data payload.
func ValidateInput(in PageInput) (PageInput, []validation.Error) {
	if err := defaults.Set(&in); err != nil {
		return in, []validation.Error{{Path: "", Message: "failed to apply defaults"}}
	}

	errs := validation.Check(in, "")

	normalized := make([]blocks.Block, len(in.Body.Blocks))
	for i, b := range in.Body.Blocks {
		prefix := fmt.Sprintf("body.blocks.%d", i)

		data, verrs, err := blocks.Validate(b, prefix)
		if err != nil {
			// Unknown type is recoverable at render time, but a document
			// being saved must not contain blocks nothing can render.
			errs = append(errs, validation.Error{
				Path:    prefix + ".type",
				Message: fmt.Sprintf("unknown block type %q", b.Type),
			})
			continue
		}
		if len(verrs) > 0 {
			errs = append(errs, verrs...)
			continue
		}

		raw, mErr := json.Marshal(data)
		if mErr != nil {
			errs = append(errs, validation.Error{Path: prefix + ".data", Message: "failed to encode block data"})
			continue
		}
		b.Data = raw
		normalized[i] = b
	}

	if len(errs) > 0 {
		return in, errs
	}

	in.Body.Blocks = normalized
	return in, nil
}

// EncodeBody serializes a page body for storage.
func EncodeBody(body PageBody) (json.RawMessage, error) {
	return json.Marshal(body)
}

// DecodeBody parses a stored page document. Stored documents have already
// passed ValidateInput, so this only fails on corrupted storage.
func DecodeBody(raw json.RawMessage) (PageBody, error) {
	var body PageBody
	if len(raw) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return body, fmt.Errorf("decode page body: %w", err)
	}
	return body, nil
}
