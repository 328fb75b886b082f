// Package render turns a validated page document into presentation-ready
// output. Each block dispatches through a registry keyed by its type tag;
// a block that cannot be rendered degrades to a marked fallback without
// affecting its siblings.
package render

import (
	"log/slog"

	"blockcms/internal/domain/blocks"
	"blockcms/internal/domain/pages"
)

// Terminal states of a single block dispatch.
const (
	StateRendered = "rendered"
	StateUnknown  = "unknown"
	StateError    = "error"
)

// RenderedBlock is the output for one block. Props is the resolved view
// model for State "rendered"; fallback states carry a short Message
// instead.
type RenderedBlock struct {
	BlockID  string           `json:"blockId"`
	Type     string           `json:"type"`
	State    string           `json:"state"`
	Settings *blocks.Settings `json:"settings,omitempty"`
	Props    map[string]any   `json:"props,omitempty"`
	Message  string           `json:"message,omitempty"`
}

type rendererFunc func(data any, c Collections) map[string]any

var renderers = map[blocks.Type]rendererFunc{
	blocks.TypeHero:     renderHero,
	blocks.TypeServices: renderServices,
	blocks.TypeProjects: renderProjects,
	blocks.TypeNews:     renderNews,
	blocks.TypeRichText: renderRichText,
	blocks.TypeGallery:  renderGallery,
	blocks.TypeContact:  renderContact,
}

// Page renders every block of a page body in document order. Output length
// always equals the number of blocks; failed blocks appear as fallbacks in
// their original position.
func Page(body pages.PageBody, c Collections) []RenderedBlock {
	out := make([]RenderedBlock, 0, len(body.Blocks))
	for _, b := range body.Blocks {
		out = append(out, Block(b, c))
	}
	return out
}

// Block dispatches one block to its type's renderer. Unknown types and
// renderer failures produce distinct fallbacks; neither aborts the caller.
func Block(b blocks.Block, c Collections) (rb RenderedBlock) {
	rb = RenderedBlock{BlockID: b.ID, Type: b.Type, Settings: b.Settings}

	// A renderer must never take the page down with it.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("block renderer panicked", "blockId", b.ID, "type", b.Type, "panic", r)
			rb.State = StateError
			rb.Props = nil
			rb.Message = "This block could not be rendered."
		}
	}()

	data, verrs, err := blocks.Validate(b, "data")
	if err != nil {
		// Unknown type: visible fallback, page rendering continues.
		slog.Warn("unknown block type", "blockId", b.ID, "type", b.Type)
		rb.State = StateUnknown
		rb.Message = "Unknown block type: " + b.Type
		return rb
	}
	if len(verrs) > 0 {
		slog.Error("stored block failed schema validation", "blockId", b.ID, "type", b.Type, "errors", len(verrs))
		rb.State = StateError
		rb.Message = "This block could not be rendered."
		return rb
	}

	fn, ok := renderers[blocks.Type(b.Type)]
	if !ok {
		slog.Warn("block type has no renderer", "blockId", b.ID, "type", b.Type)
		rb.State = StateUnknown
		rb.Message = "Unknown block type: " + b.Type
		return rb
	}

	rb.State = StateRendered
	rb.Props = fn(data, c)
	return rb
}
