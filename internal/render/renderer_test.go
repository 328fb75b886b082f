package render

import (
	"encoding/json"
	"strings"
	"testing"

	"blockcms/internal/domain/blocks"
	"blockcms/internal/domain/collections"
	"blockcms/internal/domain/pages"
)

func heroBlock(id, title string) blocks.Block {
	return blocks.Block{
		ID:   id,
		Type: string(blocks.TypeHero),
		Data: json.RawMessage(`{"title":"` + title + `"}`),
	}
}

func TestPageRendersBlocksInOrder(t *testing.T) {
	body := pages.PageBody{
		Blocks: []blocks.Block{
			heroBlock("b1", "Welcome"),
			{ID: "b2", Type: "video", Data: json.RawMessage(`{}`)},
			{ID: "b3", Type: string(blocks.TypeServices), Data: json.RawMessage(`{}`)},
		},
	}
	c := Collections{
		Services: []collections.Service{
			{ID: "s1", Title: "Design"},
			{ID: "s2", Title: "Development"},
		},
	}

	out := Page(body, c)
	if len(out) != 3 {
		t.Fatalf("rendered %d blocks, want 3", len(out))
	}

	if out[0].BlockID != "b1" || out[0].State != StateRendered {
		t.Errorf("block 0 = %+v, want rendered b1", out[0])
	}
	if out[0].Props["title"] != "Welcome" {
		t.Errorf("hero title = %v", out[0].Props["title"])
	}

	if out[1].BlockID != "b2" || out[1].State != StateUnknown {
		t.Errorf("block 1 = %+v, want unknown fallback", out[1])
	}
	if !strings.Contains(out[1].Message, "video") {
		t.Errorf("unknown fallback message %q does not name the type", out[1].Message)
	}
	if out[1].Props != nil {
		t.Error("unknown fallback carries props")
	}

	if out[2].BlockID != "b3" || out[2].State != StateRendered {
		t.Errorf("block 2 = %+v, want rendered services", out[2])
	}
	items, ok := out[2].Props["items"].([]map[string]any)
	if !ok || len(items) != 2 {
		t.Fatalf("services items = %v", out[2].Props["items"])
	}
	if items[0]["title"] != "Design" || items[1]["title"] != "Development" {
		t.Errorf("service items out of order: %v", items)
	}
}

func TestBlockErrorIsolation(t *testing.T) {
	body := pages.PageBody{
		Blocks: []blocks.Block{
			heroBlock("b1", "First"),
			{ID: "b2", Type: string(blocks.TypeHero), Data: json.RawMessage(`{"alignment":"diagonal"}`)},
			heroBlock("b3", "Third"),
		},
	}

	out := Page(body, Collections{})
	if len(out) != 3 {
		t.Fatalf("rendered %d blocks, want 3", len(out))
	}
	if out[0].State != StateRendered || out[2].State != StateRendered {
		t.Errorf("healthy siblings affected: %s / %s", out[0].State, out[2].State)
	}
	if out[1].State != StateError {
		t.Errorf("bad block state = %s, want %s", out[1].State, StateError)
	}
	if out[1].Message == "" {
		t.Error("error fallback has no message")
	}
}

func TestBlockPanicRecovery(t *testing.T) {
	orig := renderers[blocks.TypeHero]
	renderers[blocks.TypeHero] = func(data any, c Collections) map[string]any {
		panic("boom")
	}
	defer func() { renderers[blocks.TypeHero] = orig }()

	rb := Block(heroBlock("b1", "Welcome"), Collections{})
	if rb.State != StateError {
		t.Fatalf("state = %s, want %s", rb.State, StateError)
	}
	if rb.Props != nil {
		t.Error("panicked block carries props")
	}
	if rb.BlockID != "b1" {
		t.Errorf("BlockID = %q, want b1", rb.BlockID)
	}
}

func TestServicesEmptyState(t *testing.T) {
	b := blocks.Block{ID: "b1", Type: string(blocks.TypeServices), Data: json.RawMessage(`{}`)}

	rb := Block(b, Collections{})
	if rb.State != StateRendered {
		t.Fatalf("state = %s, want %s", rb.State, StateRendered)
	}
	if rb.Props["empty"] != true {
		t.Errorf("empty = %v, want true", rb.Props["empty"])
	}
	items := rb.Props["items"].([]map[string]any)
	if len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestServicesRespectsLimitAndFlags(t *testing.T) {
	b := blocks.Block{
		ID:   "b1",
		Type: string(blocks.TypeServices),
		Data: json.RawMessage(`{"limit":2,"showIcon":false}`),
	}
	c := Collections{
		Services: []collections.Service{
			{ID: "s1", Title: "One", Icon: "star", Description: "first"},
			{ID: "s2", Title: "Two", Icon: "moon", Description: "second"},
			{ID: "s3", Title: "Three"},
		},
	}

	rb := Block(b, c)
	items := rb.Props["items"].([]map[string]any)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (limit)", len(items))
	}
	if _, ok := items[0]["icon"]; ok {
		t.Error("icon present despite showIcon=false")
	}
	if items[0]["description"] != "first" {
		t.Errorf("description = %v, want first", items[0]["description"])
	}
}

func TestRichTextSanitizesHTML(t *testing.T) {
	b := blocks.Block{
		ID:   "b1",
		Type: string(blocks.TypeRichText),
		Data: json.RawMessage(`{"content":"<p>hi</p><script>alert(1)</script>"}`),
	}

	rb := Block(b, Collections{})
	if rb.State != StateRendered {
		t.Fatalf("state = %s, want %s", rb.State, StateRendered)
	}
	content := rb.Props["content"].(string)
	if strings.Contains(content, "script") {
		t.Errorf("script tag survived sanitization: %q", content)
	}
	if !strings.Contains(content, "<p>hi</p>") {
		t.Errorf("benign markup stripped: %q", content)
	}
}

func TestRichTextMarkdownPassedThrough(t *testing.T) {
	b := blocks.Block{
		ID:   "b1",
		Type: string(blocks.TypeRichText),
		Data: json.RawMessage(`{"content":"# Title","format":"markdown"}`),
	}

	rb := Block(b, Collections{})
	if rb.Props["content"] != "# Title" {
		t.Errorf("markdown content altered: %v", rb.Props["content"])
	}
	if rb.Props["format"] != "markdown" {
		t.Errorf("format = %v, want markdown", rb.Props["format"])
	}
}

func TestContactFlagGatedFields(t *testing.T) {
	b := blocks.Block{
		ID:   "b1",
		Type: string(blocks.TypeContact),
		Data: json.RawMessage(`{"title":"Reach out","email":"hi@example.com","phone":"123","address":"Main St 1","showPhone":false}`),
	}

	rb := Block(b, Collections{})
	if rb.State != StateRendered {
		t.Fatalf("state = %s, want %s", rb.State, StateRendered)
	}
	if rb.Props["email"] != "hi@example.com" {
		t.Errorf("email = %v", rb.Props["email"])
	}
	if _, ok := rb.Props["phone"]; ok {
		t.Error("phone present despite showPhone=false")
	}
	// Address defaults to hidden.
	if _, ok := rb.Props["address"]; ok {
		t.Error("address present despite showAddress default false")
	}
	if rb.Props["ctaText"] != "Contact Us" {
		t.Errorf("ctaText = %v, want default", rb.Props["ctaText"])
	}
}
