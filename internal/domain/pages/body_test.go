package pages

import (
	"encoding/json"
	"strings"
	"testing"

	"blockcms/internal/domain/blocks"
	"blockcms/internal/domain/validation"
)

func validInput() PageInput {
	return PageInput{
		Slug:  "about-us",
		Title: "About Us",
		Body: PageBody{
			SEO: SEO{Title: "About Us", Description: "Who we are and what we do."},
			Blocks: []blocks.Block{
				{ID: "b1", Type: "hero", Data: json.RawMessage(`{"title":"Welcome"}`)},
			},
		},
	}
}

func hasPath(errs []validation.Error, path string) bool {
	for _, e := range errs {
		if e.Path == path {
			return true
		}
	}
	return false
}

func TestValidateInputAcceptsAndNormalizes(t *testing.T) {
	out, errs := ValidateInput(validInput())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Status != StatusDraft {
		t.Errorf("Status = %q, want %q", out.Status, StatusDraft)
	}
	if out.Body.Version == nil || *out.Body.Version != 1 {
		t.Errorf("Version = %v, want 1", out.Body.Version)
	}
	if out.Body.SEO.OGType != "website" {
		t.Errorf("OGType = %q, want website", out.Body.SEO.OGType)
	}

	// Block data comes back with schema defaults baked in.
	var hero blocks.HeroData
	if err := json.Unmarshal(out.Body.Blocks[0].Data, &hero); err != nil {
		t.Fatalf("normalized hero data does not parse: %v", err)
	}
	if hero.Alignment != "center" || hero.Height != "medium" {
		t.Errorf("hero defaults not applied: alignment=%q height=%q", hero.Alignment, hero.Height)
	}
}

func TestValidateInputSlug(t *testing.T) {
	tests := []struct {
		slug string
		ok   bool
	}{
		{"home", true},
		{"about-us", true},
		{"page-2024", true},
		{"a", true},
		{"", false},
		{"Home", false},
		{"about us", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"under_score", false},
		{strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			in := validInput()
			in.Slug = tt.slug
			_, errs := ValidateInput(in)
			if tt.ok && hasPath(errs, "slug") {
				t.Errorf("slug %q rejected: %v", tt.slug, errs)
			}
			if !tt.ok && !hasPath(errs, "slug") {
				t.Errorf("slug %q accepted", tt.slug)
			}
		})
	}
}

func TestValidateInputShellErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*PageInput)
		wantPath string
	}{
		{
			name:     "missing title",
			mutate:   func(in *PageInput) { in.Title = "" },
			wantPath: "title",
		},
		{
			name:     "title too long",
			mutate:   func(in *PageInput) { in.Title = strings.Repeat("x", 201) },
			wantPath: "title",
		},
		{
			name:     "bad status",
			mutate:   func(in *PageInput) { in.Status = "PENDING" },
			wantPath: "status",
		},
		{
			name:     "seo title too long",
			mutate:   func(in *PageInput) { in.Body.SEO.Title = strings.Repeat("x", 61) },
			wantPath: "body.seo.title",
		},
		{
			name:     "seo description missing",
			mutate:   func(in *PageInput) { in.Body.SEO.Description = "" },
			wantPath: "body.seo.description",
		},
		{
			name:     "seo og image not a url",
			mutate:   func(in *PageInput) { in.Body.SEO.OGImage = "not a url" },
			wantPath: "body.seo.ogImage",
		},
		{
			name:     "explicit zero version",
			mutate:   func(in *PageInput) { v := 0; in.Body.Version = &v },
			wantPath: "body.version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, errs := ValidateInput(in)
			if !hasPath(errs, tt.wantPath) {
				t.Errorf("no error for path %s, got %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidateInputReportsAllBadBlocks(t *testing.T) {
	in := validInput()
	in.Body.Blocks = []blocks.Block{
		{ID: "b1", Type: "video", Data: json.RawMessage(`{}`)},
		{ID: "b2", Type: "hero", Data: json.RawMessage(`{"title":"ok"}`)},
		{ID: "b3", Type: "hero", Data: json.RawMessage(`{}`)},
	}

	_, errs := ValidateInput(in)
	if len(errs) == 0 {
		t.Fatal("expected errors, got none")
	}
	if !hasPath(errs, "body.blocks.0.type") {
		t.Errorf("unknown type at index 0 not reported: %v", errs)
	}
	if !hasPath(errs, "body.blocks.2.data.title") {
		t.Errorf("missing title at index 2 not reported: %v", errs)
	}
	for _, e := range errs {
		if strings.HasPrefix(e.Path, "body.blocks.1") {
			t.Errorf("valid block at index 1 got an error: %v", e)
		}
	}
}

func TestValidateInputRejectsWholeDocument(t *testing.T) {
	in := validInput()
	in.Body.Blocks = append(in.Body.Blocks, blocks.Block{
		ID: "b2", Type: "hero", Data: json.RawMessage(`{}`),
	})

	out, errs := ValidateInput(in)
	if len(errs) == 0 {
		t.Fatal("expected errors, got none")
	}
	// The partially valid document must not come back normalized.
	if len(out.Body.Blocks) > 0 && out.Body.Blocks[0].Data != nil {
		var hero blocks.HeroData
		_ = json.Unmarshal(out.Body.Blocks[0].Data, &hero)
		if hero.Alignment == "center" && !strings.Contains(string(in.Body.Blocks[0].Data), "center") {
			t.Error("blocks were normalized despite document rejection")
		}
	}
}

func TestBodyRoundTrip(t *testing.T) {
	in, errs := ValidateInput(validInput())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	raw, err := EncodeBody(in.Body)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	back, err := DecodeBody(raw)
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}

	if *back.Version != *in.Body.Version {
		t.Errorf("Version = %d, want %d", *back.Version, *in.Body.Version)
	}
	if back.SEO.Title != in.Body.SEO.Title || back.SEO.Description != in.Body.SEO.Description || back.SEO.OGType != in.Body.SEO.OGType {
		t.Errorf("SEO changed across round trip: %+v vs %+v", back.SEO, in.Body.SEO)
	}
	if len(back.Blocks) != len(in.Body.Blocks) {
		t.Fatalf("block count = %d, want %d", len(back.Blocks), len(in.Body.Blocks))
	}
	for i := range back.Blocks {
		if back.Blocks[i].ID != in.Body.Blocks[i].ID || back.Blocks[i].Type != in.Body.Blocks[i].Type {
			t.Errorf("block %d identity changed across round trip", i)
		}
	}
}

func TestDecodeBodyEmpty(t *testing.T) {
	body, err := DecodeBody(nil)
	if err != nil {
		t.Fatalf("DecodeBody(nil): %v", err)
	}
	if len(body.Blocks) != 0 {
		t.Errorf("empty document has %d blocks", len(body.Blocks))
	}
}

func TestDecodeBodyCorrupt(t *testing.T) {
	if _, err := DecodeBody(json.RawMessage(`{"version":`)); err == nil {
		t.Fatal("expected error for corrupt document")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusPublished, StatusArchived} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "draft", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
