package blocks

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateDataRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		raw      string
		wantPath string
	}{
		{name: "hero missing title", typ: TypeHero, raw: `{}`, wantPath: "data.title"},
		{name: "richtext missing content", typ: TypeRichText, raw: `{"format":"html"}`, wantPath: "data.content"},
		{name: "contact missing title", typ: TypeContact, raw: `{"description":"x"}`, wantPath: "data.title"},
		{name: "gallery missing images", typ: TypeGallery, raw: `{}`, wantPath: "data.images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verrs, err := ValidateData(tt.typ, json.RawMessage(tt.raw), "data")
			if err != nil {
				t.Fatalf("ValidateData returned error: %v", err)
			}
			if len(verrs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, ve := range verrs {
				if ve.Path == tt.wantPath {
					found = true
					if !strings.Contains(ve.Message, "required") {
						t.Errorf("error for %s = %q, want mention of required", ve.Path, ve.Message)
					}
				}
			}
			if !found {
				t.Errorf("no error for path %s in %v", tt.wantPath, verrs)
			}
		})
	}
}

func TestValidateDataOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		raw      string
		wantPath string
	}{
		{name: "hero bad alignment", typ: TypeHero, raw: `{"title":"t","alignment":"diagonal"}`, wantPath: "data.alignment"},
		{name: "hero overlay opacity above 1", typ: TypeHero, raw: `{"title":"t","overlayOpacity":1.5}`, wantPath: "data.overlayOpacity"},
		{name: "hero title too long", typ: TypeHero, raw: `{"title":"` + strings.Repeat("a", 101) + `"}`, wantPath: "data.title"},
		{name: "services limit zero", typ: TypeServices, raw: `{"limit":0}`, wantPath: "data.limit"},
		{name: "services limit above cap", typ: TypeServices, raw: `{"limit":51}`, wantPath: "data.limit"},
		{name: "services bad display style", typ: TypeServices, raw: `{"displayStyle":"featured"}`, wantPath: "data.displayStyle"},
		{name: "news bad display style", typ: TypeNews, raw: `{"displayStyle":"masonry"}`, wantPath: "data.displayStyle"},
		{name: "gallery columns above cap", typ: TypeGallery, raw: `{"images":[{"id":"i1","url":"https://x.test/a.jpg"}],"columns":7}`, wantPath: "data.columns"},
		{name: "richtext bad format", typ: TypeRichText, raw: `{"content":"hi","format":"plain"}`, wantPath: "data.format"},
		{name: "contact bad email", typ: TypeContact, raw: `{"title":"t","email":"not-an-email"}`, wantPath: "data.email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verrs, err := ValidateData(tt.typ, json.RawMessage(tt.raw), "data")
			if err != nil {
				t.Fatalf("ValidateData returned error: %v", err)
			}
			found := false
			for _, ve := range verrs {
				if ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for path %s, got %v", tt.wantPath, verrs)
			}
		})
	}
}

func TestValidateDataDefaults(t *testing.T) {
	t.Run("hero", func(t *testing.T) {
		data, verrs, err := ValidateData(TypeHero, json.RawMessage(`{"title":"Welcome"}`), "data")
		if err != nil || len(verrs) > 0 {
			t.Fatalf("unexpected failure: err=%v verrs=%v", err, verrs)
		}
		d := data.(*HeroData)
		if d.Alignment != "center" {
			t.Errorf("Alignment = %q, want center", d.Alignment)
		}
		if d.Height != "medium" {
			t.Errorf("Height = %q, want medium", d.Height)
		}
		if d.Overlay == nil || *d.Overlay {
			t.Errorf("Overlay = %v, want false", d.Overlay)
		}
		if d.OverlayOpacity == nil || *d.OverlayOpacity != 0.5 {
			t.Errorf("OverlayOpacity = %v, want 0.5", d.OverlayOpacity)
		}
	})

	t.Run("services", func(t *testing.T) {
		data, verrs, err := ValidateData(TypeServices, json.RawMessage(`{}`), "data")
		if err != nil || len(verrs) > 0 {
			t.Fatalf("unexpected failure: err=%v verrs=%v", err, verrs)
		}
		d := data.(*ServicesData)
		if d.Limit == nil || *d.Limit != 6 {
			t.Errorf("Limit = %v, want 6", d.Limit)
		}
		if d.DisplayStyle != "grid" {
			t.Errorf("DisplayStyle = %q, want grid", d.DisplayStyle)
		}
		if d.Columns == nil || *d.Columns != 3 {
			t.Errorf("Columns = %v, want 3", d.Columns)
		}
		if d.ShowIcon == nil || !*d.ShowIcon {
			t.Errorf("ShowIcon = %v, want true", d.ShowIcon)
		}
	})

	t.Run("contact", func(t *testing.T) {
		data, verrs, err := ValidateData(TypeContact, json.RawMessage(`{"title":"Get in touch"}`), "data")
		if err != nil || len(verrs) > 0 {
			t.Fatalf("unexpected failure: err=%v verrs=%v", err, verrs)
		}
		d := data.(*ContactData)
		if d.CTAText != "Contact Us" {
			t.Errorf("CTAText = %q, want Contact Us", d.CTAText)
		}
		if d.ShowEmail == nil || !*d.ShowEmail {
			t.Errorf("ShowEmail = %v, want true", d.ShowEmail)
		}
		if d.ShowAddress == nil || *d.ShowAddress {
			t.Errorf("ShowAddress = %v, want false", d.ShowAddress)
		}
	})

	t.Run("explicit values survive defaults", func(t *testing.T) {
		data, verrs, err := ValidateData(TypeServices, json.RawMessage(`{"limit":12,"showIcon":false}`), "data")
		if err != nil || len(verrs) > 0 {
			t.Fatalf("unexpected failure: err=%v verrs=%v", err, verrs)
		}
		d := data.(*ServicesData)
		if *d.Limit != 12 {
			t.Errorf("Limit = %d, want 12", *d.Limit)
		}
		if *d.ShowIcon {
			t.Error("ShowIcon = true, explicit false was overwritten")
		}
	})
}

func TestValidateDataUnknownType(t *testing.T) {
	_, _, err := ValidateData(Type("video"), json.RawMessage(`{}`), "data")
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("err = %v, want ErrUnknownBlockType", err)
	}
}

func TestValidateDataWrongFieldType(t *testing.T) {
	_, verrs, err := ValidateData(TypeHero, json.RawMessage(`{"title":123}`), "data")
	if err != nil {
		t.Fatalf("ValidateData returned error: %v", err)
	}
	if len(verrs) == 0 {
		t.Fatal("expected a decode error, got none")
	}
	if verrs[0].Path != "data.title" {
		t.Errorf("path = %q, want data.title", verrs[0].Path)
	}
}

func TestValidateBlockEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		wantPath string
	}{
		{
			name:     "missing id",
			block:    Block{Type: "hero", Data: json.RawMessage(`{"title":"t"}`)},
			wantPath: "b.id",
		},
		{
			name:     "missing type",
			block:    Block{ID: "b1", Data: json.RawMessage(`{}`)},
			wantPath: "b.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verrs, err := Validate(tt.block, "b")
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			found := false
			for _, ve := range verrs {
				if ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for path %s, got %v", tt.wantPath, verrs)
			}
		})
	}
}

func TestValidateGalleryImages(t *testing.T) {
	raw := `{"images":[{"id":"i1","url":"not a url"}]}`
	_, verrs, err := ValidateData(TypeGallery, json.RawMessage(raw), "data")
	if err != nil {
		t.Fatalf("ValidateData returned error: %v", err)
	}
	found := false
	for _, ve := range verrs {
		if strings.Contains(ve.Path, "images[0]") {
			found = true
		}
	}
	if !found {
		t.Errorf("no error attributed to images[0], got %v", verrs)
	}
}

func TestKnownAndCollectionBacked(t *testing.T) {
	for _, typ := range []Type{TypeHero, TypeServices, TypeProjects, TypeNews, TypeRichText, TypeGallery, TypeContact} {
		if !Known(typ) {
			t.Errorf("Known(%s) = false", typ)
		}
	}
	if Known(Type("video")) {
		t.Error("Known(video) = true")
	}

	for typ, want := range map[Type]bool{
		TypeHero:     false,
		TypeServices: true,
		TypeProjects: true,
		TypeNews:     true,
		TypeRichText: false,
		TypeGallery:  false,
		TypeContact:  false,
	} {
		if got := CollectionBacked(typ); got != want {
			t.Errorf("CollectionBacked(%s) = %v, want %v", typ, got, want)
		}
	}
}
