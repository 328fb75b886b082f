package validation

import (
	"encoding/json"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
	Kind  string `json:"kind" validate:"oneof=basic extended"`
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	errs := Check(sample{Email: "nope", Kind: "other"}, "payload")
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}

	byPath := map[string]string{}
	for _, e := range errs {
		byPath[e.Path] = e.Message
	}

	if msg, ok := byPath["payload.name"]; !ok || !strings.Contains(msg, "required") {
		t.Errorf("payload.name: %q", msg)
	}
	if msg, ok := byPath["payload.email"]; !ok || !strings.Contains(msg, "email") {
		t.Errorf("payload.email: %q", msg)
	}
	if msg, ok := byPath["payload.kind"]; !ok || !strings.Contains(msg, "basic, extended") {
		t.Errorf("payload.kind: %q", msg)
	}
}

func TestCheckNoPrefix(t *testing.T) {
	errs := Check(sample{}, "")
	found := false
	for _, e := range errs {
		if e.Path == "name" {
			found = true
		}
	}
	if !found {
		t.Errorf("no error at bare path \"name\": %v", errs)
	}
}

func TestSlugValidation(t *testing.T) {
	tests := []struct {
		slug string
		ok   bool
	}{
		{"home", true},
		{"a-b-c", true},
		{"2024", true},
		{"Home", false},
		{"a--b", false},
		{"-a", false},
		{"a-", false},
		{"a_b", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			errs := Var(tt.slug, "required,slug", "slug", "invalid slug")
			if tt.ok && len(errs) > 0 {
				t.Errorf("slug %q rejected", tt.slug)
			}
			if !tt.ok && len(errs) == 0 {
				t.Errorf("slug %q accepted", tt.slug)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"name":42}`), &s)
	if err == nil {
		t.Fatal("expected decode error")
	}

	errs := DecodeErrors(err, "payload")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Path != "payload.name" {
		t.Errorf("path = %q, want payload.name", errs[0].Path)
	}
	if !strings.Contains(errs[0].Message, "string") {
		t.Errorf("message = %q, want the expected type named", errs[0].Message)
	}

	errs = DecodeErrors(json.Unmarshal([]byte(`{`), &s), "payload")
	if len(errs) != 1 || errs[0].Path != "payload" {
		t.Errorf("malformed payload errors = %v", errs)
	}
}
