package blocks

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/creasty/defaults"

	"blockcms/internal/domain/validation"
)

// ErrUnknownBlockType marks a block whose type discriminator matches no
// registered schema. This is a distinct, recoverable condition: the render
// dispatcher turns it into a visible fallback instead of failing the page.
var ErrUnknownBlockType = errors.New("unknown block type")

type entry struct {
	newData    func() any
	collection bool
}

var registry = map[Type]entry{
	TypeHero:     {newData: func() any { return &HeroData{} }},
	TypeServices: {newData: func() any { return &ServicesData{} }, collection: true},
	TypeProjects: {newData: func() any { return &ProjectsData{} }, collection: true},
	TypeNews:     {newData: func() any { return &NewsData{} }, collection: true},
	TypeRichText: {newData: func() any { return &RichTextData{} }},
	TypeGallery:  {newData: func() any { return &GalleryData{} }},
	TypeContact:  {newData: func() any { return &ContactData{} }},
}

// Known reports whether t is a registered block type.
func Known(t Type) bool {
	_, ok := registry[t]
	return ok
}

// CollectionBacked reports whether blocks of type t render live collection
// data fetched at render time.
func CollectionBacked(t Type) bool {
	return registry[t].collection
}

// ValidateData decodes and validates a raw data payload against the schema
// selected by t. Absent optional fields receive their declared defaults.
// Returns ErrUnknownBlockType when t matches no registered schema; schema
// violations come back as validation errors with paths rooted at pathPrefix.
func ValidateData(t Type, raw json.RawMessage, pathPrefix string) (any, []validation.Error, error) {
	e, ok := registry[t]
	if !ok {
		return nil, nil, ErrUnknownBlockType
	}

	data := e.newData()
	if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, validation.DecodeErrors(err, pathPrefix), nil
		}
	}
	if err := defaults.Set(data); err != nil {
		return nil, []validation.Error{{Path: pathPrefix, Message: "failed to apply defaults"}}, nil
	}
	if verrs := validation.Check(data, pathPrefix); len(verrs) > 0 {
		return nil, verrs, nil
	}
	return data, nil, nil
}

// Validate checks one whole block: the shared envelope (id, type) plus the
// type-specific data payload. The typed, default-filled data is returned on
// success.
func Validate(b Block, pathPrefix string) (any, []validation.Error, error) {
	var errs []validation.Error
	if b.ID == "" {
		errs = append(errs, validation.Error{Path: join(pathPrefix, "id"), Message: "id is required"})
	}
	if b.Type == "" {
		errs = append(errs, validation.Error{Path: join(pathPrefix, "type"), Message: "type is required"})
		return nil, errs, nil
	}

	data, verrs, err := ValidateData(Type(b.Type), b.Data, join(pathPrefix, "data"))
	if err != nil {
		return nil, errs, err
	}
	errs = append(errs, verrs...)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return data, nil, nil
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
