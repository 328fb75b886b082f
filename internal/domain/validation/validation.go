package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Error is one field-level validation failure. Path is a dot path into the
// submitted document ("body.blocks.2.data.title") so callers can highlight
// the exact field.
type Error struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Path + ": " + e.Message
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json field names, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
}

// Check runs struct tag validation on v and converts failures into Errors.
// prefix is prepended to every reported path.
func Check(v any, prefix string) []Error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Error{{Path: prefix, Message: err.Error()}}
	}

	out := make([]Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Error{
			Path:    joinPath(prefix, fieldPath(fe)),
			Message: message(fe),
		})
	}
	return out
}

// Var validates a single value against a tag expression.
func Var(value any, tag, path, msg string) []Error {
	if err := validate.Var(value, tag); err != nil {
		return []Error{{Path: path, Message: msg}}
	}
	return nil
}

// DecodeErrors converts a json unmarshalling failure into field errors where
// possible, so a wrong-typed field is reported like any other bad input.
func DecodeErrors(err error, prefix string) []Error {
	if tErr, ok := err.(*json.UnmarshalTypeError); ok && tErr.Field != "" {
		return []Error{{
			Path:    joinPath(prefix, tErr.Field),
			Message: fmt.Sprintf("must be of type %s", tErr.Type.Kind()),
		}}
	}
	return []Error{{Path: prefix, Message: "malformed payload"}}
}

// fieldPath strips the root struct name from the namespace, leaving the
// json-tagged path inside the validated value.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func joinPath(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if path == "" {
		return prefix
	}
	return prefix + "." + path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be %s or less", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fe.Field() + " must be a valid URL"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "slug":
		return fe.Field() + " must be lowercase alphanumeric with hyphens"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "dive":
		return fe.Field() + " is invalid"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
