package blocks

import "encoding/json"

// Block type discriminators. The Type field of a stored block uniquely
// determines the shape of its Data payload.
type Type string

const (
	TypeHero     Type = "hero"
	TypeServices Type = "services"
	TypeProjects Type = "projects"
	TypeNews     Type = "news"
	TypeRichText Type = "richtext"
	TypeGallery  Type = "gallery"
	TypeContact  Type = "contact"
)

// Settings are optional presentation overrides shared by every block type.
// They are opaque to validation.
type Settings struct {
	ClassName       string `json:"className,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Padding         string `json:"padding,omitempty"`
	Margin          string `json:"margin,omitempty"`
}

// Block is one entry in a page document. Data is kept raw until the type
// discriminator selects the schema to decode and validate it against.
type Block struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Settings *Settings       `json:"settings,omitempty"`
	Data     json.RawMessage `json:"data"`
}
