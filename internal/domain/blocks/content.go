package blocks

// RichTextData holds formatted text content.
type RichTextData struct {
	Content string `json:"content" validate:"required"`
	Format  string `json:"format,omitempty" default:"html" validate:"oneof=html markdown"`
}

// GalleryImage is one entry of a gallery block.
type GalleryImage struct {
	ID        string `json:"id"`
	URL       string `json:"url" validate:"required,url"`
	Alt       string `json:"alt,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty" validate:"omitempty,url"`
}

// GalleryData displays an ordered set of images. At least one image is
// required.
type GalleryData struct {
	Title        string         `json:"title,omitempty"`
	Images       []GalleryImage `json:"images" validate:"required,min=1,dive"`
	DisplayStyle string         `json:"displayStyle,omitempty" default:"grid" validate:"oneof=grid masonry carousel slideshow"`
	Columns      *int           `json:"columns,omitempty" default:"3" validate:"min=1,max=6"`
	ShowCaptions *bool          `json:"showCaptions,omitempty" default:"true"`
	Lightbox     *bool          `json:"lightbox,omitempty" default:"true"`
}

// ContactData is a call-to-action block for contact information. The show
// flags gate which of the optional contact fields are rendered.
type ContactData struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	CTAText     string `json:"ctaText,omitempty" default:"Contact Us"`
	CTALink     string `json:"ctaLink,omitempty"`
	ShowEmail   *bool  `json:"showEmail,omitempty" default:"true"`
	ShowPhone   *bool  `json:"showPhone,omitempty" default:"true"`
	ShowAddress *bool  `json:"showAddress,omitempty" default:"false"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}
