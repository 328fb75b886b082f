package blocks

// Collection-backed blocks. These render live data queried at page render
// time; the data payload only carries display settings and query hints.

// ServicesData displays a list of services.
type ServicesData struct {
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	Limit           *int   `json:"limit,omitempty" default:"6" validate:"min=1,max=50"`
	DisplayStyle    string `json:"displayStyle,omitempty" default:"grid" validate:"oneof=grid list carousel"`
	Columns         *int   `json:"columns,omitempty" default:"3" validate:"min=1,max=6"`
	ShowIcon        *bool  `json:"showIcon,omitempty" default:"true"`
	ShowDescription *bool  `json:"showDescription,omitempty" default:"true"`
	Category        string `json:"category,omitempty"`
}

// ProjectsData displays a list of projects, optionally filtered by category.
type ProjectsData struct {
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	Limit           *int   `json:"limit,omitempty" default:"6" validate:"min=1,max=50"`
	DisplayStyle    string `json:"displayStyle,omitempty" default:"grid" validate:"oneof=grid masonry carousel"`
	Columns         *int   `json:"columns,omitempty" default:"3" validate:"min=1,max=6"`
	ShowDescription *bool  `json:"showDescription,omitempty" default:"true"`
	Category        string `json:"category,omitempty"`
}

// NewsData displays recent news articles, optionally filtered by category.
type NewsData struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Limit        *int   `json:"limit,omitempty" default:"6" validate:"min=1,max=50"`
	DisplayStyle string `json:"displayStyle,omitempty" default:"grid" validate:"oneof=grid list featured"`
	Columns      *int   `json:"columns,omitempty" default:"3" validate:"min=1,max=6"`
	ShowExcerpt  *bool  `json:"showExcerpt,omitempty" default:"true"`
	ShowImage    *bool  `json:"showImage,omitempty" default:"true"`
	ShowDate     *bool  `json:"showDate,omitempty" default:"true"`
	Category     string `json:"category,omitempty"`
}
