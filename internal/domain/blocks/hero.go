package blocks

// HeroData is a large header section with title, subtitle, CTA and an
// optional background image or video. Presentation only, no collection
// dependency.
type HeroData struct {
	Title           string   `json:"title" validate:"required,max=100"`
	Subtitle        string   `json:"subtitle,omitempty" validate:"max=200"`
	CTAText         string   `json:"ctaText,omitempty" validate:"max=50"`
	CTALink         string   `json:"ctaLink,omitempty"`
	BackgroundImage string   `json:"backgroundImage,omitempty" validate:"omitempty,url"`
	BackgroundVideo string   `json:"backgroundVideo,omitempty" validate:"omitempty,url"`
	Alignment       string   `json:"alignment,omitempty" default:"center" validate:"oneof=left center right"`
	Height          string   `json:"height,omitempty" default:"medium" validate:"oneof=small medium large full"`
	Overlay         *bool    `json:"overlay,omitempty" default:"false"`
	OverlayOpacity  *float64 `json:"overlayOpacity,omitempty" default:"0.5" validate:"omitempty,min=0,max=1"`
}
