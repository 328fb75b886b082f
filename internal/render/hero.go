package render

import "blockcms/internal/domain/blocks"

func renderHero(data any, _ Collections) map[string]any {
	d := data.(*blocks.HeroData)

	props := map[string]any{
		"title":          d.Title,
		"alignment":      d.Alignment,
		"height":         d.Height,
		"overlay":        *d.Overlay,
		"overlayOpacity": *d.OverlayOpacity,
	}
	if d.Subtitle != "" {
		props["subtitle"] = d.Subtitle
	}
	if d.CTAText != "" {
		props["ctaText"] = d.CTAText
		props["ctaLink"] = d.CTALink
	}
	if d.BackgroundImage != "" {
		props["backgroundImage"] = d.BackgroundImage
	}
	if d.BackgroundVideo != "" {
		props["backgroundVideo"] = d.BackgroundVideo
	}
	return props
}
