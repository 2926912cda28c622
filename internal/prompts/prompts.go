// Package prompts builds the creative prompts sent to the image generation
// backend. The template wording is part of the backend contract and is kept
// verbatim.
package prompts

import "fmt"

// VariantCount is the number of prompt variants built per request.
const VariantCount = 4

const (
	StyleModern  = "modern"
	StyleMinimal = "minimal"
	StyleBold    = "bold"
	StyleElegant = "elegant"
	StylePlayful = "playful"

	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformStory     = "story"
	PlatformTwitter   = "twitter"
)

var (
	Styles    = []string{StyleModern, StyleMinimal, StyleBold, StyleElegant, StylePlayful}
	Platforms = []string{PlatformInstagram, PlatformFacebook, PlatformStory, PlatformTwitter}
)

// Variant is one numbered prompt. Index starts at 1.
type Variant struct {
	Index int
	Text  string
}

// framings holds the per-variant tail of the template, in variant order:
// hero shot, lifestyle, minimalist, feature highlight.
var framings = [VariantCount]string{
	"Make it eye-catching with bold typography and clean layout. Variation 1: focus on the product hero shot.",
	"Make it eye-catching with lifestyle context. Variation 2: show the product in use.",
	"Make it eye-catching with minimalist design. Variation 3: focus on brand aesthetics.",
	"Make it eye-catching with promotional text. Variation 4: highlight key features and benefits.",
}

// Build returns the four prompt variants for a product description.
func Build(description, style, platform string) []Variant {
	variants := make([]Variant, 0, VariantCount)
	for i, framing := range framings {
		variants = append(variants, Variant{
			Index: i + 1,
			Text: fmt.Sprintf("Create a professional %s advertisement for %s. Product: %s. %s",
				style, platform, description, framing),
		})
	}
	return variants
}

// ValidStyle reports whether style is one of Styles.
func ValidStyle(style string) bool {
	return contains(Styles, style)
}

// ValidPlatform reports whether platform is one of Platforms.
func ValidPlatform(platform string) bool {
	return contains(Platforms, platform)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
