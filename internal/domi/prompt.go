package domi

import (
	"fmt"
	"strings"
)

var styleDescriptions = map[string]string{
	"realistic":  "photorealistic, high detail, professional photography",
	"artistic":   "artistic style, creative composition, rich colors",
	"cartoon":    "cartoon style, lively and cute, vivid colors",
	"anime":      "anime style, refined linework, character design",
	"abstract":   "abstract art, modern design, conceptual expression",
	"vintage":    "vintage style, nostalgic tones, classic composition",
	"minimalist": "minimalist design, clean layout, negative space",
}

// GenerationPrompt builds an optimized text-to-image prompt for a subject.
// Unknown styles fall back to realistic.
func GenerationPrompt(subject, style, size string) string {
	desc, ok := styleDescriptions[style]
	if !ok {
		desc = styleDescriptions["realistic"]
	}
	if size == "" {
		size = DefaultSize
	}
	template := `
Create an image of %s in the following style: %s.

Suggested composition and details:
- Subject: %s
- Style: %s
- Size: %s
- Quality: high resolution, rich detail, saturated colors
- Lighting: natural light with clear depth
- Composition: centered and visually balanced

Make sure the image is of professional quality, suitable for commercial or artistic use.
`
	return strings.TrimSpace(fmt.Sprintf(template, subject, desc, subject, desc, size))
}

// EditingPrompt builds a detailed edit instruction from a description of the
// original image and the requested change.
func EditingPrompt(originalDescription, editingRequest string) string {
	template := `
Edit the image described below:

Original image: %s

Requested change: %s

Editing guidelines:
1. Keep the original composition and style
2. Blend the edit in naturally, avoiding visual dissonance
3. Maintain color harmony and visual balance
4. Keep the edited image sharp and clean
5. Respect physical plausibility and aesthetics

Produce a high quality result where the edit merges seamlessly with the original.
`
	return strings.TrimSpace(fmt.Sprintf(template, originalDescription, editingRequest))
}
