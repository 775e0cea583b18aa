package analysis

import (
	"fmt"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
)

// buildAnalysisPrompt asks for a reply broken into the labeled sections the parser understands
func buildAnalysisPrompt(userContext string) string {
	contextNote := "The user did not add any notes about the room."
	if c := strings.TrimSpace(userContext); c != "" {
		contextNote = fmt.Sprintf("The user describes the room or their goal as: %q. Take this into account.", c)
	}

	return fmt.Sprintf(`You are an expert interior designer analyzing a photograph of a room so that matching 3D furniture can be suggested and previewed in augmented reality.

%s

Study the photo carefully: wall and floor colors, existing furniture, materials, light sources, open floor area and the overall design language.

Respond using EXACTLY the following labeled sections, each label on its own line followed by a colon. Do not add any other sections, headings or commentary.

COLOR_PALETTE: 3 to 5 dominant color names, comma separated (e.g. Warm Beige, Soft Gray, Walnut Brown)
THEME: the overall design theme in a few words (e.g. Modern Scandinavian)
STYLE: a finer-grained style label (e.g. Minimalist with natural wood accents)
ESTIMATED_SIZE: a human readable estimate of the room size (e.g. Medium, about 12 x 14 ft)
AVAILABLE_SPACE: one location per line where new furniture would fit (e.g. Corner near window)
LIGHTING: one sentence describing the lighting conditions
IMPROVEMENT_SUGGESTIONS: one concrete suggestion per line
FURNITURE_KEYWORDS: 3 to 6 single-word furniture types to search for, comma separated, lowercase (e.g. armchair, lamp, shelf)`, contextNote)
}

// buildKeywordPrompt asks the model to turn a free-text request into search tokens for this room
func buildKeywordPrompt(a models.RoomAnalysis, query string) string {
	return fmt.Sprintf(`You help a furniture search engine. A user standing in a room asked: %q

The room was analyzed as:
- Theme: %s
- Style: %s
- Colors: %s
- Free spots: %s

Reply with ONLY a comma separated list of at most 6 lowercase search keywords (furniture types first, then materials or colors) that best answer the request for this room. No sentences, no numbering.`,
		query,
		a.Theme,
		a.Style,
		strings.Join(a.ColorPalette, ", "),
		strings.Join(a.Dimensions.AvailableSpace, "; "),
	)
}
