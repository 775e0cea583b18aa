package analysis

import (
	"regexp"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
)

// MaxPaletteColors caps the palette regardless of how many colors the model lists
const MaxPaletteColors = 5

type section struct {
	label string
	// commas splits list items at commas and semicolons as well as line breaks; scalar fields keep
	// their first line whole
	commas bool
	assign func(a *models.RoomAnalysis, items []string)
}

// sections drives extraction: every label also terminates whichever section precedes it
var sections = []section{
	{
		label:  "COLOR_PALETTE",
		commas: true,
		assign: func(a *models.RoomAnalysis, items []string) {
			if len(items) > MaxPaletteColors {
				items = items[:MaxPaletteColors]
			}
			a.ColorPalette = items
		},
	},
	{
		label:  "THEME",
		assign: func(a *models.RoomAnalysis, items []string) { a.Theme = first(items) },
	},
	{
		label:  "STYLE",
		assign: func(a *models.RoomAnalysis, items []string) { a.Style = first(items) },
	},
	{
		label:  "ESTIMATED_SIZE",
		assign: func(a *models.RoomAnalysis, items []string) { a.Dimensions.EstimatedSize = first(items) },
	},
	{
		label:  "AVAILABLE_SPACE",
		commas: true,
		assign: func(a *models.RoomAnalysis, items []string) { a.Dimensions.AvailableSpace = items },
	},
	{
		label:  "LIGHTING",
		assign: func(a *models.RoomAnalysis, items []string) { a.Lighting = first(items) },
	},
	{
		label:  "IMPROVEMENT_SUGGESTIONS",
		commas: true,
		assign: func(a *models.RoomAnalysis, items []string) { a.Suggestions = items },
	},
	{
		label:  "FURNITURE_KEYWORDS",
		commas: true,
		assign: func(a *models.RoomAnalysis, items []string) {
			keywords := make([]string, 0, len(items))
			for _, item := range items {
				if kw := strings.ToLower(item); kw != "" {
					keywords = append(keywords, kw)
				}
			}
			a.FurnitureKeywords = keywords
		},
	},
}

var (
	labelPattern = buildLabelPattern()
	bulletPrefix = regexp.MustCompile(`^(?:[-*•·]+|\d+[.)])\s*`)
)

// buildLabelPattern matches "LABEL:" at the start of a line (any case, "_" or " " between words,
// markdown emphasis or heading marks allowed), the exact uppercase "LABEL:" anywhere on a line,
// or a line holding nothing but a decorated label such as "## Theme".
// Mixed-case prose such as "improve the lighting: ..." is not a label.
func buildLabelPattern() *regexp.Regexp {
	loose := make([]string, 0, len(sections))
	exact := make([]string, 0, len(sections))
	for _, s := range sections {
		loose = append(loose, strings.ReplaceAll(s.label, "_", "[_ ]"))
		exact = append(exact, s.label)
	}
	alt := strings.Join(loose, "|")
	return regexp.MustCompile(`(?m)^[ \t#>*_]*(?i:(` + alt + `))[*_]*[ \t]*:` +
		`|\b(` + strings.Join(exact, "|") + `)[*_]*[ \t]*:` +
		`|^[ \t#>*]*(?i:(` + alt + `))[ \t*_#:]*$`)
}

func canonicalLabel(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), " ", "_")
}

// extractSections returns the raw text of each section, keyed by canonical label.
// A section runs from its label to the next known label or the end of the reply; the first
// occurrence of a label wins.
func extractSections(text string) map[string]string {
	matches := labelPattern.FindAllStringSubmatchIndex(text, -1)
	out := make(map[string]string, len(sections))

	for i, m := range matches {
		label := ""
		for g := 2; g+1 < len(m); g += 2 {
			if m[g] >= 0 {
				label = canonicalLabel(text[m[g]:m[g+1]])
				break
			}
		}
		if label == "" {
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		if _, seen := out[label]; seen {
			continue
		}
		out[label] = strings.TrimSpace(text[m[1]:end])
	}

	return out
}

// splitItems breaks a section into trimmed, non-empty fragments
func splitItems(text string, commas bool) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range strings.Split(line, "•") {
			chunk = bulletPrefix.ReplaceAllString(strings.TrimSpace(chunk), "")
			pieces := []string{chunk}
			if commas {
				pieces = strings.FieldsFunc(chunk, func(r rune) bool { return r == ',' || r == ';' })
			}
			for _, p := range pieces {
				if p = cleanItem(p, commas); p != "" {
					items = append(items, p)
				}
			}
		}
	}
	return items
}

func cleanItem(s string, stripPeriod bool) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_\"'`")
	s = strings.TrimSpace(s)
	if stripPeriod {
		s = strings.TrimRight(s, ".")
	}
	return strings.TrimSpace(s)
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// Parse turns a free-text model reply into a fully populated RoomAnalysis.
// Sections that are missing or empty take the documented per-field defaults.
func Parse(text string) models.RoomAnalysis {
	raw := extractSections(text)

	var a models.RoomAnalysis
	for _, s := range sections {
		body, ok := raw[s.label]
		if !ok {
			continue
		}
		s.assign(&a, splitItems(body, s.commas))
	}

	return withDefaults(a)
}

func withDefaults(a models.RoomAnalysis) models.RoomAnalysis {
	d := DefaultAnalysis()
	if len(a.ColorPalette) == 0 {
		a.ColorPalette = d.ColorPalette
	}
	if a.Theme == "" {
		a.Theme = d.Theme
	}
	if a.Style == "" {
		a.Style = d.Style
	}
	if a.Dimensions.EstimatedSize == "" {
		a.Dimensions.EstimatedSize = d.Dimensions.EstimatedSize
	}
	if len(a.Dimensions.AvailableSpace) == 0 {
		a.Dimensions.AvailableSpace = d.Dimensions.AvailableSpace
	}
	if a.Lighting == "" {
		a.Lighting = d.Lighting
	}
	if len(a.Suggestions) == 0 {
		a.Suggestions = d.Suggestions
	}
	if len(a.FurnitureKeywords) == 0 {
		a.FurnitureKeywords = d.FurnitureKeywords
	}
	return a
}
