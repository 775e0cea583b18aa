// Package advice writes the short conversational texts shown next to an analysis and a placed item.
package advice

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vibear-app/vibear/internal/furniture"
	"github.com/vibear-app/vibear/internal/models"
)

// Reply answers a free-text request about the analyzed room
func Reply(a models.RoomAnalysis, query string) string {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "empty") || strings.Contains(q, "add"):
		chair := "modern"
		if anyContains(a.ColorPalette, "warm") {
			chair = "warm wood"
		}
		return fmt.Sprintf(`I can see this %s space! Based on the %s style and %s, I recommend adding:

• A %s chair in the %s
• A coffee table that complements the %s tones
• Some decorative elements to enhance the %s aesthetic

The natural lighting here would work beautifully with these suggestions!`,
			a.Dimensions.EstimatedSize, a.Theme, a.Lighting,
			chair, firstOr(a.Dimensions.AvailableSpace, "open area"),
			firstOr(a.ColorPalette, "neutral"),
			a.Style)

	case strings.Contains(q, "color"):
		return fmt.Sprintf("Your room has a lovely %s palette! I'd suggest furniture in complementary tones that won't clash with your existing %s style.",
			strings.Join(a.ColorPalette, ", "), a.Theme)

	default:
		return fmt.Sprintf("Based on your %s %s space, here are some personalized suggestions that would enhance the room's flow and functionality.",
			a.Theme, a.Style)
	}
}

// Explain says why item suits the room. Without an analysis one of the generic explanations is
// chosen with pick; nil pick uses furniture.RandomPicker.
func Explain(a *models.RoomAnalysis, item models.FurnitureItem, pick furniture.Picker) string {
	if a == nil {
		generic := []string{
			fmt.Sprintf("This %s complements the natural lighting in your space and matches the color palette perfectly.", item.Name),
			fmt.Sprintf("The style of this %s creates a nice focal point and improves the flow of your room.", item.Name),
			"This piece adds both functionality and aesthetic appeal, balancing the proportions of your space beautifully.",
			fmt.Sprintf("The %s enhances the room's ambiance while providing practical value for everyday use.", item.Name),
		}
		if pick == nil {
			pick = furniture.RandomPicker
		}
		return generic[pick(len(generic))]
	}

	styleMatch := (item.Category != "" && strings.Contains(strings.ToLower(a.Theme), strings.ToLower(item.Category))) ||
		slices.ContainsFunc(item.Tags, func(tag string) bool { return slices.Contains(a.FurnitureKeywords, tag) })
	colorMatch := strings.Contains(strings.ToLower(item.Description), "wood") && anyContains(a.ColorPalette, "brown")

	var b strings.Builder
	fmt.Fprintf(&b, "This %s ", item.Name)
	switch {
	case styleMatch && colorMatch:
		fmt.Fprintf(&b, "perfectly matches your %s style and complements the %s tones in your space. ", a.Theme, firstOr(a.ColorPalette, "neutral"))
	case styleMatch:
		fmt.Fprintf(&b, "aligns beautifully with your %s aesthetic. ", a.Theme)
	case colorMatch:
		b.WriteString("harmonizes well with your room's color palette. ")
	default:
		b.WriteString("adds an interesting contrast to your space. ")
	}
	fmt.Fprintf(&b, "Placed in the %s, it would enhance the room's functionality while maintaining good flow and visual balance.",
		firstOr(a.Dimensions.AvailableSpace, "open area"))

	return b.String()
}

func anyContains(values []string, sub string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.Contains(strings.ToLower(v), sub)
	})
}

func firstOr(values []string, def string) string {
	if len(values) == 0 || values[0] == "" {
		return def
	}
	return values[0]
}
