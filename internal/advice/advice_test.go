package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vibear-app/vibear/internal/models"
)

func room() models.RoomAnalysis {
	return models.RoomAnalysis{
		ColorPalette: []string{"Walnut Brown", "Warm Beige"},
		Theme:        "Rustic Furniture Loft",
		Style:        "Industrial",
		Dimensions: models.Dimensions{
			EstimatedSize:  "small",
			AvailableSpace: []string{"Corner near window"},
		},
		Lighting:          "soft evening light",
		FurnitureKeywords: []string{"chair", "rug"},
	}
}

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains []string
	}{
		{
			name:  "empty room",
			query: "This space is EMPTY, suggest furniture",
			contains: []string{
				"I can see this small space!",
				"A warm wood chair in the Corner near window",
				"complements the Walnut Brown tones",
				"enhance the Industrial aesthetic",
			},
		},
		{
			name:     "colors",
			query:    "What colors would work here?",
			contains: []string{"lovely Walnut Brown, Warm Beige palette", "existing Rustic Furniture Loft style"},
		},
		{
			name:     "anything else",
			query:    "make it cozy",
			contains: []string{"Based on your Rustic Furniture Loft Industrial space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reply(room(), tt.query)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestReplyModernChairWithoutWarmTones(t *testing.T) {
	a := room()
	a.ColorPalette = []string{"Cool Gray"}
	assert.Contains(t, Reply(a, "add something"), "A modern chair in the")
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		item     models.FurnitureItem
		expected string
	}{
		{
			name:     "style and color",
			item:     models.FurnitureItem{Name: "Oak Chair", Description: "Solid wood", Category: "Furniture"},
			expected: "This Oak Chair perfectly matches your Rustic Furniture Loft style and complements the Walnut Brown tones in your space. ",
		},
		{
			name:     "style via tag",
			item:     models.FurnitureItem{Name: "Rug", Category: "Decor", Tags: []string{"rug"}},
			expected: "This Rug aligns beautifully with your Rustic Furniture Loft aesthetic. ",
		},
		{
			name:     "color only",
			item:     models.FurnitureItem{Name: "Shelf", Description: "Reclaimed WOOD", Category: "Storage"},
			expected: "This Shelf harmonizes well with your room's color palette. ",
		},
		{
			name:     "contrast",
			item:     models.FurnitureItem{Name: "Lamp", Category: "Lighting"},
			expected: "This Lamp adds an interesting contrast to your space. ",
		},
	}

	a := room()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(&a, tt.item, nil)
			assert.Equal(t, tt.expected+"Placed in the Corner near window, it would enhance the room's functionality while maintaining good flow and visual balance.", got)
		})
	}
}

func TestExplainWithoutAnalysis(t *testing.T) {
	item := models.FurnitureItem{Name: "Modern Sofa"}
	second := func(int) int { return 1 }

	got := Explain(nil, item, second)
	assert.Equal(t, "The style of this Modern Sofa creates a nice focal point and improves the flow of your room.", got)
	assert.NotEmpty(t, Explain(nil, item, nil))
}
