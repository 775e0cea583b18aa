package analysis

import "github.com/vibear-app/vibear/internal/models"

// DefaultAnalysis holds the per-field values used when a reply lacks a section.
// Every call returns fresh slices.
func DefaultAnalysis() models.RoomAnalysis {
	return models.RoomAnalysis{
		ColorPalette: []string{"Neutral White", "Warm Beige", "Soft Gray"},
		Theme:        "Modern Contemporary",
		Style:        "Minimalist",
		Dimensions: models.Dimensions{
			EstimatedSize:  "Medium-sized room",
			AvailableSpace: []string{"Corner near window", "Center of room", "Along the wall"},
		},
		Lighting: "Natural daylight",
		Suggestions: []string{
			"Add accent lighting to create warmth",
			"Introduce plants to bring life to the space",
			"Use an area rug to define the seating zone",
		},
		FurnitureKeywords: []string{"chair", "table", "sofa"},
	}
}

// FailureAnalysis is returned whenever the vision service cannot be used or its reply is unusable.
// The field values say so explicitly so the result can be rendered like any other analysis.
func FailureAnalysis() models.RoomAnalysis {
	return models.RoomAnalysis{
		ColorPalette: []string{"Neutral", "White", "Gray"},
		Theme:        "Analysis unavailable",
		Style:        "Analysis unavailable",
		Dimensions: models.Dimensions{
			EstimatedSize:  "Unable to estimate room size",
			AvailableSpace: []string{"Unable to determine available space"},
		},
		Lighting:          "Unable to assess lighting",
		Suggestions:       []string{"Try taking another photo with better lighting"},
		FurnitureKeywords: []string{"furniture", "chair", "table"},
	}
}
