package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vibear-app/vibear/internal/models"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgYellow)
	faint   = color.New(color.Faint)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAnalysis(w io.Writer, a models.RoomAnalysis) {
	heading.Fprintln(w, "Room analysis")
	printField(w, "Theme", a.Theme)
	printField(w, "Style", a.Style)
	printField(w, "Palette", strings.Join(a.ColorPalette, ", "))
	printField(w, "Size", a.Dimensions.EstimatedSize)
	printField(w, "Lighting", a.Lighting)
	printList(w, "Available space", a.Dimensions.AvailableSpace)
	printList(w, "Suggestions", a.Suggestions)
	printField(w, "Keywords", strings.Join(a.FurnitureKeywords, ", "))
}

func printField(w io.Writer, name, value string) {
	label.Fprintf(w, "  %-10s ", name+":")
	fmt.Fprintln(w, value)
}

func printList(w io.Writer, name string, items []string) {
	label.Fprintf(w, "  %s:\n", name)
	for _, item := range items {
		fmt.Fprintf(w, "    - %s\n", item)
	}
}

func printFurniture(w io.Writer, items []models.FurnitureItem) {
	heading.Fprintf(w, "Furniture (%d)\n", len(items))
	for _, item := range items {
		fmt.Fprintf(w, "  %s ", item.Name)
		faint.Fprintf(w, "[%s]", item.ID)
		if item.Author != "" {
			faint.Fprintf(w, " by %s", item.Author)
		}
		fmt.Fprintln(w)
		if item.DownloadURL == "" {
			failure.Fprintln(w, "    no AR model available")
		} else {
			success.Fprintf(w, "    %s\n", item.DownloadURL)
		}
	}
}
