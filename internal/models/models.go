package models

import "strings"

// LocalIDPrefix marks furniture items served from the bundled fallback catalog
const LocalIDPrefix = "local-"

// RoomAnalysis is the structured description of a photographed room
type RoomAnalysis struct {
	ColorPalette      []string   `json:"colorPalette" yaml:"colorpalette"`
	Theme             string     `json:"theme" yaml:"theme"`
	Style             string     `json:"style" yaml:"style"`
	Dimensions        Dimensions `json:"dimensions" yaml:"dimensions"`
	Lighting          string     `json:"lighting" yaml:"lighting"`
	Suggestions       []string   `json:"suggestions" yaml:"suggestions"`
	FurnitureKeywords []string   `json:"furnitureKeywords" yaml:"furniturekeywords"`
}

// Dimensions describes the room size and the spots where furniture could go
type Dimensions struct {
	EstimatedSize  string   `json:"estimatedSize" yaml:"estimatedsize"`
	AvailableSpace []string `json:"availableSpace" yaml:"availablespace"`
}

// FurnitureItem is a single 3D-viewable furniture asset, remote or local
type FurnitureItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Thumbnail      string   `json:"thumbnail"`
	ViewerURL      string   `json:"viewerUrl,omitempty"`
	EmbedURL       string   `json:"embedUrl,omitempty"`
	DownloadURL    string   `json:"downloadUrl,omitempty"` // empty when no binary glTF is available
	Author         string   `json:"author"`
	LikeCount      int      `json:"likeCount"`
	ViewCount      int      `json:"viewCount"`
	Tags           []string `json:"tags"`
	Category       string   `json:"category"`
	IsDownloadable bool     `json:"isDownloadable"`
	License        string   `json:"license"`
}

// IsLocal reports whether the item comes from the bundled fallback catalog
func (f FurnitureItem) IsLocal() bool {
	return strings.HasPrefix(f.ID, LocalIDPrefix)
}
