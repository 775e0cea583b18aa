package furniture

import "github.com/vibear-app/vibear/internal/models"

// LocalAssetPath is where the bundled .glb files are served from
const LocalAssetPath = "/static/models/"

const (
	localAuthor  = "Local Collection"
	localLicense = "Free"
)

// FallbackCatalog returns the bundled items shown when the remote search yields nothing.
// Every call returns a fresh copy in the same order.
func FallbackCatalog() []models.FurnitureItem {
	return []models.FurnitureItem{
		{
			ID:             models.LocalIDPrefix + "chair",
			Name:           "Vintage Wooden Chair",
			Description:    "A classic wooden chair perfect for dining or office use. Features traditional craftsmanship with comfortable seating.",
			Thumbnail:      "https://images.unsplash.com/photo-1549497538-303791108f95?w=400&h=400&fit=crop",
			DownloadURL:    LocalAssetPath + "old_wooden_chair.glb",
			Author:         localAuthor,
			LikeCount:      95,
			ViewCount:      1250,
			Tags:           []string{"wood", "chair", "vintage", "furniture", "seating"},
			Category:       "Furniture",
			License:        localLicense,
			IsDownloadable: true,
		},
		{
			ID:             models.LocalIDPrefix + "sofa",
			Name:           "Modern Sofa",
			Description:    "Comfortable modern sofa perfect for living room. Spacious seating with contemporary design.",
			Thumbnail:      "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=400&fit=crop",
			DownloadURL:    LocalAssetPath + "sofa.glb",
			Author:         localAuthor,
			LikeCount:      156,
			ViewCount:      2100,
			Tags:           []string{"sofa", "modern", "living room", "furniture", "seating"},
			Category:       "Furniture",
			License:        localLicense,
			IsDownloadable: true,
		},
		{
			ID:             models.LocalIDPrefix + "bed",
			Name:           "Wooden Bed Frame",
			Description:    "Elegant wooden bed frame for bedroom. Sturdy construction with classic wood finish.",
			Thumbnail:      "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop",
			DownloadURL:    LocalAssetPath + "wooden_bed.glb",
			Author:         localAuthor,
			LikeCount:      203,
			ViewCount:      3200,
			Tags:           []string{"bed", "wood", "bedroom", "furniture", "sleep"},
			Category:       "Furniture",
			License:        localLicense,
			IsDownloadable: true,
		},
		{
			ID:             models.LocalIDPrefix + "clock",
			Name:           "Steampunk Decorative Clock",
			Description:    "Unique steampunk-style decorative clock. Perfect accent piece for vintage or industrial themes.",
			Thumbnail:      "https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?w=400&h=400&fit=crop",
			DownloadURL:    LocalAssetPath + "broken_steampunk_clock.glb",
			Author:         localAuthor,
			LikeCount:      78,
			ViewCount:      890,
			Tags:           []string{"clock", "steampunk", "decoration", "vintage", "industrial"},
			Category:       "Decor",
			License:        localLicense,
			IsDownloadable: true,
		},
		{
			ID:             models.LocalIDPrefix + "table",
			Name:           "Modern Coffee Table",
			Description:    "Sleek modern coffee table ideal for living rooms. Clean lines and functional design.",
			Thumbnail:      "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop",
			DownloadURL:    LocalAssetPath + "215a41d8b6d44ecdbd70cc9680c0f585.glb",
			Author:         localAuthor,
			LikeCount:      124,
			ViewCount:      1890,
			Tags:           []string{"table", "coffee table", "modern", "furniture", "living room"},
			Category:       "Furniture",
			License:        localLicense,
			IsDownloadable: true,
		},
	}
}

// localItem looks up a fallback catalog entry by id
func localItem(id string) (models.FurnitureItem, bool) {
	for _, item := range FallbackCatalog() {
		if item.ID == id {
			return item, true
		}
	}
	return models.FurnitureItem{}, false
}

// IsFallback reports whether a result set is the bundled catalog, i.e. remote search came up empty
func IsFallback(items []models.FurnitureItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.IsLocal() {
			return false
		}
	}
	return true
}
