package sketchfab

import (
	"fmt"

	"github.com/vibear-app/vibear/internal/models"
)

type apiModel struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnails  struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"thumbnails"`
	User struct {
		DisplayName string `json:"displayName"`
	} `json:"user"`
	LikeCount int `json:"likeCount"`
	ViewCount int `json:"viewCount"`
	Tags      []struct {
		Name string `json:"name"`
	} `json:"tags"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	IsDownloadable bool `json:"isDownloadable"`
	License        *struct {
		Label string `json:"label"`
	} `json:"license"`
	Archives struct {
		GLB *struct {
			URL string `json:"url"`
		} `json:"glb"`
	} `json:"archives"`
}

// urlBuilder produces the viewer and embed URLs for a uid
type urlBuilder func(uid string) (viewer, embed string)

func listURLs(uid string) (string, string) {
	return fmt.Sprintf("https://sketchfab.com/models/%s", uid),
		fmt.Sprintf("https://sketchfab.com/models/%s/embed?autostart=1&ui_controls=1&ui_infos=0&ui_inspector=0&ui_stop=0&ui_watermark=0", uid)
}

// detailURLs are used for a single model, which is shown in the full-screen AR-capable viewer
func detailURLs(uid string) (string, string) {
	return fmt.Sprintf("https://sketchfab.com/models/%s/embed?autostart=1&ui_controls=1&ui_infos=0&ui_inspector=0&ui_stop=0&ui_watermark=1&ui_watermark_link=1", uid),
		fmt.Sprintf("https://sketchfab.com/models/%s/embed?autostart=1&ui_controls=1&ui_infos=0&ui_inspector=0&ui_stop=0&ui_watermark=0&ui_watermark_link=0&ui_ar=1&ui_help=0&ui_settings=0&ui_vr=0&ui_fullscreen=1&ui_annotations=0", uid)
}

func (m apiModel) toItem(urls urlBuilder) models.FurnitureItem {
	viewer, embed := urls(m.UID)

	item := models.FurnitureItem{
		ID:             m.UID,
		Name:           orDefault(m.Name, "Unknown"),
		Description:    orDefault(m.Description, "No description available"),
		ViewerURL:      viewer,
		EmbedURL:       embed,
		Author:         orDefault(m.User.DisplayName, "Unknown"),
		LikeCount:      m.LikeCount,
		ViewCount:      m.ViewCount,
		Tags:           make([]string, 0, len(m.Tags)),
		Category:       "Furniture",
		IsDownloadable: m.IsDownloadable,
		License:        "Unknown",
	}

	if len(m.Thumbnails.Images) > 0 {
		item.Thumbnail = m.Thumbnails.Images[0].URL
	}
	for _, t := range m.Tags {
		item.Tags = append(item.Tags, t.Name)
	}
	if len(m.Categories) > 0 && m.Categories[0].Name != "" {
		item.Category = m.Categories[0].Name
	}
	if m.License != nil && m.License.Label != "" {
		item.License = m.License.Label
	}
	if m.Archives.GLB != nil {
		item.DownloadURL = m.Archives.GLB.URL
	}

	return item
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
