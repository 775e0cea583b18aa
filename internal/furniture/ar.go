package furniture

import (
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
)

// PlaceholderModels are public sample models shown when an item has no usable .glb
var PlaceholderModels = []string{
	"https://modelviewer.dev/shared-assets/models/Astronaut.glb",
	"https://modelviewer.dev/shared-assets/models/DamagedHelmet.glb",
	"https://modelviewer.dev/shared-assets/models/Duck.glb",
}

// Picker returns an index in [0, n)
type Picker func(n int) int

// RandomPicker picks uniformly at random
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// ARResolver chooses the asset URL handed to an AR viewer
type ARResolver struct {
	pick Picker
}

// NewARResolver creates a resolver; a nil picker uses RandomPicker
func NewARResolver(pick Picker) *ARResolver {
	if pick == nil {
		pick = RandomPicker
	}
	return &ARResolver{pick: pick}
}

// Resolve returns the item's own binary glTF when it has one, otherwise a placeholder.
// It never returns an empty string.
func (r *ARResolver) Resolve(item models.FurnitureItem) string {
	if strings.Contains(item.DownloadURL, ".glb") {
		return item.DownloadURL
	}
	return PlaceholderModels[r.pick(len(PlaceholderModels))]
}

// Viewer kinds returned by HandOff
const (
	ViewerQuickLook   = "quick-look"
	ViewerSceneViewer = "scene-viewer"
	ViewerModelViewer = "model-viewer"
)

// Launch describes how a client should open an asset in AR
type Launch struct {
	Viewer   string `json:"viewer"`
	ModelURL string `json:"modelUrl"`
	Href     string `json:"href"`
	Rel      string `json:"rel,omitempty"`
	Download string `json:"download,omitempty"`
}

var (
	iosAgent     = regexp.MustCompile(`iPad|iPhone|iPod`)
	androidAgent = regexp.MustCompile(`Android`)
)

// HandOff builds the platform-specific AR launch for modelURL. Relative URLs are resolved against
// origin; pageURL is where Scene Viewer returns when AR is unavailable.
func HandOff(item models.FurnitureItem, modelURL, userAgent, origin, pageURL string) Launch {
	full := absoluteURL(modelURL, origin)

	switch {
	case iosAgent.MatchString(userAgent):
		return Launch{
			Viewer:   ViewerQuickLook,
			ModelURL: full,
			Href:     full,
			Rel:      "ar",
			Download: item.Name,
		}
	case androidAgent.MatchString(userAgent):
		intent := "intent://arvr.google.com/scene-viewer/1.0?file=" + url.QueryEscape(full) +
			"&mode=ar_preferred#Intent;scheme=https;package=com.google.android.googlequicksearchbox;" +
			"action=android.intent.action.VIEW;S.browser_fallback_url=" + url.QueryEscape(pageURL) + ";end;"
		return Launch{
			Viewer:   ViewerSceneViewer,
			ModelURL: full,
			Href:     intent,
		}
	default:
		return Launch{
			Viewer:   ViewerModelViewer,
			ModelURL: full,
			Href:     "https://modelviewer.dev/editor/?model=" + url.QueryEscape(full),
		}
	}
}

func absoluteURL(ref, origin string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() || origin == "" {
		return ref
	}
	base, err := url.Parse(origin)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
