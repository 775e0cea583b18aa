package furniture

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibear-app/vibear/internal/models"
)

func TestResolve(t *testing.T) {
	last := func(n int) int { return n - 1 }
	resolver := NewARResolver(last)

	assert.Equal(t, "model.glb", resolver.Resolve(models.FurnitureItem{DownloadURL: "model.glb"}))
	assert.Equal(t, PlaceholderModels[2], resolver.Resolve(models.FurnitureItem{}))
	assert.Equal(t, PlaceholderModels[2], resolver.Resolve(models.FurnitureItem{DownloadURL: "https://cdn/archive.zip"}))
}

func TestResolveRandomPlaceholder(t *testing.T) {
	resolver := NewARResolver(nil)
	for i := 0; i < 50; i++ {
		got := resolver.Resolve(models.FurnitureItem{})
		assert.Contains(t, PlaceholderModels, got)
	}
}

func TestHandOff(t *testing.T) {
	item := models.FurnitureItem{ID: "local-sofa", Name: "Modern Sofa"}
	const (
		origin = "https://vibear.example"
		page   = "https://vibear.example/room?step=placing"
	)

	t.Run("ios quick look", func(t *testing.T) {
		ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
		launch := HandOff(item, "/static/models/sofa.glb", ua, origin, page)
		assert.Equal(t, ViewerQuickLook, launch.Viewer)
		assert.Equal(t, "https://vibear.example/static/models/sofa.glb", launch.Href)
		assert.Equal(t, "ar", launch.Rel)
		assert.Equal(t, "Modern Sofa", launch.Download)
	})

	t.Run("android scene viewer", func(t *testing.T) {
		ua := "Mozilla/5.0 (Linux; Android 14; Pixel 8)"
		launch := HandOff(item, "/static/models/sofa.glb", ua, origin, page)
		assert.Equal(t, ViewerSceneViewer, launch.Viewer)
		require.True(t, strings.HasPrefix(launch.Href, "intent://arvr.google.com/scene-viewer/1.0?file="))
		assert.Contains(t, launch.Href, url.QueryEscape("https://vibear.example/static/models/sofa.glb"))
		assert.Contains(t, launch.Href, "package=com.google.android.googlequicksearchbox")
		assert.Contains(t, launch.Href, "S.browser_fallback_url="+url.QueryEscape(page)+";end;")
		assert.Empty(t, launch.Rel)
	})

	t.Run("desktop model viewer", func(t *testing.T) {
		remote := "https://modelviewer.dev/shared-assets/models/Duck.glb"
		launch := HandOff(item, remote, "Mozilla/5.0 (X11; Linux x86_64)", origin, page)
		assert.Equal(t, ViewerModelViewer, launch.Viewer)
		assert.Equal(t, remote, launch.ModelURL)
		assert.Equal(t, "https://modelviewer.dev/editor/?model="+url.QueryEscape(remote), launch.Href)
	})

	t.Run("relative url without origin", func(t *testing.T) {
		launch := HandOff(item, "/static/models/sofa.glb", "", "", page)
		assert.Equal(t, "/static/models/sofa.glb", launch.ModelURL)
	})
}
