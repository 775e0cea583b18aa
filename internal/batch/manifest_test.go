package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestNewLoader(t *testing.T) {
	path := "./rooms.jsonl"
	loader := NewLoader(path)

	if loader.manifestPath != path {
		t.Errorf("Expected path %s, got %s", path, loader.manifestPath)
	}
	if loader.Dir() != "." {
		t.Errorf("Expected dir ., got %s", loader.Dir())
	}
}

func TestLoadJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.jsonl")
	content := `{"id":"living","image_path":"photos/living.jpg","context":"bright","query":"add a lamp"}

{"image_path":"photos/bedroom.png"}
{"id":"office","image_path":"/abs/office.jpg"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := NewLoader(path).Load(0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	if rows[0].ID != "living" || rows[0].Context != "bright" || rows[0].Query != "add a lamp" {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if rows[1].ID != "bedroom" {
		t.Errorf("Expected ID derived from file name, got %q", rows[1].ID)
	}
	if rows[2].ImagePath != "/abs/office.jpg" {
		t.Errorf("Expected absolute path kept, got %q", rows[2].ImagePath)
	}
}

func TestLoadJSONLLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.jsonl")
	content := `{"image_path":"a.jpg"}
{"image_path":"b.jpg"}
{"image_path":"c.jpg"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := NewLoader(path).Load(2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(rows))
	}
}

func TestLoadParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.parquet")
	written := []Row{
		{ID: "living", ImagePath: "living.jpg", Query: "warmer"},
		{ID: "kitchen", ImagePath: "kitchen.jpg"},
		{ImagePath: "hall.jpg"},
	}
	if err := parquet.WriteFile(path, written); err != nil {
		t.Fatalf("failed to write parquet: %v", err)
	}

	rows, err := NewLoader(path).Load(0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Query != "warmer" {
		t.Errorf("Expected query warmer, got %q", rows[0].Query)
	}
	if rows[2].ID != "hall" {
		t.Errorf("Expected ID hall, got %q", rows[2].ID)
	}

	limited, err := NewLoader(path).Load(1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 row, got %d", len(limited))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	missingImage := filepath.Join(dir, "missing.jsonl")
	if err := os.WriteFile(missingImage, []byte(`{"id":"x"}`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badJSON := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(badJSON, []byte("{not json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "unsupported extension", path: filepath.Join(dir, "rooms.csv")},
		{name: "missing file", path: filepath.Join(dir, "nope.jsonl")},
		{name: "row without image path", path: missingImage},
		{name: "malformed line", path: badJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader(tt.path).Load(0); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
