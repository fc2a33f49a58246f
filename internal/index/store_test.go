package index

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"photoindex/internal/models"
)

func TestLoadMissingFile(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "photos.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if records != nil {
		t.Errorf("expect empty set, got %v", records)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lat, lng := 48.8584, 2.2945
	records := []models.PhotoRecord{
		{ID: 1, Title: "Tower", Category: "street",
			Thumbnail: "https://host/x.jpg", Full: "https://host/x.jpg",
			Lat: &lat, Lng: &lng, Location: "48.8584, 2.2945",
			Date: "2025-05-01", Filename: "x.jpg"},
		{ID: 2, Title: "Fog", Category: "nature",
			Thumbnail: "https://host/y.jpg", Full: "https://host/y.jpg",
			Location: "Unknown", Date: "2025-05-02", Filename: "y.jpg"},
	}

	path := filepath.Join(t.TempDir(), "photos.json")
	if err := Save(path, records); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(records, got) {
		t.Errorf("round trip mismatch\nwant %+v\ngot  %+v", records, got)
	}
}

func TestSaveOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photos.json")
	records := []models.PhotoRecord{
		{ID: 1, Title: "A", Category: "street",
			Thumbnail: "t", Full: "f", Location: "Unknown",
			Date: "2025-01-01", Filename: "a.jpg"},
	}
	if err := Save(path, records); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// Absent coordinates serialize as explicit null, never omitted: the
	// map frontend relies on one consistent sentinel.
	if !bytes.Contains(data, []byte(`"lat": null`)) || !bytes.Contains(data, []byte(`"lng": null`)) {
		t.Errorf("expect explicit null coordinates, got:\n%s", data)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Errorf("expect trailing newline")
	}
	if !strings.HasPrefix(string(data), "[\n  {") {
		t.Errorf("expect two-space indented array, got:\n%s", data)
	}

	// Saving the same set again is byte-identical.
	if err := Save(path, records); err != nil {
		t.Fatalf("second save: %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("repeated save not byte-identical")
	}
}

func TestSaveEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photos.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expect empty array, got %q", data)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photos.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "photos.json" {
		t.Errorf("expect only photos.json in %s, got %v", dir, entries)
	}
}
