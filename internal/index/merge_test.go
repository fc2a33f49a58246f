package index

import (
	"reflect"
	"testing"

	"photoindex/internal/models"
)

func candidate(name, category, title, date string) Candidate {
	return Candidate{
		Filename: name,
		Category: category,
		Title:    title,
		Location: "Unknown",
		Date:     date,
	}
}

func testURLs() URLBuilder { return flatURLs{"https://host.example/v1"} }

type flatURLs struct{ base string }

func (u flatURLs) ThumbnailURL(f string) string { return u.base + "/" + f }
func (u flatURLs) FullURL(f string) string      { return u.base + "/" + f }

func TestMergeFirstRun(t *testing.T) {
	scanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("b.jpg", "nature", "B", "2025-01-02"),
	}
	res := Merge(nil, scanned, testURLs())

	if res.Created != 2 || res.Refreshed != 0 || res.Retained != 0 {
		t.Fatalf("expect 2 created, got %+v", res)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expect 2 records, got %d", len(res.Records))
	}
	for i, r := range res.Records {
		if r.ID != i+1 {
			t.Errorf("record %d expect id %d, got %d", i, i+1, r.ID)
		}
	}
	if !reflect.DeepEqual(res.NeedUpload, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("expect both files pending upload, got %v", res.NeedUpload)
	}
	if res.Records[0].Full != "https://host.example/v1/a.jpg" {
		t.Errorf("unexpected url %q", res.Records[0].Full)
	}
}

func TestMergeIdempotent(t *testing.T) {
	scanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("b.jpg", "nature", "B", "2025-01-02"),
	}
	first := Merge(nil, scanned, testURLs())
	second := Merge(first.Records, scanned, testURLs())

	if len(second.NeedUpload) != 0 {
		t.Errorf("second run expect zero uploads, got %v", second.NeedUpload)
	}
	if second.Created != 0 || second.Refreshed != 2 {
		t.Errorf("second run expect 0 created 2 refreshed, got %+v", second)
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Errorf("expect identical record sets\nfirst:  %+v\nsecond: %+v",
			first.Records, second.Records)
	}
}

func TestMergePreservesManualEdits(t *testing.T) {
	scanned := []Candidate{candidate("x.jpg", "street", "X", "2025-01-01")}
	first := Merge(nil, scanned, testURLs())

	edited, err := Apply(first.Records, "x.jpg", "title", "Foo")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	edited, err = Apply(edited, "x.jpg", "coords", "52.52,13.405")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Re-running inference must not clobber the edits.
	rescanned := []Candidate{candidate("x.jpg", "faces", "Different", "2024-12-31")}
	res := Merge(edited, rescanned, testURLs())

	r := res.Records[0]
	if r.Title != "Foo" {
		t.Errorf("expect edited title preserved, got %q", r.Title)
	}
	if r.Category != "street" {
		t.Errorf("expect category preserved, got %q", r.Category)
	}
	if !r.HasCoords() || *r.Lat != 52.52 || *r.Lng != 13.405 {
		t.Errorf("expect edited coords preserved, got %v %v", r.Lat, r.Lng)
	}
	if r.Date != "2025-01-01" {
		t.Errorf("expect original date preserved, got %q", r.Date)
	}
}

func TestMergeIDStability(t *testing.T) {
	scanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("b.jpg", "street", "B", "2025-01-01"),
	}
	first := Merge(nil, scanned, testURLs())

	// b disappears from disk, c appears. b keeps its record and id; c
	// gets a fresh id above the historical maximum.
	rescanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("c.jpg", "street", "C", "2025-01-03"),
	}
	res := Merge(first.Records, rescanned, testURLs())

	if res.Retained != 1 {
		t.Fatalf("expect b retained, got %+v", res)
	}
	ids := map[string]int{}
	for _, r := range res.Records {
		ids[r.Filename] = r.ID
	}
	if ids["a.jpg"] != 1 || ids["b.jpg"] != 2 || ids["c.jpg"] != 3 {
		t.Errorf("unexpected ids: %v", ids)
	}

	// Sorted ascending by id.
	for i := 1; i < len(res.Records); i++ {
		if res.Records[i-1].ID >= res.Records[i].ID {
			t.Errorf("records not sorted by id: %v", res.Records)
		}
	}
}

func TestMergeRetainedKeepsURLs(t *testing.T) {
	gone := models.PhotoRecord{
		ID: 1, Filename: "old.jpg", Title: "Old", Category: "street",
		Thumbnail: "https://old.example/old.jpg",
		Full:      "https://old.example/old.jpg",
		Date:      "2024-01-01", Location: "Unknown",
	}
	res := Merge([]models.PhotoRecord{gone}, nil, testURLs())

	if res.Retained != 1 || len(res.Records) != 1 {
		t.Fatalf("expect the record retained, got %+v", res)
	}
	if res.Records[0] != gone {
		t.Errorf("retained record changed: %+v", res.Records[0])
	}
}

func TestMergeDuplicateScanEntries(t *testing.T) {
	scanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("a.jpg", "street", "A", "2025-01-01"),
	}
	res := Merge(nil, scanned, testURLs())
	if len(res.Records) != 1 {
		t.Errorf("expect one record per filename, got %d", len(res.Records))
	}
}

func TestWithoutFilenames(t *testing.T) {
	scanned := []Candidate{
		candidate("a.jpg", "street", "A", "2025-01-01"),
		candidate("b.jpg", "street", "B", "2025-01-01"),
		candidate("c.jpg", "street", "C", "2025-01-01"),
	}
	res := Merge(nil, scanned, testURLs())

	// b's upload failed: it is withheld, a and c are still written.
	kept := WithoutFilenames(res.Records, map[string]bool{"b.jpg": true})
	if len(kept) != 2 {
		t.Fatalf("expect 2 records, got %d", len(kept))
	}
	if kept[0].Filename != "a.jpg" || kept[1].Filename != "c.jpg" {
		t.Errorf("unexpected records: %+v", kept)
	}

	if got := WithoutFilenames(res.Records, nil); len(got) != 3 {
		t.Errorf("empty failed set must keep all records, got %d", len(got))
	}
}

func TestMergeCoordinatePairing(t *testing.T) {
	lat, lng := 52.52, 13.405
	located := Candidate{Filename: "gps.jpg", Category: "street", Title: "GPS",
		Date: "2025-01-01", Lat: &lat, Lng: &lng, Location: "52.5200, 13.4050"}

	res := Merge(nil, []Candidate{
		located,
		candidate("nogps.jpg", "street", "No GPS", "2025-01-01"),
	}, testURLs())

	for _, r := range res.Records {
		if (r.Lat == nil) != (r.Lng == nil) {
			t.Errorf("half-specified coordinates on %s", r.Filename)
		}
	}
	if !res.Records[0].HasCoords() {
		t.Errorf("expect coords on gps.jpg")
	}
	if res.Records[1].HasCoords() {
		t.Errorf("expect null coords on nogps.jpg")
	}
}
