// internal/models/photo.go
package models

// PhotoRecord is one entry in photos.json. The field order matches the
// published file, which is committed to the site repository and must stay
// human-diffable.
//
// Title, category, location and the coordinates are derived from the file
// once, when the record is first created; after that the stored values win
// over re-derivation so operator edits survive re-scans. Thumbnail and Full
// are recomputed on every run from the filename and hosting configuration.
type PhotoRecord struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Thumbnail string   `json:"thumbnail"`
	Full      string   `json:"full"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Location  string   `json:"location"`
	Date      string   `json:"date"` // ISO 8601 date, e.g. 2025-06-19
	Filename  string   `json:"filename"`
}

// HasCoords reports whether the record carries a coordinate pair.
// Lat and Lng are always both set or both null, never half-specified.
func (r *PhotoRecord) HasCoords() bool {
	return r.Lat != nil && r.Lng != nil
}
