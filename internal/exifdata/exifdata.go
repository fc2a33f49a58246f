package exifdata

import (
	"log"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Meta holds the embedded metadata of one photo. Each field is independently
// optional; absent data stays nil.
type Meta struct {
	Lat     *float64
	Lng     *float64
	TakenAt *time.Time
}

// Read extracts GPS coordinates and the capture date from a photo's EXIF
// block. Missing or unreadable metadata is a non-fatal condition: it is
// logged as a warning and Read returns an empty Meta, so one bad file never
// aborts a run.
func Read(path string) Meta {
	const op = "exifdata.Read"

	f, err := os.Open(path)
	if err != nil {
		log.Printf("%s: %v", op, err)
		return Meta{}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		log.Printf("%s: no usable EXIF in %s: %v", op, path, err)
		return Meta{}
	}

	var m Meta
	if t, err := x.DateTime(); err == nil {
		m.TakenAt = &t
	}
	if lat, lng, err := x.LatLong(); err == nil {
		// Both or neither: a half-specified coordinate pair never leaves
		// this package.
		m.Lat, m.Lng = &lat, &lng
	}
	return m
}
