package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"photoindex/internal/models"
)

var (
	// ErrRecordNotFound is returned when no record matches the filename.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidField is returned for unknown fields or malformed values.
	ErrInvalidField = errors.New("invalid field")
)

// EditableFields lists the fields Apply accepts. id and filename are the
// identity of a record and the URL fields are recomputed every run, so
// none of them are editable.
var EditableFields = []string{"title", "category", "location", "date", "coords"}

// Apply sets one field of the record matching filename and returns the
// updated set. The input slice is not modified. Coordinates are edited as
// a pair through the coords field ("lat,lng" or "none") so a record can
// never end up with only one of lat/lng set.
func Apply(records []models.PhotoRecord, filename, field, value string) ([]models.PhotoRecord, error) {
	const op = "index.Apply"

	idx := -1
	for i := range records {
		if records[i].Filename == filename {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrRecordNotFound, filename)
	}

	out := make([]models.PhotoRecord, len(records))
	copy(out, records)
	r := &out[idx]

	switch field {
	case "title":
		r.Title = value
	case "category":
		r.Category = value
	case "location":
		r.Location = value
	case "date":
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return nil, fmt.Errorf("%s: %w: date must be YYYY-MM-DD", op, ErrInvalidField)
		}
		r.Date = value
	case "coords":
		if value == "none" {
			r.Lat, r.Lng = nil, nil
			break
		}
		lat, lng, err := parseCoords(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidField, err)
		}
		r.Lat, r.Lng = &lat, &lng
	case "lat", "lng":
		return nil, fmt.Errorf(`%s: %w: %q: coordinates are edited as a pair, use coords "lat,lng" or "none"`,
			op, ErrInvalidField, field)
	default:
		return nil, fmt.Errorf("%s: %w: %q (editable: %s)",
			op, ErrInvalidField, field, strings.Join(EditableFields, ", "))
	}

	return out, nil
}

func parseCoords(value string) (lat, lng float64, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New(`coords must be "lat,lng" or "none"`)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q", parts[0])
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q", parts[1])
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("coordinates out of range: %s", value)
	}
	return lat, lng, nil
}
