package index

import (
	"sort"

	"photoindex/internal/models"
)

// Candidate is one scanned file together with the metadata derived for it.
// The derived fields are only consulted when the filename is new; for
// filenames that already have a record the stored values win.
type Candidate struct {
	Filename string
	Path     string
	Category string
	Title    string
	Location string
	Lat      *float64
	Lng      *float64
	Date     string
}

// URLBuilder derives the hosted URLs for a filename. URLs are a pure
// function of the filename and current hosting configuration and are
// recomputed on every run.
type URLBuilder interface {
	ThumbnailURL(filename string) string
	FullURL(filename string) string
}

// Result is the outcome of a merge.
type Result struct {
	// Records is the merged set, sorted by ascending id.
	Records []models.PhotoRecord
	// NeedUpload lists the filenames of newly created records whose
	// binaries are not hosted yet.
	NeedUpload []string
	Created    int // new records
	Refreshed  int // existing records matched on disk, URLs recomputed
	Retained   int // records whose file is gone from the source directory
}

// Merge folds the scanned candidates into the previously published record
// set. Filename is the natural key. Existing records keep their editable
// fields exactly as stored and only get their URL fields recomputed; new
// filenames become new records with the next unused id (max existing id
// plus one, starting at 1). Records whose file disappeared from disk are
// retained unchanged: removal is an explicit manual operation, never a
// side effect of a scan.
//
// Merge is pure: it never touches the filesystem, so running it twice over
// the same inputs yields the identical result and an empty NeedUpload the
// second time (callers persist the first result before rerunning).
func Merge(existing []models.PhotoRecord, scanned []Candidate, urls URLBuilder) Result {
	byName := make(map[string]models.PhotoRecord, len(existing))
	maxID := 0
	for _, r := range existing {
		byName[r.Filename] = r
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	var res Result
	out := make([]models.PhotoRecord, 0, len(existing)+len(scanned))
	seen := make(map[string]bool, len(scanned))

	for _, c := range scanned {
		if seen[c.Filename] {
			continue
		}
		seen[c.Filename] = true

		if r, ok := byName[c.Filename]; ok {
			r.Thumbnail = urls.ThumbnailURL(r.Filename)
			r.Full = urls.FullURL(r.Filename)
			out = append(out, r)
			res.Refreshed++
			continue
		}

		maxID++
		out = append(out, models.PhotoRecord{
			ID:        maxID,
			Title:     c.Title,
			Category:  c.Category,
			Thumbnail: urls.ThumbnailURL(c.Filename),
			Full:      urls.FullURL(c.Filename),
			Lat:       c.Lat,
			Lng:       c.Lng,
			Location:  c.Location,
			Date:      c.Date,
			Filename:  c.Filename,
		})
		res.NeedUpload = append(res.NeedUpload, c.Filename)
		res.Created++
	}

	for _, r := range existing {
		if seen[r.Filename] {
			continue
		}
		seen[r.Filename] = true
		out = append(out, r)
		res.Retained++
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	res.Records = out
	return res
}

// WithoutFilenames returns records minus the entries whose filename is in
// the failed set. Used to withhold records whose upload did not succeed in
// this run; the next run recreates and retries them.
func WithoutFilenames(records []models.PhotoRecord, failed map[string]bool) []models.PhotoRecord {
	if len(failed) == 0 {
		return records
	}
	out := records[:0:0]
	for _, r := range records {
		if !failed[r.Filename] {
			out = append(out, r)
		}
	}
	return out
}
