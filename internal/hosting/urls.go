package hosting

import (
	"path/filepath"
	"strings"
)

// URLs derives public retrieval URLs from the hosting base URL. With
// derivatives disabled both URLs point at the original object; with
// derivatives enabled they point at the generated thumbnail and full
// renditions, which are always JPEG.
type URLs struct {
	BaseURL     string
	Derivatives bool
}

func (u URLs) ThumbnailURL(filename string) string {
	if u.Derivatives {
		return u.join("thumbnails", jpegName(filename))
	}
	return u.join(filename)
}

func (u URLs) FullURL(filename string) string {
	if u.Derivatives {
		return u.join("full", jpegName(filename))
	}
	return u.join(filename)
}

// ThumbnailObject and FullObject name the hosted derivative objects; they
// must stay in lockstep with the URL methods above.
func (u URLs) ThumbnailObject(filename string) string {
	return "thumbnails/" + jpegName(filename)
}

func (u URLs) FullObject(filename string) string {
	return "full/" + jpegName(filename)
}

func (u URLs) join(parts ...string) string {
	return strings.TrimRight(u.BaseURL, "/") + "/" + strings.Join(parts, "/")
}

// jpegName maps a source filename to its derivative name: derivatives are
// re-encoded as JPEG regardless of the source format.
func jpegName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
}
