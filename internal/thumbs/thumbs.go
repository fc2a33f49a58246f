package thumbs

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"photoindex/internal/models"
)

// Generate writes the two web derivatives of srcPath under cfg.Dir:
// full/<name>.jpg capped to the configured maximum dimensions and
// thumbnails/<name>.jpg cropped to the thumbnail size. Both are JPEG and
// auto-oriented from EXIF. Returns the written paths.
func Generate(srcPath string, cfg models.ThumbsConfig) (thumbPath, fullPath string, err error) {
	const op = "thumbs.Generate"

	src, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("%s: %v", op, err)
	}

	name := jpegName(filepath.Base(srcPath))

	full := imaging.Fit(src, cfg.MaxWidth, cfg.MaxHeight, imaging.Lanczos)
	fullPath = filepath.Join(cfg.Dir, "full", name)
	if err := save(full, fullPath, cfg.Quality); err != nil {
		return "", "", fmt.Errorf("%s: %v", op, err)
	}

	thumb := imaging.Thumbnail(src, cfg.ThumbWidth, cfg.ThumbHeight, imaging.Lanczos)
	thumbPath = filepath.Join(cfg.Dir, "thumbnails", name)
	if err := save(thumb, thumbPath, cfg.Quality); err != nil {
		return "", "", fmt.Errorf("%s: %v", op, err)
	}

	return thumbPath, fullPath, nil
}

func save(img image.Image, path string, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return imaging.Save(img, path, imaging.JPEGQuality(quality))
}

func jpegName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
}
