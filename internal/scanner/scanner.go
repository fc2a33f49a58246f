package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirectoryNotFound is returned when the source directory does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// Scan lists the image files directly inside dir, filtered by the given
// extensions (case-insensitive). The scan is flat: subdirectories are not
// entered, matching the single-folder portfolio convention. Hidden files
// are skipped. The result is sorted by name so repeated runs see the same
// order. An empty directory yields an empty slice, not an error.
func Scan(dir string, extensions []string) ([]string, error) {
	const op = "scanner.Scan"

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w: %s", op, ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w: %s is not a directory", op, ErrDirectoryNotFound, dir)
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if exts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}
