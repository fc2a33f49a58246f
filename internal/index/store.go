package index

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"photoindex/internal/models"
)

// Load reads the record set from path. A missing file is a first run and
// yields an empty set, not an error.
func Load(path string) ([]models.PhotoRecord, error) {
	const op = "index.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	var records []models.PhotoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	return records, nil
}

// Save writes the record set to path atomically: the JSON is written to a
// uniquely named temp file in the same directory and then renamed over the
// target, so a run killed mid-write leaves the previous file intact.
// Output is two-space indented with a trailing newline so the committed
// file diffs cleanly.
func Save(path string, records []models.PhotoRecord) error {
	const op = "index.Save"

	if records == nil {
		records = []models.PhotoRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%s: %v", op, err)
	}
	return nil
}
