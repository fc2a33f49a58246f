package classifier

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Result is the classification of a single filename.
// Structured is true when the name followed the category_number_title
// convention and the category token was recognized.
type Result struct {
	Category   string
	Title      string
	Structured bool
}

// structuredPattern matches names like street_002_sunset: a category token,
// a numeric sequence and a free title segment, underscore-separated.
var structuredPattern = regexp.MustCompile(`^([A-Za-z]+)_(\d+)_(.+)$`)

// keywordGroups maps basename keywords to a category. Groups are checked in
// order, so street beats faces beats nature when several keywords appear.
var keywordGroups = []struct {
	category string
	keywords []string
}{
	{"street", []string{"street", "urban", "city"}},
	{"faces", []string{"face", "portrait", "person", "people"}},
	{"nature", []string{"nature", "landscape", "forest", "mountain", "ocean", "tree"}},
}

// Classify derives a category and title from a bare filename. It is a pure
// function of the name: file contents and prior state never influence the
// result. Unrecognized structured category tokens fall back to keyword
// matching, and unmatched names get the configured default category.
func Classify(filename string, categories []string, defaultCategory string) Result {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	if m := structuredPattern.FindStringSubmatch(base); m != nil {
		category := strings.ToLower(m[1])
		if containsFold(categories, category) {
			return Result{
				Category:   category,
				Title:      normalizeTitle(m[3]),
				Structured: true,
			}
		}
	}

	lower := strings.ToLower(base)
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return Result{Category: g.category, Title: normalizeTitle(base)}
			}
		}
	}

	return Result{Category: defaultCategory, Title: normalizeTitle(base)}
}

func containsFold(set []string, s string) bool {
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// normalizeTitle turns a filename segment into a display title: delimiters
// become spaces and each word is capitalized.
func normalizeTitle(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(s))
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
