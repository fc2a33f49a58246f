package hosting

import (
	"log"
	"path/filepath"
)

// Job is one object to upload. Filename ties the job back to its
// PhotoRecord: a file with derivatives produces two jobs sharing one
// Filename, and either failing withholds that record.
type Job struct {
	Filename   string
	LocalPath  string
	ObjectName string
}

// GenerateFunc produces the web derivatives of a source file and returns
// their local paths. Nil means derivatives are disabled and originals are
// uploaded as-is.
type GenerateFunc func(srcPath string) (thumbPath, fullPath string, err error)

// BuildJobs maps the filenames needing upload onto hosting jobs. With
// derivatives enabled the hosted objects are the generated renditions, so
// a generation failure means that file's objects cannot exist: it is
// recorded in failed exactly like a failed upload, the record is withheld
// this run and the next run retries. Other files are unaffected.
func BuildJobs(sourceDir string, names []string, u URLs, gen GenerateFunc) (jobs []Job, failed map[string]bool) {
	jobs = make([]Job, 0, len(names))
	failed = make(map[string]bool)
	for _, name := range names {
		src := filepath.Join(sourceDir, name)
		if gen == nil {
			jobs = append(jobs, Job{Filename: name, LocalPath: src, ObjectName: name})
			continue
		}
		thumbPath, fullPath, err := gen(src)
		if err != nil {
			log.Printf("derivatives failed for %s: %v", name, err)
			failed[name] = true
			continue
		}
		jobs = append(jobs,
			Job{Filename: name, LocalPath: thumbPath, ObjectName: u.ThumbnailObject(name)},
			Job{Filename: name, LocalPath: fullPath, ObjectName: u.FullObject(name)},
		)
	}
	return jobs, failed
}
