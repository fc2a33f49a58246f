package hosting

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Uploader is the slice of Store the pool needs; tests supply fakes.
type Uploader interface {
	Upload(ctx context.Context, localPath, objectName string) error
}

// UploadAll runs the jobs with at most workers in flight and returns the
// set of record filenames with at least one failed upload. Failures are
// logged and never stop the remaining jobs: partial success is fine, the
// next run retries whatever is missing.
func UploadAll(ctx context.Context, up Uploader, jobs []Job, workers int) map[string]bool {
	if workers < 1 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		failed = make(map[string]bool)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := up.Upload(ctx, job.LocalPath, job.ObjectName); err != nil {
				log.Printf("upload failed: %v", err)
				mu.Lock()
				failed[job.Filename] = true
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	return failed
}
