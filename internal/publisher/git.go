package publisher

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"photoindex/internal/models"
)

// Git publishes the metadata file by committing and pushing it to the site
// repository. The git CLI does the work; the pipeline only needs publish
// to succeed or fail.
type Git struct {
	Dir string // repository working directory
	cfg models.PublishConfig
}

func NewGit(dir string, cfg models.PublishConfig) *Git {
	return &Git{Dir: dir, cfg: cfg}
}

// Publish stages, commits and pushes file. An already-committed file is
// not an error: the push still runs so an earlier interrupted publish
// completes on retry.
func (g *Git) Publish(file string) error {
	const op = "publisher.Publish"

	if err := g.run("add", "--", file); err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}

	staged, err := g.hasStagedChanges(file)
	if err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	if staged {
		if err := g.run("commit", "-m", g.cfg.Message, "--", file); err != nil {
			return fmt.Errorf("%s: %v", op, err)
		}
	} else {
		log.Printf("publish: %s unchanged, nothing to commit", file)
	}

	if err := g.run("push", g.cfg.Remote, g.cfg.Branch); err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	return nil
}

func (g *Git) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %v: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// hasStagedChanges reports whether file differs between the index and HEAD.
// git diff --cached --quiet exits 1 when there are differences.
func (g *Git) hasStagedChanges(file string) (bool, error) {
	cmd := exec.Command("git", "diff", "--cached", "--quiet", "--", file)
	cmd.Dir = g.Dir
	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() == 1 {
		return true, nil
	}
	return false, err
}
