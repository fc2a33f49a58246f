// photoindex maintains the photos.json metadata index of a photography
// portfolio site. It scans a flat directory of image files, derives
// category and title from filename conventions, reads EXIF GPS and capture
// dates when available, uploads new binaries to an S3-compatible host and
// merges the results into photos.json without clobbering manual edits.
//
// Usage:
//
//	photoindex scan                         # scan, merge, upload, write photos.json
//	photoindex -n scan                      # preview the scan without writing
//	photoindex publish                      # commit and push photos.json
//	photoindex update <file> <field> <val>  # edit one field of one record
//	photoindex status                       # files vs records vs pending counts
//	photoindex serve                        # local preview of the static site
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photoindex/internal/classifier"
	"photoindex/internal/exifdata"
	"photoindex/internal/hosting"
	"photoindex/internal/index"
	"photoindex/internal/models"
	"photoindex/internal/publisher"
	"photoindex/internal/scanner"
	"photoindex/internal/server"
	"photoindex/internal/thumbs"
)

func main() {
	log.SetFlags(0)

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	dryRun := flag.Bool("n", false, "with scan: report changes without writing or uploading")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := models.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	switch args[0] {
	case "scan":
		runScan(cfg, *dryRun)
	case "publish":
		runPublish(cfg)
	case "update":
		if len(args) != 4 {
			fmt.Fprintf(os.Stderr, "usage: photoindex update <filename> <field> <value>\nfields: %s (lat/lng are edited together via coords)\n",
				strings.Join(index.EditableFields, ", "))
			os.Exit(2)
		}
		runUpdate(cfg, args[1], args[2], args[3])
	case "status":
		runStatus(cfg)
	case "serve":
		runServe(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "photoindex - photography portfolio metadata pipeline\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n  photoindex [options] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  scan                            scan, merge, upload and write photos.json\n")
	fmt.Fprintf(os.Stderr, "  publish                         commit and push photos.json\n")
	fmt.Fprintf(os.Stderr, "  update <filename> <field> <value>  edit one field of one record\n")
	fmt.Fprintf(os.Stderr, "                                  (fields: %s)\n", strings.Join(index.EditableFields, ", "))
	fmt.Fprintf(os.Stderr, "  status                          report files vs records vs pending uploads\n")
	fmt.Fprintf(os.Stderr, "  serve                           serve the site locally for preview\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// runScan is the full pipeline: scan -> classify -> enrich -> merge ->
// upload -> write. Publishing is a separate command. Per-file failures
// never abort the run; only a missing source directory or a failed write
// of photos.json is fatal.
func runScan(cfg *models.Config, dryRun bool) {
	files, err := scanner.Scan(cfg.SourceDir, cfg.Extensions)
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	existing, err := index.Load(cfg.OutputFile)
	if err != nil {
		log.Fatalf("failed to load %s: %v", cfg.OutputFile, err)
	}

	urls := hosting.URLs{BaseURL: cfg.Hosting.BaseURL, Derivatives: cfg.Thumbs.Enabled}
	res := index.Merge(existing, buildCandidates(cfg, files, existing), urls)

	if dryRun {
		for _, name := range res.NeedUpload {
			log.Printf("  new: %s", name)
		}
		log.Printf("[dry run] %d new, %d existing, %d retained; nothing written",
			res.Created, res.Refreshed, res.Retained)
		return
	}

	failed := make(map[string]bool)
	if len(res.NeedUpload) > 0 {
		ctx := context.Background()
		store, err := hosting.NewStore(ctx, cfg.Hosting)
		if err != nil {
			log.Fatalf("hosting: %v", err)
		}
		var gen hosting.GenerateFunc
		if cfg.Thumbs.Enabled {
			gen = func(src string) (string, string, error) {
				return thumbs.Generate(src, cfg.Thumbs)
			}
		}
		jobs, failedGen := hosting.BuildJobs(cfg.SourceDir, res.NeedUpload, urls, gen)
		for name := range failedGen {
			failed[name] = true
		}

		// Objects can already be hosted when photos.json was rebuilt from
		// scratch; skip those instead of re-uploading.
		pending := jobs[:0]
		for _, job := range jobs {
			if ok, err := store.Exists(ctx, job.ObjectName); err == nil && ok {
				log.Printf("already hosted: %s", job.ObjectName)
				continue
			}
			pending = append(pending, job)
		}

		for name := range hosting.UploadAll(ctx, store, pending, cfg.UploadWorkers) {
			failed[name] = true
		}
	}

	records := index.WithoutFilenames(res.Records, failed)
	if err := index.Save(cfg.OutputFile, records); err != nil {
		log.Fatalf("failed to write %s: %v", cfg.OutputFile, err)
	}

	log.Printf("scan complete: %d created, %d refreshed, %d retained, %d failed",
		res.Created-len(failed), res.Refreshed, res.Retained, len(failed))
	if len(failed) > 0 {
		os.Exit(1)
	}
}

// buildCandidates classifies and enriches the scanned files. Filenames
// that already have a record skip both steps: their stored fields win, so
// deriving them again would be wasted EXIF reads.
func buildCandidates(cfg *models.Config, files []string, existing []models.PhotoRecord) []index.Candidate {
	known := make(map[string]bool, len(existing))
	for _, r := range existing {
		known[r.Filename] = true
	}

	candidates := make([]index.Candidate, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		c := index.Candidate{Filename: name, Path: path}
		if !known[name] {
			cls := classifier.Classify(name, cfg.Categories, cfg.DefaultCategory)
			c.Category = cls.Category
			c.Title = cls.Title

			meta := exifdata.Read(path)
			c.Lat, c.Lng = meta.Lat, meta.Lng
			if meta.TakenAt != nil {
				c.Date = meta.TakenAt.Format("2006-01-02")
			} else {
				c.Date = time.Now().Format("2006-01-02")
			}
			if c.Lat != nil && c.Lng != nil {
				c.Location = fmt.Sprintf("%.4f, %.4f", *c.Lat, *c.Lng)
			} else {
				c.Location = "Unknown"
			}
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func runPublish(cfg *models.Config) {
	if _, err := os.Stat(cfg.OutputFile); err != nil {
		log.Fatalf("nothing to publish: %v", err)
	}
	g := publisher.NewGit(filepath.Dir(cfg.OutputFile), cfg.Publish)
	if err := g.Publish(filepath.Base(cfg.OutputFile)); err != nil {
		log.Fatalf("publish failed: %v", err)
	}
	log.Printf("published %s", cfg.OutputFile)
}

func runUpdate(cfg *models.Config, filename, field, value string) {
	records, err := index.Load(cfg.OutputFile)
	if err != nil {
		log.Fatalf("failed to load %s: %v", cfg.OutputFile, err)
	}
	updated, err := index.Apply(records, filename, field, value)
	if err != nil {
		log.Fatalf("update failed: %v", err)
	}
	if err := index.Save(cfg.OutputFile, updated); err != nil {
		log.Fatalf("failed to write %s: %v", cfg.OutputFile, err)
	}
	log.Printf("updated %s of %s", field, filename)
}

func runStatus(cfg *models.Config) {
	files, err := scanner.Scan(cfg.SourceDir, cfg.Extensions)
	if err != nil {
		log.Fatalf("status failed: %v", err)
	}
	records, err := index.Load(cfg.OutputFile)
	if err != nil {
		log.Fatalf("failed to load %s: %v", cfg.OutputFile, err)
	}

	byName := make(map[string]bool, len(records))
	for _, r := range records {
		byName[r.Filename] = true
	}
	onDisk := make(map[string]bool, len(files))
	pending := 0
	for _, path := range files {
		name := filepath.Base(path)
		onDisk[name] = true
		if !byName[name] {
			pending++
		}
	}
	orphaned := 0
	for _, r := range records {
		if !onDisk[r.Filename] {
			orphaned++
		}
	}

	log.Printf("%d files in %s", len(files), cfg.SourceDir)
	log.Printf("%d records in %s", len(records), cfg.OutputFile)
	log.Printf("%d pending (on disk, not yet indexed)", pending)
	log.Printf("%d retained (indexed, no source file)", orphaned)
}

func runServe(cfg *models.Config) {
	srv := server.NewServer(cfg)
	log.Printf("serving %s on %s", cfg.SiteDir, cfg.ServerAddr)
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
