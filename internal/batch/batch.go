// Package batch parses every resume in a directory and writes one JSON file
// per resume plus an aggregate CSV.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/resumeparser/internal/export"
	"github.com/dgallion1/resumeparser/internal/parser"
	"github.com/dgallion1/resumeparser/internal/resume"
	"github.com/dgallion1/resumeparser/internal/stats"
)

const (
	DefaultSuffix  = ".parsed.json"
	DefaultCSVName = "parsed_resumes.csv"
)

// Options controls a batch run.
type Options struct {
	Dir        string
	Extensions []string // e.g. ".txt"; matched case-insensitively
	Workers    int
	JSONSuffix string // appended to each source path
	CSVPath    string // defaults to Dir/parsed_resumes.csv
}

// Summary reports what a run produced.
type Summary struct {
	Files       int
	JSONWritten int
	CSVPath     string
	Duration    time.Duration
	Stats       stats.Snapshot
}

// Discover lists regular files directly inside dir whose extension is one of
// exts, sorted by name.
func Discover(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	want := make(map[string]bool, len(exts))
	for _, e := range normalizeExts(exts) {
		want[e] = true
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if want[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run parses every matching file in opts.Dir. Parsing runs on up to
// opts.Workers goroutines; outputs are written in file name order. The first
// read or write error stops the run.
func Run(ctx context.Context, opts Options, log *slog.Logger) (Summary, error) {
	start := time.Now()
	opts = withDefaults(opts)
	for _, e := range opts.Extensions {
		if !parser.IsSupportedExtension(e) {
			return Summary{}, fmt.Errorf("unsupported file extension: %s", e)
		}
	}

	files, err := Discover(opts.Dir, opts.Extensions)
	if err != nil {
		return Summary{}, err
	}
	log.Info("discovered resumes", "dir", opts.Dir, "count", len(files))

	records := make([]resume.Record, len(files))
	p := resume.New()
	st := stats.NewParseStats(0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name, text, err := readText(path)
			if err != nil {
				return err
			}
			rec := st.Parse(p, text)
			rec.SourceFile = name
			records[i] = rec
			log.Debug("parsed resume", "file", rec.SourceFile,
				"skills", len(rec.Skills), "entries", len(rec.ExperienceParsed))
			return writeJSON(path+opts.JSONSuffix, rec)
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	if err := writeCSV(opts.CSVPath, records); err != nil {
		return Summary{}, err
	}

	return Summary{
		Files:       len(files),
		JSONWritten: len(files),
		CSVPath:     opts.CSVPath,
		Duration:    time.Since(start),
		Stats:       st.Snapshot(),
	}, nil
}

// readText extracts the text of the file at path and returns its base name.
func readText(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	text, err := parser.ExtractFile(bytes.NewReader(data), name)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", path, err)
	}
	return name, text, nil
}

func withDefaults(opts Options) Options {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	opts.Extensions = normalizeExts(opts.Extensions)
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt"}
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.JSONSuffix == "" {
		opts.JSONSuffix = DefaultSuffix
	}
	if opts.CSVPath == "" {
		opts.CSVPath = filepath.Join(opts.Dir, DefaultCSVName)
	}
	return opts
}

func writeJSON(path string, rec resume.Record) error {
	data, err := export.JSON(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, records []resume.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// normalizeExts lower-cases extensions, adds a missing leading dot and drops
// blanks.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
