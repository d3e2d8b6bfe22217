package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/dgallion1/resumeparser/internal/batch"
)

func main() {
	var (
		dir     string
		exts    string
		workers int
		suffix  string
		csvPath string
		verbose bool
	)
	pflag.StringVarP(&dir, "dir", "d", ".", "Directory containing resumes")
	pflag.StringVarP(&exts, "ext", "e", ".txt", "Comma-separated file extensions to parse")
	pflag.IntVarP(&workers, "workers", "w", 4, "Number of files parsed concurrently")
	pflag.StringVar(&suffix, "suffix", batch.DefaultSuffix, "Suffix appended to each source path for its JSON output")
	pflag.StringVar(&csvPath, "csv", "", "Aggregate CSV path (default <dir>/"+batch.DefaultCSVName+")")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Log every parsed file")
	pflag.Parse()

	opts := slogcolor.DefaultOptions
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	if verbose {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slogcolor.NewHandler(os.Stderr, opts))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := batch.Run(ctx, batch.Options{
		Dir:        dir,
		Extensions: strings.Split(exts, ","),
		Workers:    workers,
		JSONSuffix: suffix,
		CSVPath:    csvPath,
	}, logger)
	if err != nil {
		fail(logger, err)
	}

	if summary.Files == 0 {
		logger.Warn("No matching files", "dir", dir, "ext", exts)
	}
	logger.Info("Finished",
		"files", summary.Files,
		"json_written", summary.JSONWritten,
		"csv", summary.CSVPath,
		"took", summary.Duration,
	)
	if summary.Files > 0 {
		found := summary.Stats.Found
		logger.Info("Field coverage",
			"name", found.Name,
			"email", found.Email,
			"phone", found.Phone,
			"skills", found.Skills,
			"education", found.Education,
			"experience", found.Experience,
			"avg_skills", summary.Stats.AvgSkills,
			"p50_us", summary.Stats.Latency.P50Us,
		)
	}
}

func fail(logger *slog.Logger, err error) {
	logger.Error("Batch run failed", "error", err)
	os.Exit(1)
}
