package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/peepsched/schedval/pkg/config"
	"github.com/peepsched/schedval/pkg/fileio"
	"github.com/peepsched/schedval/pkg/logger"
	"github.com/peepsched/schedval/pkg/period"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("schedval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML settings file")
	skipPartial := fs.Bool("skip-partial", false, "exclude files with row-level errors from cross-file checks")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: schedval [flags] <period-dir>")
		fs.PrintDefaults()
		return 2
	}
	dir := fs.Arg(0)

	logOpts := []logger.Option{logger.WithOutput(stderr)}
	if *verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.New(logOpts...).With(logger.RunID(uuid.NewString()))

	var settings config.Settings
	var err error
	if *configPath != "" {
		err = config.LoadFile(*configPath, &settings)
	} else {
		err = config.Load(&settings)
	}
	if err != nil {
		log.Error("failed to load settings", logger.Error(err))
		return 2
	}

	vc, err := settings.Context()
	if err != nil {
		log.Error("invalid settings", logger.Error(err))
		return 2
	}
	log.Debug("settings resolved",
		slog.Int("year", vc.Year),
		slog.String("timezone", vc.TZ.String()),
		slog.Any("class_durations", vc.ClassDurations))

	raw, loadReport := fileio.LoadPeriod(dir)
	_, report := period.Validate(raw, vc, period.Options{SkipPartialFiles: *skipPartial})
	loadReport.Merge(report)

	for _, e := range loadReport {
		fmt.Fprintf(stdout, "%s: %s: %s\n", e.Location, e.Code, e.Message)
	}
	if !loadReport.Valid() {
		log.Info("validation finished", logger.File(dir), logger.ErrorCount(len(loadReport)))
		return 1
	}
	log.Info("validation finished", logger.File(dir), logger.ErrorCount(0))
	return 0
}
