// Package main provides xapireport, an offline grade report for every
// learner of a course context.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/infrastructure/config"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/lrs"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/service"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/store"
)

const (
	Version = "0.1.0"
	appName = "xapireport"
)

type options struct {
	contextID    string
	learnersFile string
	statements   string
	dbPath       string
	workers      int
	limit        int
	format       string
	logLevel     string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "xapireport --context <id> [--learners file] [email...]",
		Short: "Grade report for every learner of a course",
		Long: `xapireport matches each learner's xAPI statements against the activities
configured for a course context and prints one progress report per learner,
in the order the learners were given.

Learners come from positional email arguments and/or --learners, a CSV file
with an email column and an optional name column (a header row is skipped).
Statements are fetched from the LRS configured in the environment
(LRS_ENDPOINT, LRS_API_KEY, LRS_API_SECRET) unless --statements names a dump
file of the form {"statements": [...]}.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.contextID, "context", "", "LTI context id of the course (required)")
	cmd.Flags().StringVar(&opts.learnersFile, "learners", "", "CSV file of learners: email[,name]")
	cmd.Flags().StringVar(&opts.statements, "statements", "", "Statement dump to read instead of the LRS")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite database (default $DATABASE_PATH)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "Learners processed in parallel")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Statements per learner (default $LRS_STATEMENT_LIMIT)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("context")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(ctx context.Context, opts options, emails []string, stdout, stderr io.Writer) error {
	if opts.format != "json" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	logger := newLogger(opts.logLevel, stderr)
	cfg := config.LoadReport()

	learners, err := collectLearners(opts.learnersFile, emails)
	if err != nil {
		return err
	}
	if len(learners) == 0 {
		return fmt.Errorf("no learners given")
	}

	dbPath := opts.dbPath
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := store.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var fetcher lrs.Fetcher
	if opts.statements != "" {
		fetcher, err = lrs.NewFileFetcher(opts.statements)
		if err != nil {
			return err
		}
	} else {
		fetcher = lrs.NewClient(cfg.LRSEndpoint, cfg.LRSAPIKey, cfg.LRSAPISecret, cfg.LRSTimeout)
	}

	limit := opts.limit
	if limit <= 0 {
		limit = cfg.LRSStatementLimit
	}
	svc := service.NewProgressService(db, fetcher, logger, limit)

	progress, err := svc.CourseReport(ctx, opts.contextID, learners, opts.workers)
	if err != nil {
		return err
	}
	reports := make([]service.Report, 0, len(progress))
	for _, p := range progress {
		reports = append(reports, p.Report(cfg.Timezone))
	}
	return write(stdout, opts.format, reports)
}

func write(w io.Writer, format string, reports []service.Report) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
