package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/app/repositories"
	"github.com/pathwayplanner/planner/internal/bootstrap"
	"github.com/pathwayplanner/planner/internal/db"
	"github.com/pathwayplanner/planner/internal/importer"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
)

var (
	configPath string
	sourceFile string
	sourceURL  string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "catalog-import",
	Short: "Import catalog courses from an HTML course table",
	Long: `Reads a catalog page from a file or URL, extracts its course rows
(tr.course with td.id, td.code, td.name, td.units and td.terms cells)
and upserts them into the courses table.`,
	Example: `  catalog-import --file catalog.html
  catalog-import --url https://catalog.example.edu/courses --dry-run`,
	SilenceUsage: true,
	RunE:         runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", bootstrap.ConfigPath(), "path to the config file")
	rootCmd.Flags().StringVarP(&sourceFile, "file", "f", "", "catalog HTML file")
	rootCmd.Flags().StringVarP(&sourceURL, "url", "u", "", "catalog page URL")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse only, do not write to the database")
	rootCmd.MarkFlagsMutuallyExclusive("file", "url")
	rootCmd.MarkFlagsOneRequired("file", "url")
}

func runImport(cmd *cobra.Command, args []string) error {
	source := sourceFile
	if source == "" {
		source = sourceURL
	}
	if strings.TrimSpace(source) == "" {
		return errors.New("a catalog source is required")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var writer importer.CourseWriter
	if !dryRun {
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		writer = txWriter{database}
	}

	summary, err := importer.New(writer, nil, lgr).Run(ctx, source)
	if err != nil {
		return err
	}

	cmd.Printf("parsed %d, written %d, skipped %d\n", summary.Parsed, summary.Written, len(summary.Skipped))
	return nil
}

// txWriter upserts a whole catalog atomically
type txWriter struct {
	db *db.PostgresDB
}

func (w txWriter) UpsertCourses(ctx context.Context, courses []models.Course) (int, error) {
	var written int
	err := w.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		written, err = repositories.NewCourseRepository(tx).UpsertCourses(ctx, courses)
		return err
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Catalog import failed")
		os.Exit(1)
	}
}
