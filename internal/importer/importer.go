// Package importer loads catalog courses from a published HTML course table.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/pkg/validation"
	"github.com/pathwayplanner/planner/internal/planner"
)

// ErrNoCourses is returned when a page holds no course rows
var ErrNoCourses = errors.New("no course rows found")

// RowError describes a course row that could not be imported
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// CourseWriter persists parsed courses
type CourseWriter interface {
	UpsertCourses(ctx context.Context, courses []models.Course) (int, error)
}

// Parse extracts courses from tr.course rows. Rows with a malformed id, an
// empty code or non-integer units are skipped and reported; offered terms
// are normalized.
func Parse(r io.Reader) ([]models.Course, []RowError, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog html: %w", err)
	}

	var courses []models.Course
	var skipped []RowError
	seen := make(map[string]int)

	doc.Find("tr.course").Each(func(i int, row *goquery.Selection) {
		cell := func(class string) string {
			return strings.TrimSpace(row.Find("td." + class).First().Text())
		}

		id := strings.ToUpper(cell("id"))
		code := strings.Join(strings.Fields(cell("code")), " ")
		switch {
		case !validation.IsCourseID(id) || planner.ParseToken(id).Kind != planner.Concrete:
			skipped = append(skipped, RowError{Row: i + 1, Reason: fmt.Sprintf("invalid course id %q", id)})
			return
		case code == "":
			skipped = append(skipped, RowError{Row: i + 1, Reason: "missing course code"})
			return
		}

		units := 0
		if raw := cell("units"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				skipped = append(skipped, RowError{Row: i + 1, Reason: fmt.Sprintf("invalid units %q", raw)})
				return
			}
			units = n
		}

		course := models.Course{
			ID:           id,
			Code:         code,
			Name:         cell("name"),
			Units:        units,
			TermsOffered: planner.FormatAvailability(strings.FieldsFunc(cell("terms"), isTermSeparator)),
		}

		// later rows win
		if idx, ok := seen[id]; ok {
			courses[idx] = course
			return
		}
		seen[id] = len(courses)
		courses = append(courses, course)
	})

	if len(courses) == 0 {
		return nil, skipped, ErrNoCourses
	}
	return courses, skipped, nil
}

func isTermSeparator(r rune) bool {
	return r == ',' || r == '/' || r == ';' || r == ' '
}

// Open returns a reader for a local file or an http(s) URL
func Open(ctx context.Context, source string, client *http.Client) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog file: %w", err)
		}
		return f, nil
	}

	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch catalog: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Importer reads a catalog source and writes its courses
type Importer struct {
	writer CourseWriter
	client *http.Client
	logger zerolog.Logger
}

// New creates an Importer. A nil writer makes Run a dry run.
func New(writer CourseWriter, client *http.Client, logger zerolog.Logger) *Importer {
	return &Importer{writer: writer, client: client, logger: logger}
}

// Summary reports the outcome of one import
type Summary struct {
	Parsed  int
	Written int
	Skipped []RowError
}

// Run imports every course row found at source
func (im *Importer) Run(ctx context.Context, source string) (*Summary, error) {
	body, err := Open(ctx, source, im.client)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	courses, skipped, err := Parse(body)
	for _, s := range skipped {
		im.logger.Warn().Int("row", s.Row).Str("reason", s.Reason).Msg("Skipping catalog row")
	}
	if err != nil {
		return nil, err
	}

	summary := &Summary{Parsed: len(courses), Skipped: skipped}
	if im.writer == nil {
		im.logger.Info().Int("parsed", summary.Parsed).Msg("Dry run, nothing written")
		return summary, nil
	}

	written, err := im.writer.UpsertCourses(ctx, courses)
	summary.Written = written
	if err != nil {
		return summary, fmt.Errorf("failed to store courses: %w", err)
	}

	im.logger.Info().
		Int("parsed", summary.Parsed).
		Int("written", summary.Written).
		Int("skipped", len(skipped)).
		Msg("Catalog import complete")
	return summary, nil
}
