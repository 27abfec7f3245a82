package vocab

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/btutor/content-grader/internal/grade"
	"github.com/btutor/content-grader/models"
	"github.com/btutor/content-grader/pkg/detector"
	"github.com/btutor/content-grader/pkg/htmltext"
	"github.com/btutor/content-grader/pkg/levels"
	vocabpkg "github.com/btutor/content-grader/pkg/vocab"
)

// Output is the document printed by the vocab command.
type Output struct {
	Items []models.VocabularyItem `json:"items" yaml:"items"`
	Count int                     `json:"count" yaml:"count"`
}

// ExtractAction extracts vocabulary items from content files.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	paths := c.Args().Slice()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No content files provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  content-grader vocab lesson.yaml`)
		fmt.Fprintln(os.Stderr, `  content-grader vocab --level CET-6 article.json`)
		os.Exit(1)
	}

	format := strings.ToLower(c.String("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported output format %q (want json or yaml)", c.String("format"))
	}

	jobs, err := grade.LoadContents(paths)
	if err != nil {
		logger.Error("failed to load contents", "error", err)
		os.Exit(2)
	}

	tables := levels.NewTables()
	det := detector.New()
	extractor := vocabpkg.New(tables)

	var items []models.VocabularyItem
	for _, job := range jobs {
		content := job.Content
		body, err := htmltext.Normalize(content.Body, content.SourceURL)
		if err != nil {
			logger.Error("failed to normalize content body", "content_id", content.ContentID, "error", err)
			os.Exit(2)
		}
		content.Body = body
		content.Language = det.Resolve(content)

		extracted := extractor.Extract(content)
		if c.IsSet("level") {
			extracted = extractor.FilterByLevel(extracted, c.String("level"))
		}
		logger.Info("Extracted vocabulary", "content_id", content.ContentID,
			"language", content.Language, "item_count", len(extracted))
		items = append(items, extracted...)
	}

	output := Output{Items: items, Count: len(items)}
	var data []byte
	if format == "yaml" {
		data, err = yaml.Marshal(output)
	} else {
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(data))
	return nil
}
