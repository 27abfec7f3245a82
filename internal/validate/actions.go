package validate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/btutor/content-grader/internal/grade"
	"github.com/btutor/content-grader/pkg/detector"
	"github.com/btutor/content-grader/pkg/grader"
	"github.com/btutor/content-grader/pkg/htmltext"
	"github.com/btutor/content-grader/pkg/levels"
)

// Entry reports one content's fit for the target level.
type Entry struct {
	ContentID       string   `json:"content_id" yaml:"content_id"`
	Title           string   `json:"title,omitempty" yaml:"title,omitempty"`
	Language        string   `json:"language" yaml:"language"`
	TargetLevel     string   `json:"target_level" yaml:"target_level"`
	Appropriateness float64  `json:"appropriateness" yaml:"appropriateness"`
	AssignedLevel   string   `json:"assigned_level" yaml:"assigned_level"`
	LevelAccuracy   float64  `json:"level_accuracy" yaml:"level_accuracy"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// Output is the document printed by the validate command.
type Output struct {
	TargetLevel string  `json:"target_level" yaml:"target_level"`
	Results     []Entry `json:"results" yaml:"results"`
}

// ValidateAction checks content files against a target proficiency level.
func ValidateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	targetLevel := c.String("level")
	paths := c.Args().Slice()
	if targetLevel == "" || len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Need a target level and at least one content file")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  content-grader validate --level CET-4 lesson.yaml`)
		fmt.Fprintln(os.Stderr, `  content-grader validate --level N3 --recommend reading.json`)
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

	det := detector.New()
	g := grader.New(levels.NewTables())

	output := Output{TargetLevel: targetLevel}
	for _, job := range jobs {
		content := job.Content
		body, err := htmltext.Normalize(content.Body, content.SourceURL)
		if err != nil {
			logger.Error("failed to normalize content body", "content_id", content.ContentID, "error", err)
			os.Exit(2)
		}
		content.Body = body
		content.Language = det.Resolve(content)

		result := g.GradeContentLevel(content)
		entry := Entry{
			ContentID:       content.ContentID,
			Title:           content.Title,
			Language:        string(content.Language),
			TargetLevel:     targetLevel,
			Appropriateness: g.ValidateLevelAppropriateness(content, targetLevel),
			AssignedLevel:   result.AssignedLevel,
			LevelAccuracy:   g.AssessLevelAccuracy(content),
		}
		if c.Bool("recommend") {
			entry.Recommendations = g.GenerateImprovementRecommendations(content, targetLevel)
		}
		logger.Info("Validated content", "content_id", content.ContentID,
			"target_level", targetLevel, "appropriateness", entry.Appropriateness)
		output.Results = append(output.Results, entry)
	}

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
