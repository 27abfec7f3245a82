package grade

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/btutor/content-grader/models"
	dbpkg "github.com/btutor/content-grader/pkg/db"
	"github.com/btutor/content-grader/pkg/detector"
	"github.com/btutor/content-grader/pkg/grader"
	"github.com/btutor/content-grader/pkg/levels"
	"github.com/btutor/content-grader/pkg/vocab"
)

// GradeAction grades one or more content files and prints the run summary.
func GradeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.GradeConfig{
		Inputs: inputPaths(c),
		DBPath: c.String("db"),
	}
	// Flag defaults must not shadow the config file, so only explicitly set
	// flags land in the config before the merge.
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}

	if c.IsSet("config") {
		fileConfig, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
		config.Merge(fileConfig)
	}

	if len(config.Inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No content files provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  content-grader grade lesson.yaml article.json`)
		fmt.Fprintln(os.Stderr, `  content-grader grade --input "lesson.yaml,article.json"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: content-grader grade --help")
		os.Exit(1)
	}

	format := strings.ToLower(config.Format)
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported output format %q (want json or yaml)", config.Format)
	}

	jobs, err := LoadContents(config.Inputs)
	if err != nil {
		logger.Error("failed to load contents", "error", err)
		os.Exit(2)
	}

	var database *dbpkg.DB
	if !c.Bool("no-store") {
		database, err = openDatabase(config.DBPath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(2)
		}
		defer database.Close()
	}

	tables := levels.NewTables()
	p := &pipeline{
		detector:    detector.New(),
		grader:      grader.New(tables),
		extractor:   vocab.New(tables),
		database:    database,
		reliability: c.Float64("reliability"),
		freshness:   c.Float64("freshness"),
	}

	allResults, runErr := run(logger, p, jobs, config.WorkerCount)

	stats := Stats{
		TotalContents:     len(jobs),
		TotalTimeSeconds:  time.Since(startTime).Seconds(),
		LevelDistribution: LevelDistribution(allResults),
	}

	finalOutput := &FinalOutput{}
	for _, r := range allResults {
		finalOutput.Results = append(finalOutput.Results, BuildSummary(r))
		if r.Error != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
	}
	finalOutput.Stats = stats
	if runErr != nil {
		finalOutput.Status = "partial_failure"
	} else {
		finalOutput.Status = "success"
	}

	var outputDoc any = finalOutput
	if c.IsSet("fields") {
		outputDoc = &FilteredOutput{
			Status:  finalOutput.Status,
			Results: FilterSummaryFields(finalOutput.Results, c.String("fields")),
			Stats:   finalOutput.Stats,
		}
	}

	outputData, err := marshalOutput(outputDoc, format)
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if runErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

// inputPaths merges the --input flag with positional arguments.
func inputPaths(c *cli.Context) []string {
	var paths []string
	if c.IsSet("input") {
		for _, p := range strings.Split(c.String("input"), ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	paths = append(paths, c.Args().Slice()...)
	return paths
}

func openDatabase(path string) (*dbpkg.DB, error) {
	if path != "" {
		return dbpkg.OpenPath(path)
	}
	return dbpkg.Open()
}

func marshalOutput(v any, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
