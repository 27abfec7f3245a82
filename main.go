package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/btutor/content-grader/internal/grade"
	"github.com/btutor/content-grader/internal/report"
	"github.com/btutor/content-grader/internal/validate"
	"github.com/btutor/content-grader/internal/vocab"
	"github.com/btutor/content-grader/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "content-grader",
		Usage: "Grade language-learning content against CET and JLPT proficiency levels",
		Commands: []*cli.Command{
			{
				Name:      "grade",
				Usage:     "Grade content files and store the reports",
				ArgsUsage: "[content files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input",
						Usage: "Comma-separated list of content files (JSON or YAML)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with inputs and run settings",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Number of concurrent grading workers",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the report database (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "no-store",
						Usage: "Skip storing reports in the database",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.Float64Flag{
						Name:  "reliability",
						Value: 0.8,
						Usage: "Source reliability score in [0,1] for quality assessment",
					},
					&cli.Float64Flag{
						Name:  "freshness",
						Value: 0.7,
						Usage: "Content freshness score in [0,1] for quality assessment",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated result fields to keep in the output (e.g. content_id,assigned_level)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
				Action: grade.GradeAction,
			},
			{
				Name:      "vocab",
				Usage:     "Extract vocabulary items from content files",
				ArgsUsage: "[content files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "level",
						Usage: "Keep only items in this level's word list (e.g. CET-6, N3)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
				Action: vocab.ExtractAction,
			},
			{
				Name:      "validate",
				Usage:     "Check how appropriate content files are for a target level",
				ArgsUsage: "[content files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "level",
						Usage:    "Target proficiency level (e.g. CET-4, N3)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "recommend",
						Usage: "Include improvement recommendations",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
				Action: validate.ValidateAction,
			},
			{
				Name:  "report",
				Usage: "Inspect stored grading reports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the report database (default: next to the binary)",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Only list reports for one language (english, japanese)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of reports to list",
					},
				},
				Action: report.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "Show the latest report for a content ID",
						ArgsUsage: "<content-id>",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "db",
								Usage: "Path to the report database (default: next to the binary)",
							},
						},
						Action: report.ShowAction,
					},
					{
						Name:  "levels",
						Usage: "Show the level distribution of stored reports",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "db",
								Usage: "Path to the report database (default: next to the binary)",
							},
						},
						Action: report.LevelsAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a machine-readable quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
