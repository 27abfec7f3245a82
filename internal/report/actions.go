package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	dbpkg "github.com/btutor/content-grader/pkg/db"
)

// ListAction prints stored grading reports as a table.
func ListAction(c *cli.Context) error {
	database, err := openDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	reports, err := database.ListReports(c.String("language"), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		fmt.Println("No reports found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-24s %-10s %-8s %-10s %-8s %-6s\n",
		"ID", "Created", "Content", "Language", "Claimed", "Assigned", "Conf", "Vocab")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range reports {
		fmt.Printf("%-6d %-20s %-24s %-10s %-8s %-10s %-8.2f %-6d\n",
			r.ReportID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(r.ContentID, 24),
			r.Language,
			r.ClaimedLevel,
			r.AssignedLevel,
			r.Confidence,
			r.VocabCount,
		)
	}

	fmt.Printf("\nTotal: %d reports\n", len(reports))
	fmt.Printf("\nTip: Use 'content-grader report show <content-id>' to see details\n")

	return nil
}

// ShowAction prints the latest report for one content ID as YAML.
func ShowAction(c *cli.Context) error {
	contentID := c.Args().First()
	if contentID == "" {
		return fmt.Errorf("usage: content-grader report show <content-id>")
	}

	database, err := openDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	report, err := database.GetReport(contentID)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// LevelsAction prints how many stored reports landed on each level.
func LevelsAction(c *cli.Context) error {
	database, err := openDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	dist, err := database.LevelDistribution()
	if err != nil {
		return fmt.Errorf("failed to load level distribution: %w", err)
	}

	if len(dist) == 0 {
		fmt.Println("No reports found")
		return nil
	}

	levelNames := make([]string, 0, len(dist))
	for level := range dist {
		levelNames = append(levelNames, level)
	}
	sort.Strings(levelNames)

	fmt.Printf("%-12s %s\n", "Level", "Reports")
	fmt.Println(strings.Repeat("-", 24))
	for _, level := range levelNames {
		fmt.Printf("%-12s %d\n", level, dist[level])
	}

	return nil
}

func openDatabase(path string) (*dbpkg.DB, error) {
	if path != "" {
		return dbpkg.OpenPath(path)
	}
	return dbpkg.Open()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
