package grade

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/btutor/content-grader/models"
)

// LoadContents reads content records from JSON or YAML files. A file may
// hold either a single record or a list of them.
func LoadContents(paths []string) ([]Job, error) {
	var jobs []Job
	for _, path := range paths {
		contents, err := loadContentFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		for i := range contents {
			if contents[i].ContentID == "" {
				contents[i].ContentID = defaultContentID(path, i)
			}
			// An empty language stays empty so detection still runs later.
			if contents[i].Language != "" {
				contents[i].Language = models.ParseLanguage(string(contents[i].Language))
			}
			jobs = append(jobs, Job{Path: path, Content: &contents[i]})
		}
	}
	return jobs, nil
}

func loadContentFile(path string) ([]models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".json") {
		unmarshal = json.Unmarshal
	}

	var list []models.Content
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single models.Content
	if err := unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("not a content record or list of records: %w", err)
	}
	return []models.Content{single}, nil
}

// defaultContentID derives a stable ID for records that do not carry one.
func defaultContentID(path string, index int) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if index == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, index)
}
