package grade

import (
	"encoding/json"
	"strings"
)

// FilterSummaryFields projects each summary down to the requested output
// fields, named by their JSON keys. An empty fields string keeps everything.
func FilterSummaryFields(summaries []ResultSummary, fieldsStr string) []map[string]any {
	include := make(map[string]bool)
	for _, f := range strings.Split(fieldsStr, ",") {
		if f = strings.TrimSpace(f); f != "" {
			include[f] = true
		}
	}
	if len(include) == 0 {
		return nil
	}

	filtered := make([]map[string]any, 0, len(summaries))
	for _, s := range summaries {
		full := structToMap(s)
		entry := make(map[string]any)
		for key, value := range full {
			if include[key] {
				entry[key] = value
			}
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// structToMap converts a struct to map[string]any using JSON marshaling.
func structToMap(obj any) map[string]any {
	data, _ := json.Marshal(obj)
	var result map[string]any
	_ = json.Unmarshal(data, &result)
	return result
}
