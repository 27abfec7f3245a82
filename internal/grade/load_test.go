package grade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btutor/content-grader/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadContentsSingleJSON(t *testing.T) {
	path := writeTempFile(t, "article.json", `{
		"content_id": "en-001",
		"title": "My Day",
		"body": "I wake up early.",
		"language": "english",
		"difficulty_level": "CET-4"
	}`)

	jobs, err := LoadContents([]string{path})
	if err != nil {
		t.Fatalf("LoadContents() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Content.ContentID != "en-001" {
		t.Errorf("ContentID = %q", jobs[0].Content.ContentID)
	}
	if jobs[0].Content.Language != models.LanguageEnglish {
		t.Errorf("Language = %q", jobs[0].Content.Language)
	}
	if jobs[0].Path != path {
		t.Errorf("Path = %q, want %q", jobs[0].Path, path)
	}
}

func TestLoadContentsListYAML(t *testing.T) {
	path := writeTempFile(t, "batch.yaml", `
- content_id: ja-001
  title: 学校
  body: 私は学校に行きます。
  language: japanese
  difficulty_level: N5
- title: Untitled
  body: Second record without an ID.
  language: english
`)

	jobs, err := LoadContents([]string{path})
	if err != nil {
		t.Fatalf("LoadContents() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].Content.ContentID != "ja-001" {
		t.Errorf("jobs[0].ContentID = %q", jobs[0].Content.ContentID)
	}
	if jobs[1].Content.ContentID != "batch-1" {
		t.Errorf("jobs[1].ContentID = %q, want derived batch-1", jobs[1].Content.ContentID)
	}
}

func TestLoadContentsNormalizesLanguage(t *testing.T) {
	path := writeTempFile(t, "mixed.yaml", `
- content_id: cased
  body: The declared tag is cased oddly.
  language: English
- content_id: unknown
  body: Ein Text in einer anderen Sprache.
  language: german
- content_id: undeclared
  body: No language tag at all.
`)

	jobs, err := LoadContents([]string{path})
	if err != nil {
		t.Fatalf("LoadContents() error = %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}
	if jobs[0].Content.Language != models.LanguageEnglish {
		t.Errorf("cased tag = %q, want %q", jobs[0].Content.Language, models.LanguageEnglish)
	}
	if jobs[1].Content.Language != models.LanguageOther {
		t.Errorf("unknown tag = %q, want %q", jobs[1].Content.Language, models.LanguageOther)
	}
	if jobs[2].Content.Language != "" {
		t.Errorf("undeclared tag = %q, want empty for later detection", jobs[2].Content.Language)
	}
}

func TestLoadContentsDerivedID(t *testing.T) {
	path := writeTempFile(t, "lesson.yaml", `
title: Lesson
body: Text without an explicit content ID.
language: english
`)

	jobs, err := LoadContents([]string{path})
	if err != nil {
		t.Fatalf("LoadContents() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Content.ContentID != "lesson" {
		t.Errorf("ContentID = %q, want the file basename", jobs[0].Content.ContentID)
	}
}

func TestLoadContentsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadContents([]string{"/nonexistent/contents.yaml"}); err == nil {
			t.Error("LoadContents() should fail for a missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempFile(t, "broken.json", `{"content_id": `)
		if _, err := LoadContents([]string{path}); err == nil {
			t.Error("LoadContents() should fail for malformed JSON")
		}
	})
}
