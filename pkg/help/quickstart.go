package help

const QuickstartYAML = `# content-grader Quick Start

levels:
  english: "CET-4 (basic), CET-5 (intermediate), CET-6 (advanced)"
  japanese: "N5 (easiest) through N1 (hardest)"

input_format: |
  Content files are JSON or YAML, a single record or a list:
    content_id: en-001
    title: My Day
    body: I wake up early. I go to school.
    language: english        # english | japanese | other (detected when omitted)
    difficulty_level: CET-4  # the level the source claims, may be wrong
    content_type: article    # article | news | dialogue | exercise | cultural

commands:
  grade_files: |
    content-grader grade lesson.yaml article.json

  grade_quietly_as_yaml: |
    content-grader grade --quiet --format yaml lesson.yaml

  grade_without_storing: |
    content-grader grade --no-store lesson.yaml

  trim_output_fields: |
    content-grader grade --fields "content_id,assigned_level,confidence" lesson.yaml

  extract_vocabulary: |
    content-grader vocab --level CET-6 lesson.yaml

  check_level_fit: |
    content-grader validate --level N3 --recommend lesson.yaml

  list_reports: |
    content-grader report --limit 10
    content-grader report --language japanese

  show_one_report: |
    content-grader report show en-001

  level_distribution: |
    content-grader report levels

report_storage:
  - "Reports land in a SQLite database next to the binary (content-grader.db)"
  - "Use --db to point every command at an explicit database path"
  - "Regrading a content ID adds a new report; 'report show' returns the latest"

error_behavior:
  - "Unreadable or malformed content files: fail fast before grading"
  - "Per-content failures are reported per entry and do not stop the batch"
  - "Exit codes: 0=success, 1=partial failure or usage error, 2=complete failure"
`
