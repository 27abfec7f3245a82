// Package htmltext flattens HTML content bodies into plain prose so the
// grading metrics see sentences, not markup. Readability strips the page
// chrome first, then the block elements of the distilled article are joined
// in document order.
package htmltext

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// IsHTML reports whether body looks like an HTML document rather than plain
// text. The check is deliberately shallow; a stray angle bracket in prose
// does not trip it.
func IsHTML(body string) bool {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<!doctype") {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range []string{"<html", "<body", "<article", "<p>", "<p ", "<div", "<h1", "<h2"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Normalize returns body as plain text. HTML bodies are distilled to their
// main article and flattened; plain-text bodies come back whitespace-cleaned.
// sourceURL may be empty; it only helps readability resolve relative links.
func Normalize(body, sourceURL string) (string, error) {
	if !IsHTML(body) {
		// Plain text keeps its paragraph breaks untouched.
		return strings.TrimSpace(body), nil
	}

	pageURL, err := url.Parse(sourceURL)
	if err != nil || sourceURL == "" {
		pageURL = &url.URL{}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(body), pageURL)
	if err != nil {
		return "", fmt.Errorf("distilling article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("parsing distilled content: %w", err)
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,blockquote").Each(func(_ int, s *goquery.Selection) {
		if text := collapseWhitespace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return collapseWhitespace(article.TextContent), nil
	}
	// Blank lines between blocks keep the paragraph structure that the
	// content-structure metric looks for.
	return strings.Join(blocks, "\n\n"), nil
}

// Title extracts the article title from an HTML body, or "" when the body is
// plain text or carries no usable title.
func Title(body, sourceURL string) string {
	if !IsHTML(body) {
		return ""
	}
	pageURL, err := url.Parse(sourceURL)
	if err != nil || sourceURL == "" {
		pageURL = &url.URL{}
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(body), pageURL)
	if err != nil {
		return ""
	}
	return collapseWhitespace(article.Title)
}

// collapseWhitespace trims every line and joins the non-empty ones with a
// single space.
func collapseWhitespace(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
