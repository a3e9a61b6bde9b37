package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextCleaner preprocesses resume input before it is sent to an LLM.
// Input may be plain text or HTML pasted from a profile page.
type TextCleaner struct {
	// Tags to remove completely
	removeTags []string
}

// NewTextCleaner creates a new text cleaner instance
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"applet", "form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu", "menuitem",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base", "img",
		},
	}
}

// looksLikeHTML reports whether the input appears to contain markup.
var htmlTagRegex = regexp.MustCompile(`(?i)<\s*(html|body|div|p|span|ul|li|table|h[1-6])\b`)

// Clean normalizes resume input to plain text. HTML input is stripped to
// its text content; plain text passes through whitespace cleanup only.
func (tc *TextCleaner) Clean(input string) (string, error) {
	if !htmlTagRegex.MatchString(input) {
		return tc.cleanExtractedText(input), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", err
	}

	for _, tag := range tc.removeTags {
		doc.Find(tag).Remove()
	}

	text := tc.extractResumeContent(doc)
	return tc.cleanExtractedText(text), nil
}

// extractResumeContent pulls text from containers likely to hold resume
// content, falling back to the whole body.
func (tc *TextCleaner) extractResumeContent(doc *goquery.Document) string {
	resumeSelectors := []string{
		"main", "[role='main']", "#main", ".main",
		".resume", ".cv", ".profile", ".experience",
		".content", ".description", ".details",
		"article", "section[class*='resume']", "section[class*='profile']",
	}

	var contentParts []string
	for _, selector := range resumeSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" && len(text) > 50 {
				contentParts = append(contentParts, text)
			}
		})
	}

	if len(contentParts) == 0 {
		if bodyText := doc.Find("body").Text(); bodyText != "" {
			contentParts = append(contentParts, bodyText)
		}
	}

	return strings.Join(contentParts, "\n\n")
}

// cleanExtractedText collapses whitespace and strips boilerplate.
func (tc *TextCleaner) cleanExtractedText(text string) string {
	// Collapse runs of spaces and tabs but keep line structure
	spaceRegex := regexp.MustCompile(`[ \t]+`)
	text = spaceRegex.ReplaceAllString(text, " ")

	newlineRegex := regexp.MustCompile(`\n{3,}`)
	text = newlineRegex.ReplaceAllString(text, "\n\n")

	patterns := []string{
		`\bJavaScript\s+is\s+disabled\b.*?enabled\.`,
		`\bCookies?\s+are\s+disabled\b.*?enabled\.`,
		`\bPlease\s+enable\s+JavaScript\b.*?`,
	}
	for _, pattern := range patterns {
		regex := regexp.MustCompile(pattern)
		text = regex.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}

// EstimateTokens returns the approximate token count for the cleaned text
func (tc *TextCleaner) EstimateTokens(text string) int {
	// Rough estimation: ~4 characters per token
	return len(text) / 4
}
