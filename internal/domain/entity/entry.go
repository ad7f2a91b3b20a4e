package entity

import (
	"html"
	"regexp"
	"strings"
)

// FeedEntry is one item pulled from the feed. Link doubles as the dedup key.
type FeedEntry struct {
	Title string
	Link  string
}

func NewFeedEntry(title, link string) *FeedEntry {
	return &FeedEntry{
		Title: title,
		Link:  link,
	}
}

// Malformed reports whether the entry is missing a field the pipeline needs.
func (f *FeedEntry) Malformed() bool {
	return f.Link == "" || f.Title == ""
}

// Normalize returns a copy with the title cleaned for publishing. The link is
// left untouched so it keeps matching records from earlier runs.
func (f *FeedEntry) Normalize() *FeedEntry {
	return &FeedEntry{
		Title: NormalizeTitle(f.Title),
		Link:  f.Link,
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTitle decodes HTML entities and collapses runs of whitespace to a
// single space. Applying it twice yields the same result as once.
func NormalizeTitle(title string) string {
	title = html.UnescapeString(title)
	title = whitespaceRun.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}
