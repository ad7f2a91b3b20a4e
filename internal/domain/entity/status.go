package entity

import (
	"fmt"
	"unicode/utf8"
)

// MaxStatusLength is the character budget the publish API enforces.
const MaxStatusLength = 280

// Fixed characters around the title in the reduced form: the ellipsis, the
// hashtag marker and the separating spaces ("{title}... #{tag} {url}").
const reducedOverhead = 6

// ComposeStatus builds the announcement text for one entry. The full form is
// "{title} #{primaryTag} #{secondaryTag} {url}". When that exceeds the
// character budget, the secondary tag is dropped and the title truncated so
// "{title}... #{primaryTag} {url}" fits. An empty short URL omits the URL
// segment entirely.
func ComposeStatus(title, shortURL, primaryTag, secondaryTag string) string {
	status := appendURL(fmt.Sprintf("%s #%s #%s", title, primaryTag, secondaryTag), shortURL)
	if utf8.RuneCountInString(status) <= MaxStatusLength {
		return status
	}

	budget := MaxStatusLength - reducedOverhead - utf8.RuneCountInString(primaryTag) - utf8.RuneCountInString(shortURL)
	if budget < 0 {
		budget = 0
	}
	runes := []rune(title)
	if budget < len(runes) {
		runes = runes[:budget]
	}
	return appendURL(fmt.Sprintf("%s... #%s", string(runes), primaryTag), shortURL)
}

func appendURL(status, shortURL string) string {
	if shortURL == "" {
		return status
	}
	return status + " " + shortURL
}
