package gmail

import (
	"regexp"
	"strings"
)

var (
	invisibleRunes   = regexp.MustCompile(`[\x{200b}\x{200c}\x{200d}\x{feff}\x{00ad}]`)
	multiSpace       = regexp.MustCompile(` {2,}`)
	utmQueryParam    = regexp.MustCompile(`[?&]utm_[^)\s]*`)
	parenthesisedURL = regexp.MustCompile(`\(\s*(https?://[^\s)]+)\s*\)`)
	anySpaceRun      = regexp.MustCompile(` +`)
)

// SanitizeText cleans up plain-text body content: normalises whitespace,
// strips zero-width characters, collapses blank lines and removes UTM
// tracking parameters from URLs.
func SanitizeText(text string) string {
	if text == "" {
		return text
	}

	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", " ")
	text = invisibleRunes.ReplaceAllString(text, "")
	text = multiSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	text = strings.Join(kept, "\n")

	text = utmQueryParam.ReplaceAllString(text, "")
	text = parenthesisedURL.ReplaceAllString(text, " $1")
	text = anySpaceRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
