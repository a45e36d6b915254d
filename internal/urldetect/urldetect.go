// Package urldetect decides whether free-form user input contains a
// fetchable web address. It is a pure classifier with no side effects.
package urldetect

import (
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

// Only scheme-qualified http/https addresses count as fetchable; bare
// hostnames and other schemes (mailto, ftp) classify as follow-up text.
var urlRe *regexp.Regexp

func init() {
	re, err := xurls.StrictMatchingScheme("https?://")
	if err != nil {
		panic("urldetect: compile url regexp: " + err.Error())
	}
	urlRe = re
}

// Extract returns the first fetchable URL found in s, if any. Trailing
// punctuation around the match is handled by the strict matcher, so
// "read https://example.com." yields "https://example.com".
func Extract(s string) (string, bool) {
	match := urlRe.FindString(strings.TrimSpace(s))
	if match == "" {
		return "", false
	}
	return match, true
}

// IsURL reports whether s contains a fetchable URL.
func IsURL(s string) bool {
	_, ok := Extract(s)
	return ok
}
