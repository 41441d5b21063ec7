package generator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 2000
)

// Bare URLs, @-mentions and #-tags are rejected outright, no sanitization.
var disallowedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://`),
	regexp.MustCompile(`@\w+`),
	regexp.MustCompile(`#\w+`),
}

// ValidateDescription checks a project description against the input rules.
// Every violation is collected so the user sees the full list at once.
func ValidateDescription(description string) error {
	var issues []string

	// Bounds count characters, not bytes. Most descriptions are Arabic, so
	// byte counts would be roughly double.
	if utf8.RuneCountInString(strings.TrimSpace(description)) < minDescriptionLen {
		issues = append(issues, "description is too short, please provide more detail")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		issues = append(issues, "description is too long, please shorten it while keeping it clear")
	}
	for _, p := range disallowedPatterns {
		if p.MatchString(description) {
			issues = append(issues, "description contains links, mentions or tags, which are not allowed")
			break
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDescription, strings.Join(issues, " | "))
	}
	return nil
}
