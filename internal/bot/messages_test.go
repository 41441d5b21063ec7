package bot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

func TestDescriptionAcceptedText_TruncatesOnRuneBoundary(t *testing.T) {
	sess := model.Session{
		TypeName:    "Corporate",
		Description: strings.Repeat("م", 150),
	}

	text := descriptionAcceptedText(sess)

	assert.True(t, utf8.ValidString(text), "preview must never split a rune")
	assert.Contains(t, text, strings.Repeat("م", 100)+"...")
	assert.NotContains(t, text, strings.Repeat("م", 101))
}

func TestDescriptionAcceptedText_ShortDescriptionUntouched(t *testing.T) {
	sess := model.Session{
		TypeName:    "Portfolio",
		Description: "a portfolio site for a photographer",
	}

	text := descriptionAcceptedText(sess)

	assert.Contains(t, text, "a portfolio site for a photographer")
	assert.NotContains(t, text, "...")
}
