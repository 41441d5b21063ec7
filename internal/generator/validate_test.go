package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"valid", "A corporate site with a blue and white theme and a contact form", false},
		{"too short", "tiny", true},
		{"whitespace only padding", "   short    ", true},
		{"too long", strings.Repeat("x", 2001), true},
		{"bare URL", "please copy the layout from https://example.com exactly", true},
		{"uppercase URL", "see HTTPS://example.com for reference material", true},
		{"mention", "make it look like @designer did the work on this one", true},
		{"hashtag", "a landing page for the #launch campaign with a countdown", true},
		{"exactly ten chars", "abcdefghij", false},
		{"short arabic counts characters not bytes", "مرحبا", true},
		{"valid arabic description", "موقع شركة تقنية بألوان زرقاء وبيضاء مع صفحة تواصل", false},
		{"long arabic within character bound", strings.Repeat("م", 1500), false},
		{"arabic over character bound", strings.Repeat("م", 2001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDescription)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDescription_CollectsAllIssues(t *testing.T) {
	err := ValidateDescription("@x #y")
	assert.ErrorIs(t, err, ErrInvalidDescription)
	assert.Contains(t, err.Error(), "too short")
	assert.Contains(t, err.Error(), "not allowed")
}

func TestBuildPrompts_Deterministic(t *testing.T) {
	s1, u1 := BuildPrompts("a restaurant site with a menu page", "Quality: Professional")
	s2, u2 := BuildPrompts("a restaurant site with a menu page", "Quality: Professional")
	assert.Equal(t, s1, s2)
	assert.Equal(t, u1, u2)
	assert.Contains(t, u1, "a restaurant site with a menu page")
	assert.Contains(t, u1, "Quality: Professional")
}

func TestBuildPrompts_DefaultRequirements(t *testing.T) {
	_, u := BuildPrompts("a portfolio site for a photographer", "")
	assert.Contains(t, u, "Standard professional implementation")
}
