package generator

import (
	"strings"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

// Score computes a 0-100 quality score from structural heuristics on the
// artifact. Pure function, no side effects.
func Score(a *model.Artifact) int {
	score := 0

	if strings.Contains(a.HTML, `lang="ar"`) {
		score += 20
	}
	if strings.Contains(a.HTML, "viewport") {
		score += 15
	}
	if strings.Contains(strings.ToLower(a.HTML), "semantic") ||
		(strings.Contains(a.HTML, "<header>") && strings.Contains(a.HTML, "<footer>")) {
		score += 25
	}

	if strings.Contains(a.CSS, "@media") {
		score += 20
	}
	if strings.Contains(a.CSS, "flex") || strings.Contains(a.CSS, "grid") {
		score += 15
	}
	if strings.Contains(a.CSS, "animation") || strings.Contains(a.CSS, "transition") {
		score += 10
	}

	if strings.Contains(a.JS, "addEventListener") {
		score += 10
	}
	if strings.Contains(a.JS, "try") && strings.Contains(a.JS, "catch") {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}
