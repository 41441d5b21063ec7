package generator

import (
	"fmt"
	"strings"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

const responsiveCSS = `

/* ===== RESPONSIVE DESIGN ===== */
@media (max-width: 768px) {
    .container {
        padding: 0 15px;
    }

    nav ul {
        flex-direction: column;
        gap: 10px;
    }

    h1 {
        font-size: 2rem;
    }
}

@media (max-width: 480px) {
    h1 {
        font-size: 1.5rem;
    }

    section {
        padding: 40px 0;
    }
}
`

// Enhance applies baseline quality rules to the artifact in place. Each rule
// fires only when its precondition is unmet, so the transform is idempotent:
// after the first application every precondition reads as satisfied.
func Enhance(a *model.Artifact) {
	// Right-to-left language marker on the root tag.
	if !strings.Contains(a.HTML, `lang="ar"`) {
		a.HTML = strings.Replace(a.HTML, "<html>", `<html lang="ar" dir="rtl">`, 1)
	}

	// Viewport meta immediately before the head-close marker.
	if !strings.Contains(a.HTML, `<meta name="viewport"`) {
		viewport := `<meta name="viewport" content="width=device-width, initial-scale=1.0">`
		a.HTML = strings.Replace(a.HTML, "</head>", "    "+viewport+"\n</head>", 1)
	}

	// Baseline responsive breakpoints.
	if !strings.Contains(a.CSS, "@media") && !strings.Contains(strings.ToLower(a.CSS), "mobile") {
		a.CSS += responsiveCSS
	}

	// Error guard around the whole script body.
	if !strings.Contains(a.JS, "try") && !strings.Contains(a.JS, "catch") {
		a.JS = fmt.Sprintf(`// Error handling and initialization
document.addEventListener("DOMContentLoaded", function() {
    try {
%s
    } catch (error) {
        console.error("Application error:", error);
    }
});`, a.JS)
	}
}
