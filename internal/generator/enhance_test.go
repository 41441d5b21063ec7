package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

func TestEnhance_AppliesAllRules(t *testing.T) {
	a := &model.Artifact{
		HTML: "<html>\n<head>\n<title>t</title>\n</head>\n<body></body>\n</html>",
		CSS:  "body { color: black; }",
		JS:   `console.log("ready");`,
	}

	Enhance(a)

	assert.Contains(t, a.HTML, `lang="ar" dir="rtl"`)
	assert.Contains(t, a.HTML, `<meta name="viewport"`)
	assert.Contains(t, a.CSS, "@media (max-width: 768px)")
	assert.Contains(t, a.CSS, "@media (max-width: 480px)")
	assert.Contains(t, a.JS, "try {")
	assert.Contains(t, a.JS, "catch (error)")
	assert.Contains(t, a.JS, `console.log("ready");`, "original script body preserved")
}

func TestEnhance_PreconditionsAlreadyMet(t *testing.T) {
	a := &model.Artifact{
		HTML: `<html lang="ar" dir="rtl"><head><meta name="viewport" content="width=device-width"></head></html>`,
		CSS:  "@media (max-width: 600px) { body { font-size: 12px; } }",
		JS:   "try { run(); } catch (e) { console.error(e); }",
	}
	before := *a

	Enhance(a)

	assert.Equal(t, before, *a, "no rule should fire when every precondition holds")
}

func TestEnhance_MobileKeywordSkipsResponsiveBlock(t *testing.T) {
	a := &model.Artifact{
		HTML: "<html></html>",
		CSS:  "/* Mobile styles below */ body {}",
	}

	Enhance(a)

	assert.NotContains(t, a.CSS, "RESPONSIVE DESIGN")
}

func TestEnhance_Idempotent(t *testing.T) {
	cases := []model.Artifact{
		{HTML: "<html><head></head></html>", CSS: "body{}", JS: "init();"},
		{HTML: "", CSS: "", JS: ""},
		{HTML: `<html lang="en"><head></head></html>`, CSS: ".a { display: flex; }", JS: "catchAll();"},
	}

	for _, c := range cases {
		once := c
		Enhance(&once)
		twice := once
		Enhance(&twice)
		assert.Equal(t, once, twice)
	}
}
