package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sitecraft-ai/sitecraft/internal/generator"
	"github.com/sitecraft-ai/sitecraft/internal/model"
)

const welcomeText = `Welcome to the AI website builder!

I turn a short description into a ready-to-use website:
1. Pick the kind of site you need
2. Describe it in your own words
3. Choose a quality tier
4. Receive the generated files plus a usage guide

Pick an option to get started:`

const (
	rateLimitText = `You have reached the hourly request limit.
Please try again later.`

	sessionExpiredText = `Your session has expired. Please start over from the main menu.`

	runInProgressText = `A generation run is already in progress.
Please wait for it to finish before starting a new one.`

	chooseTypeText = `Step 1/3: choose the type of website.`

	descriptionPromptText = `Step 2/3: describe your project in detail.

Mention the preferred colors, the pages and features you need, and any
special requirements. The more specific the description, the better the
result.`

	startingText = `Starting generation...

This usually takes one to two minutes.`
)

// progressStages are shown in order during a generation run, purely as user
// feedback. They carry no information about actual pipeline progress.
var progressStages = []string{
	"Analyzing requirements...",
	"Designing the interface...",
	"Writing the functionality...",
	"Polishing the experience...",
	"Reviewing quality...",
}

func mainMenuKeyboard() Keyboard {
	return Keyboard{
		{{Label: "Create a website", Data: model.CallbackCreateWebsite}},
	}
}

func typeKeyboard() Keyboard {
	var kb Keyboard
	for i := 0; i < len(model.SiteTypes); i += 2 {
		row := []Button{{Label: model.SiteTypes[i].Name, Data: model.CallbackTypePrefix + model.SiteTypes[i].Code}}
		if i+1 < len(model.SiteTypes) {
			row = append(row, Button{Label: model.SiteTypes[i+1].Name, Data: model.CallbackTypePrefix + model.SiteTypes[i+1].Code})
		}
		kb = append(kb, row)
	}
	return kb
}

func qualityKeyboard() Keyboard {
	var kb Keyboard
	for i := 0; i < len(model.QualityTiers); i += 2 {
		row := []Button{{Label: model.QualityTiers[i].Name, Data: model.CallbackQualityPrefix + model.QualityTiers[i].Code}}
		if i+1 < len(model.QualityTiers) {
			row = append(row, Button{Label: model.QualityTiers[i+1].Name, Data: model.CallbackQualityPrefix + model.QualityTiers[i+1].Code})
		}
		kb = append(kb, row)
	}
	return kb
}

func descriptionAcceptedText(sess model.Session) string {
	preview := sess.Description
	if utf8.RuneCountInString(preview) > 100 {
		// Truncate on a rune boundary so multibyte text stays valid.
		runes := []rune(preview)
		preview = string(runes[:100]) + "..."
	}
	return fmt.Sprintf(`Description received.

Type: %s
Description: %s

Step 3/3: choose the quality tier.`, sess.TypeName, preview)
}

func progressText(step int) string {
	return fmt.Sprintf(`Generating...

Progress: %d%%
Stage: %s

Please wait...`, (step+1)*100/len(progressStages), progressStages[step])
}

// failureText maps a pipeline error to the user-visible category plus a
// suggestion on how to proceed.
func failureText(err error) string {
	switch {
	case errors.Is(err, generator.ErrInvalidDescription):
		msg := strings.TrimPrefix(err.Error(), generator.ErrInvalidDescription.Error()+": ")
		return fmt.Sprintf(`Your description needs some changes:

%s

Please revise it and send it again.`, msg)
	case errors.Is(err, generator.ErrNoCredential):
		return `The generation service is currently unavailable.
Please try again later.`
	default:
		return `Generation failed.
Please try again from the main menu.`
	}
}

func successText(sess model.Session, score, fileCount int) string {
	return fmt.Sprintf(`Your website is ready!

Type: %s
Quality tier: %s
Quality score: %d/100
Files: %d

How to run it:
1. Save all files into one folder
2. Open index.html in your browser
3. Enjoy your new site

To create another project, choose "Create a website" from the main menu.`,
		sess.TypeName, sess.QualityName, score, fileCount)
}

func buildReadme(sess model.Session, art *model.Artifact, score int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", sess.TypeName)
	fmt.Fprintf(&b, "## Description\n%s\n\n", sess.Description)
	fmt.Fprintf(&b, "## Quality\n- Tier: %s\n- Score: %d/100\n- Generated: %s\n\n",
		sess.QualityName, score, time.Now().Format("2006-01-02 15:04"))
	b.WriteString(`## Getting started
1. Save all files into one folder
2. Open ` + "`index.html`" + ` in a web browser
3. The site is ready to use

## Files
- ` + "`index.html`" + ` - main page
- ` + "`style.css`" + ` - styles
- ` + "`script.js`" + ` - interactive behavior

## Customizing
- Adjust colors in ` + "`style.css`" + `
- Add content in ` + "`index.html`" + `
- Extend behavior in ` + "`script.js`" + `
`)
	if art.Documentation != "" {
		fmt.Fprintf(&b, "\n## Setup notes\n%s\n", art.Documentation)
	}
	return b.String()
}
