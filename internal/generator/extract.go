package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

// Extract parses raw model output into a structured artifact. The model is
// asked for pure JSON but routinely wraps it in prose or code fences, so the
// outermost brace-delimited substring is taken.
func Extract(raw string) (*model.Artifact, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, ErrNoJSONFound
	}

	var fields struct {
		HTML          *string `json:"html"`
		CSS           *string `json:"css"`
		JS            *string `json:"js"`
		Documentation *string `json:"documentation"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if fields.HTML == nil {
		return nil, fmt.Errorf("%w: html", ErrMissingField)
	}
	if fields.CSS == nil {
		return nil, fmt.Errorf("%w: css", ErrMissingField)
	}

	art := &model.Artifact{
		HTML: *fields.HTML,
		CSS:  *fields.CSS,
	}
	if fields.JS != nil {
		art.JS = *fields.JS
	}
	if fields.Documentation != nil {
		art.Documentation = *fields.Documentation
	}
	return art, nil
}
