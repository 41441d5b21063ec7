package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_NoJSON(t *testing.T) {
	_, err := Extract("the model returned prose with no object at all")
	assert.ErrorIs(t, err, ErrNoJSONFound)

	_, err = Extract("")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtract_MalformedJSON(t *testing.T) {
	_, err := Extract(`{"html": "<h1>hi</h1>", "css":`)
	assert.ErrorIs(t, err, ErrNoJSONFound, "unbalanced braces never close an object")

	_, err = Extract(`{"html": <h1>}`)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestExtract_MissingRequiredField(t *testing.T) {
	_, err := Extract(`{"html":"<h>"}`)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Extract(`{"css":"body{}"}`)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestExtract_OptionalFieldsDefaultEmpty(t *testing.T) {
	art, err := Extract(`{"html":"<h>","css":"body{}"}`)
	require.NoError(t, err)
	assert.Equal(t, "<h>", art.HTML)
	assert.Equal(t, "body{}", art.CSS)
	assert.Empty(t, art.JS)
	assert.Empty(t, art.Documentation)
}

func TestExtract_IgnoresSurroundingProse(t *testing.T) {
	raw := "Here is your site:\n```json\n" +
		`{"html":"<html></html>","css":"body{}","js":"console.log(1)","documentation":"open index.html"}` +
		"\n```\nEnjoy!"

	art, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", art.HTML)
	assert.Equal(t, "console.log(1)", art.JS)
	assert.Equal(t, "open index.html", art.Documentation)
}
