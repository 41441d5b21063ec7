// Package generator turns a validated description into a website artifact
// through the generation API, with bounded retries and key failover.
package generator

import (
	"errors"
)

// Error taxonomy for a generation run. Callers classify with errors.Is.
var (
	// ErrInvalidDescription marks user-correctable input problems. It is
	// reported verbatim to the user and never reaches the error log.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrNoCredential means the key pool is exhausted. It aborts the whole
	// run rather than a single attempt.
	ErrNoCredential = errors.New("no API credential available")

	// ErrGenerationExhausted means every attempt failed.
	ErrGenerationExhausted = errors.New("generation failed after all attempts")

	// Extraction failures. A malformed model response is not assumed
	// transient, so none of these are retried.
	ErrNoJSONFound   = errors.New("no JSON object found in response")
	ErrMalformedJSON = errors.New("malformed JSON in response")
	ErrMissingField  = errors.New("missing required field")
)

// Kind returns the error-log classification for a pipeline error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDescription):
		return "validation_error"
	case errors.Is(err, ErrNoCredential):
		return "api_unavailable"
	case errors.Is(err, ErrGenerationExhausted):
		return "generation_error"
	case errors.Is(err, ErrNoJSONFound), errors.Is(err, ErrMalformedJSON), errors.Is(err, ErrMissingField):
		return "extraction_error"
	default:
		return "unexpected_error"
	}
}
