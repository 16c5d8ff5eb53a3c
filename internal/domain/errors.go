package domain

import "errors"

// Sentinel errors for the route analytics engine. Callers wrap these with
// fmt.Errorf("%w: ...") and check them with errors.Is.
var (
	// ErrMissingArtifact is returned when a required upstream artifact
	// (an input CSV or a produced view file) does not exist. This is the
	// only fatal condition in the engine: no partial output is produced.
	ErrMissingArtifact = errors.New("missing required artifact")

	// ErrMalformedArtifact is returned when an artifact exists but cannot
	// be parsed as a CSV table with a header row.
	ErrMalformedArtifact = errors.New("malformed artifact")

	// ErrUnknownView is returned when a presentation view name does not
	// match any produced artifact.
	ErrUnknownView = errors.New("unknown view")
)
