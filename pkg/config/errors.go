package config

import "errors"

var (
	// ErrParsingConfig is returned when settings cannot be parsed from the
	// environment or a settings file.
	ErrParsingConfig = errors.New("failed to parse validation settings")

	// ErrReadingConfig is returned when a settings file cannot be read.
	ErrReadingConfig = errors.New("failed to read settings file")

	// ErrNilPointer is returned when a nil pointer is passed to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrNoClassDurations is returned when the allowed class-duration set
	// is empty.
	ErrNoClassDurations = errors.New("class durations must not be empty")
)
