package cuesheet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTimecode is returned when an INDEX stamp does not match
// the MM:SS:FF pattern.
var ErrMalformedTimecode = errors.New("cuesheet: malformed timecode")

// ErrEmptyCueSheet is returned when a sheet declares no FILE entries,
// usually meaning the input was blank or not a cue sheet at all.
var ErrEmptyCueSheet = errors.New("cuesheet: no FILE entries found")

// ErrUnknownTrackType is returned when the first track's type maps to
// no known block size, leaving the disc without a sector size.
var ErrUnknownTrackType = errors.New("cuesheet: unknown track type")

// MissingBinaryFilesError reports every referenced binary file that
// could not be found. The whole sheet is scanned before it is
// returned, so Paths is complete rather than first-hit.
type MissingBinaryFilesError struct {
	Paths []string
}

func (e *MissingBinaryFilesError) Error() string {
	return fmt.Sprintf("cuesheet: missing binary files: %s", strings.Join(e.Paths, ", "))
}
