package transcode

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// OutputExistsError is returned when an operation would overwrite a
// pre-existing file. Nothing has been written when it is returned: the
// whole batch of output paths is checked before the first byte moves.
type OutputExistsError struct {
	Paths []string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("transcode: output already exists: %s", strings.Join(e.Paths, ", "))
}

func (e *OutputExistsError) Unwrap() error { return fs.ErrExist }

// TruncatedSourceError is returned when the merged binary runs out of
// data before a track's computed size has been read.
type TruncatedSourceError struct {
	Track int
	Want  int64 // bytes the track should span
	Got   int64 // bytes actually available
}

func (e *TruncatedSourceError) Error() string {
	return fmt.Sprintf("transcode: track %d needs %d bytes but source had %d",
		e.Track, e.Want, e.Got)
}

func (e *TruncatedSourceError) Unwrap() error { return io.ErrUnexpectedEOF }
