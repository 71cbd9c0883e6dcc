package cuesheet

import (
	"fmt"
	"regexp"
	"strconv"
)

var stampPattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)

// SectorsToStamp renders a sector count as a canonical MM:SS:FF
// timecode. The minute field is zero-padded to at least two digits and
// has no upper bound, so discs longer than 99 minutes produce a wider
// field rather than wrapping.
func SectorsToStamp(sectors int64) string {
	return fmt.Sprintf("%02d:%02d:%02d",
		sectors/SectorsPerMinute,
		(sectors%SectorsPerMinute)/FramesPerSecond,
		sectors%FramesPerSecond)
}

// StampToSectors parses an MM:SS:FF timecode into an absolute sector
// count. Fields narrower or wider than two digits are accepted, so a
// non-canonical stamp like "1:2:3" parses even though it will not
// round-trip textually. Output from SectorsToStamp always round-trips.
func StampToSectors(stamp string) (int64, error) {
	m := stampPattern.FindStringSubmatch(stamp)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, stamp)
	}
	min, _ := strconv.ParseInt(m[1], 10, 64)
	sec, _ := strconv.ParseInt(m[2], 10, 64)
	frames, _ := strconv.ParseInt(m[3], 10, 64)
	return min*SectorsPerMinute + sec*FramesPerSecond + frames, nil
}
