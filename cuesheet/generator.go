package cuesheet

import (
	"fmt"
	"os"
	"strings"
)

// MergedSheet renders the merged-layout cue sheet for a disc parsed
// from a split set: a single FILE header named after basename, then
// every track in original order with each index offset rewritten to
// its position in the concatenated binary.
//
// The running offset advances by each file's size in whole sectors.
// Sizes that are not an exact multiple of the block size are tolerated
// and truncate, matching how these sheets have always been merged;
// valid disc images land exactly on sector boundaries anyway.
func MergedSheet(s *Sheet, basename string) []string {
	lines := []string{fmt.Sprintf("FILE %q BINARY", basename+".bin")}
	var offset int64 // sectors contributed by prior files
	for _, f := range s.Files {
		for _, t := range f.Tracks {
			lines = append(lines, fmt.Sprintf("  TRACK %02d %s", t.Number, t.Type))
			for _, idx := range t.Indexes {
				lines = append(lines, fmt.Sprintf("    INDEX %02d %s",
					idx.ID, SectorsToStamp(offset+idx.FileOffset)))
			}
		}
		offset += f.Size / s.BlockSize
	}
	return lines
}

// SplitSheet renders the split-layout cue sheet for a disc parsed from
// a merged binary: one FILE header per track, named by [SplitName],
// with each index offset rewritten relative to the track's own first
// index so every track starts at or near sector zero.
func SplitSheet(s *Sheet, basename string) []string {
	tracks := s.Tracks()
	var lines []string
	for _, t := range tracks {
		lines = append(lines,
			fmt.Sprintf("FILE %q BINARY", SplitName(basename, t.Number, len(tracks))),
			fmt.Sprintf("  TRACK %02d %s", t.Number, t.Type))
		for _, idx := range t.Indexes {
			lines = append(lines, fmt.Sprintf("    INDEX %02d %s",
				idx.ID, SectorsToStamp(idx.FileOffset-t.start())))
		}
	}
	return lines
}

// SplitName returns the output filename for one track of a split set
// with total tracks. A single-track disc gets plain "basename.bin"; a
// disc of ten or more tracks zero-pads the track number. External
// verification databases expect exactly this convention, so don't get
// creative here.
func SplitName(basename string, number, total int) string {
	switch {
	case total == 1:
		return basename + ".bin"
	case total >= 10:
		return fmt.Sprintf("%s (Track %02d).bin", basename, number)
	default:
		return fmt.Sprintf("%s (Track %d).bin", basename, number)
	}
}

// WriteSheet writes the generated lines to path as cue sheet text.
// Line endings are CRLF, which most consuming tools expect. An
// existing file at path is never overwritten; the returned error
// matches errors.Is(err, fs.ErrExist).
func WriteSheet(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(strings.Join(lines, "\r\n") + "\r\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
