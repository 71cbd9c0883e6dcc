package cuesheet

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Line shapes are matched by search, not column position, so the
// conventional indentation is not required. Any line matching none of
// them (REM, CD-TEXT, PREGAP, ...) is dropped.
var (
	filePattern  = regexp.MustCompile(`FILE "?(.*?)"? BINARY`)
	trackPattern = regexp.MustCompile(`TRACK (\d+) (\S+)`)
	indexPattern = regexp.MustCompile(`INDEX (\d+) (\S+)`)
)

// Parse reads the cue sheet at cuePath and probes the binary files it
// references, which are resolved relative to the sheet's own
// directory.
//
// Every referenced file must exist; the whole sheet is scanned before
// failing so a [MissingBinaryFilesError] lists all absent files, not
// just the first. A sheet with no FILE lines fails with
// [ErrEmptyCueSheet].
//
// A TRACK line before any FILE, or an INDEX line before any TRACK, is
// silently dropped. That matches how these sheets have historically
// been read, and stricter tools reject files that play fine elsewhere.
func Parse(cuePath string) (*Sheet, error) {
	f, err := os.Open(cuePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() // opened read-only

	dir := filepath.Dir(cuePath)
	sheet := &Sheet{}
	var missing []string
	var curFile *File
	var curTrack *Track

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if m := filePattern.FindStringSubmatch(line); m != nil {
			path := m[1]
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			curFile = &File{Path: path}
			curTrack = nil
			if info, err := os.Stat(path); err != nil {
				missing = append(missing, path)
			} else {
				curFile.Size = info.Size()
			}
			sheet.Files = append(sheet.Files, curFile)
		} else if m := trackPattern.FindStringSubmatch(line); m != nil {
			if curFile == nil {
				continue
			}
			num, _ := strconv.Atoi(m[1])
			curTrack = &Track{Number: num, Type: m[2]}
			if sheet.BlockSize == 0 {
				if sheet.BlockSize = blockSizeFor(m[2]); sheet.BlockSize == 0 {
					return nil, fmt.Errorf("%w: %q", ErrUnknownTrackType, m[2])
				}
			}
			curFile.Tracks = append(curFile.Tracks, curTrack)
		} else if m := indexPattern.FindStringSubmatch(line); m != nil {
			if curTrack == nil {
				continue
			}
			id, _ := strconv.Atoi(m[1])
			offset, err := StampToSectors(m[2])
			if err != nil {
				return nil, err
			}
			curTrack.Indexes = append(curTrack.Indexes, Index{
				ID:         id,
				FileOffset: offset,
				Stamp:      m[2],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(sheet.Files) == 0 {
		return nil, ErrEmptyCueSheet
	}
	if len(missing) > 0 {
		return nil, &MissingBinaryFilesError{Paths: missing}
	}

	// A single FILE means we are reading the merged layout, which does
	// not state per-track lengths. Derive them now; the merge path only
	// needs offsets, so multi-FILE sheets skip this.
	if len(sheet.Files) == 1 && sheet.BlockSize > 0 {
		deriveSectorCounts(sheet.Files[0], sheet.BlockSize)
	}
	return sheet, nil
}

// deriveSectorCounts computes each track's length for a merged sheet.
// Track starts are contiguous and monotonically increasing, so walking
// the declaration order in reverse with a cursor initialized to the
// file's total sector count yields exact lengths: each track runs from
// its first index to wherever the cursor last stopped.
func deriveSectorCounts(f *File, blockSize int64) {
	cursor := f.Size / blockSize
	for i := len(f.Tracks) - 1; i >= 0; i-- {
		t := f.Tracks[i]
		if len(t.Indexes) == 0 {
			continue
		}
		t.Sectors = cursor - t.start()
		cursor = t.start()
	}
}
