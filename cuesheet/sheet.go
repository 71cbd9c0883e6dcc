// Package cuesheet parses and regenerates the cue sheets that describe
// cue/bin optical disc images.
//
// A cue sheet maps one or more binary data files onto disc tracks and
// index points. The same disc can be laid out "split", with one binary
// file per track, or "merged", with a single binary file holding every
// track back to back and the boundaries recorded only in the sheet's
// INDEX offsets. This package holds the in-memory model shared by both
// layouts, [Parse] to read a sheet alongside its binary files, and
// [MergedSheet]/[SplitSheet] to emit the opposite layout with every
// offset recomputed.
package cuesheet

// Sheet is the parsed form of one cue sheet: the ordered binary files
// it declares, plus the sector size shared by the whole disc.
//
// A Sheet is built once by [Parse] and read-only afterwards. It
// exclusively owns its Files, which own their Tracks, which own their
// Indexes.
type Sheet struct {
	// BlockSize is the disc's bytes per sector, fixed by the type of
	// the first track encountered. Later tracks do not change it even
	// if their declared type implies a different size.
	BlockSize int64

	Files []*File
}

// File is one physical binary file declared by a FILE line. In split
// form a File almost always holds exactly one Track; in merged form a
// single File holds every Track.
type File struct {
	Path   string // absolute path, resolved against the cue sheet's directory
	Size   int64  // byte size, probed from the filesystem at parse time
	Tracks []*Track
}

// Track is one logical disc track.
type Track struct {
	Number  int    // 1-based, as declared
	Type    string // declared type tag, e.g. "AUDIO" or "MODE2/2352"
	Indexes []Index

	// Sectors is the total number of sectors belonging to this track.
	// It is only derived when parsing a merged (single FILE) sheet,
	// where it is needed to slice the binary back apart; for split
	// sheets it is left zero.
	Sectors int64
}

// Index is one INDEX line. ID 0 marks a pregap, 1 the playable start
// of the track; higher ids occur occasionally.
type Index struct {
	ID         int
	FileOffset int64  // sectors from the start of the declaring FILE
	Stamp      string // the stamp as read; output is always regenerated from FileOffset
}

// Tracks returns the sheet's tracks across all files, in declaration
// order.
func (s *Sheet) Tracks() []*Track {
	var tracks []*Track
	for _, f := range s.Files {
		tracks = append(tracks, f.Tracks...)
	}
	return tracks
}

// start returns the track's first index's file offset in sectors.
func (t *Track) start() int64 {
	if len(t.Indexes) == 0 {
		return 0
	}
	return t.Indexes[0].FileOffset
}
