// Package transcode streams track data between the split and merged
// layouts described by a parsed cue sheet.
//
// Both directions are non-destructive: every input is opened
// read-only, and no output path that already exists is ever touched.
// A returned error means the pre-existing contents of the working
// directory are intact.
package transcode

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rabidaudio/cuebin/cuesheet"
)

// chunkSize bounds the copy buffer. Disc images run to a few
// gigabytes, so they are never held in memory whole.
const chunkSize = 1 << 20

// Merge concatenates every binary file declared by sheet, in
// declaration order, into a single file at dest. It fails with
// [OutputExistsError] if dest already exists.
func Merge(sheet *cuesheet.Sheet, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return &OutputExistsError{Paths: []string{dest}}
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	buf := make([]byte, chunkSize)
	for _, f := range sheet.Files {
		if err := appendFile(out, f.Path, buf); err != nil {
			out.Close()
			return err
		}
	}
	return out.Close()
}

func appendFile(out io.Writer, path string, buf []byte) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close() // opened read-only
	_, err = io.CopyBuffer(out, in, buf)
	return err
}

// Split slices the merged binary of a single-FILE sheet into one file
// per track under dir, named by [cuesheet.SplitName] with basename.
// It returns the paths written, in track order.
//
// Every output path is checked before any write, so a collision fails
// the whole batch with [OutputExistsError] listing every offender
// rather than leaving some tracks written and others skipped. Each
// track takes exactly Sectors × BlockSize bytes from the continuous
// read position; tracks are contiguous in the merged file, so no
// seeking is involved. A source shorter than the computed sizes fails
// with [TruncatedSourceError].
func Split(sheet *cuesheet.Sheet, dir, basename string) ([]string, error) {
	src := sheet.Files[0]
	tracks := src.Tracks
	paths := make([]string, len(tracks))
	var collisions []string
	for i, t := range tracks {
		paths[i] = filepath.Join(dir, cuesheet.SplitName(basename, t.Number, len(tracks)))
		if _, err := os.Stat(paths[i]); err == nil {
			collisions = append(collisions, paths[i])
		}
	}
	if len(collisions) > 0 {
		return nil, &OutputExistsError{Paths: collisions}
	}

	in, err := os.Open(src.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close() // opened read-only

	buf := make([]byte, chunkSize)
	for i, t := range tracks {
		size := t.Sectors * sheet.BlockSize
		if err := writeTrack(paths[i], in, size, t.Number, buf); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func writeTrack(path string, in io.Reader, size int64, number int, buf []byte) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	n, err := io.CopyBuffer(out, io.LimitReader(in, size), buf)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if n < size {
		return &TruncatedSourceError{Track: number, Want: size, Got: n}
	}
	return nil
}
