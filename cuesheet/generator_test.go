package cuesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// audioTrack builds a split-form audio track with a two second pregap.
func audioTrack(num int) *Track {
	return &Track{
		Number: num,
		Type:   "AUDIO",
		Indexes: []Index{
			{ID: 0, FileOffset: 0},
			{ID: 1, FileOffset: 150},
		},
	}
}

func TestMergedSheet(t *testing.T) {
	// a data track followed by four audio tracks, sized so track 2's
	// INDEX 01 lands on the 32:28:61 stamp
	sheet := &Sheet{
		BlockSize: 2352,
		Files: []*File{
			{Size: 146011 * 2352, Tracks: []*Track{{
				Number:  1,
				Type:    "MODE2/2352",
				Indexes: []Index{{ID: 1, FileOffset: 0}},
			}}},
			{Size: 9000 * 2352, Tracks: []*Track{audioTrack(2)}},
			{Size: 9000 * 2352, Tracks: []*Track{audioTrack(3)}},
			{Size: 9000 * 2352, Tracks: []*Track{audioTrack(4)}},
			{Size: 9000 * 2352, Tracks: []*Track{audioTrack(5)}},
		},
	}

	assert.Equal(t, []string{
		`FILE "Big Buddy.bin" BINARY`,
		`  TRACK 01 MODE2/2352`,
		`    INDEX 01 00:00:00`,
		`  TRACK 02 AUDIO`,
		`    INDEX 00 32:26:61`,
		`    INDEX 01 32:28:61`,
		`  TRACK 03 AUDIO`,
		`    INDEX 00 34:26:61`,
		`    INDEX 01 34:28:61`,
		`  TRACK 04 AUDIO`,
		`    INDEX 00 36:26:61`,
		`    INDEX 01 36:28:61`,
		`  TRACK 05 AUDIO`,
		`    INDEX 00 38:26:61`,
		`    INDEX 01 38:28:61`,
	}, MergedSheet(sheet, "Big Buddy"))
}

func TestMergedSheetToleratesNonExactSizes(t *testing.T) {
	// a trailing partial sector truncates instead of erroring
	sheet := &Sheet{
		BlockSize: 2352,
		Files: []*File{
			{Size: 100*2352 + 7, Tracks: []*Track{{
				Number:  1,
				Type:    "AUDIO",
				Indexes: []Index{{ID: 1, FileOffset: 0}},
			}}},
			{Size: 10 * 2352, Tracks: []*Track{{
				Number:  2,
				Type:    "AUDIO",
				Indexes: []Index{{ID: 1, FileOffset: 0}},
			}}},
		},
	}
	lines := MergedSheet(sheet, "disc")
	assert.Equal(t, `    INDEX 01 00:01:25`, lines[len(lines)-1])
}

func TestSplitSheet(t *testing.T) {
	sheet := &Sheet{
		BlockSize: 2352,
		Files: []*File{{
			Size: 1000 * 2352,
			Tracks: []*Track{
				{
					Number:  1,
					Type:    "MODE2/2352",
					Indexes: []Index{{ID: 1, FileOffset: 0}},
					Sectors: 300,
				},
				{
					Number: 2,
					Type:   "AUDIO",
					Indexes: []Index{
						{ID: 0, FileOffset: 300},
						{ID: 1, FileOffset: 450},
					},
					Sectors: 700,
				},
			},
		}},
	}

	assert.Equal(t, []string{
		`FILE "disc (Track 1).bin" BINARY`,
		`  TRACK 01 MODE2/2352`,
		`    INDEX 01 00:00:00`,
		`FILE "disc (Track 2).bin" BINARY`,
		`  TRACK 02 AUDIO`,
		`    INDEX 00 00:00:00`,
		`    INDEX 01 00:02:00`,
	}, SplitSheet(sheet, "disc"))
}

func TestSplitName(t *testing.T) {
	// a single-track disc gets no Track suffix at all
	assert.Equal(t, "game.bin", SplitName("game", 1, 1))
	// under ten tracks, no padding
	assert.Equal(t, "game (Track 3).bin", SplitName("game", 3, 9))
	// ten or more, two-digit padding
	assert.Equal(t, "game (Track 03).bin", SplitName("game", 3, 12))
	assert.Equal(t, "game (Track 11).bin", SplitName("game", 11, 12))
}

func TestWriteSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cue")
	require.NoError(t, WriteSheet(path, []string{"a", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", string(data))
}

func TestWriteSheetRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cue")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0644))

	err := WriteSheet(path, []string{"new"})
	assert.ErrorIs(t, err, os.ErrExist)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
}
