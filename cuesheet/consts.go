package cuesheet

// FramesPerSecond is the number of frames in one second of disc time.
// A frame is the smallest addressable unit of a CD, defined as 1/75th
// of a second, and is interchangable with sector for our purposes.
// Cue sheet INDEX offsets are specified in MM:SS:FF.
const FramesPerSecond = 75

// SectorsPerMinute is the number of sectors in one minute of disc
// time (4500).
const SectorsPerMinute = 60 * FramesPerSecond

// Block sizes in bytes per sector, by track type. Raw modes carry the
// full 2352-byte sector including sync and header fields; cooked modes
// carry only the user data area.
const (
	BlockSizeRaw   = 2352 // AUDIO, MODE1/2352, MODE2/2352, CDI/2352
	BlockSizeCDG   = 2448 // CDG: raw sector plus 96 bytes of subchannel data
	BlockSizeMode1 = 2048 // MODE1/2048
	BlockSizeMode2 = 2336 // MODE2/2336, CDI/2336
)

// blockSizeFor maps a declared track type to its block size, or 0 if
// the type is not recognized.
func blockSizeFor(trackType string) int64 {
	switch trackType {
	case "AUDIO", "MODE1/2352", "MODE2/2352", "CDI/2352":
		return BlockSizeRaw
	case "CDG":
		return BlockSizeCDG
	case "MODE1/2048":
		return BlockSizeMode1
	case "MODE2/2336", "CDI/2336":
		return BlockSizeMode2
	default:
		return 0
	}
}
