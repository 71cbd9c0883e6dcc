// Package fatimg packs a split cue/bin track set into an
// MBR-partitioned FAT32 disk image, the layout that car CD adapters
// and similar appliances read their media from.
package fatimg

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/filesystem/fat32"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const sectorSize = 512

// partStart leaves the conventional alignment gap before the first
// partition.
const partStart = 2048

// minImageSize keeps the image above the smallest size a FAT32
// filesystem can be formatted at.
const minImageSize = 64 * fat32.MB

// sanitizeName converts a name to DOS format by uppercasing, limiting
// to ASCII letters, and trimming to 8 chars.
func sanitizeName(name string) string {
	// https://en.wikipedia.org/wiki/8.3_filename
	newName := make([]rune, 0, 8)
	for _, r := range []rune(strings.ToUpper(name)) {
		if len(newName) == 8 {
			break
		}
		if r >= 'A' && r <= 'Z' {
			newName = append(newName, r)
		}
	}
	return string(newName)
}

// Build creates a FAT32 disk image at imgPath and copies every file in
// srcPaths into it as TRACKnn.BIN, in order, under a directory named
// after label (or at the root if label sanitizes to nothing). An
// existing file at imgPath is never overwritten; the returned error
// matches errors.Is(err, fs.ErrExist).
func Build(imgPath, label string, srcPaths []string) error {
	if _, err := os.Stat(imgPath); err == nil {
		return fmt.Errorf("fatimg: %s: %w", imgPath, fs.ErrExist)
	}

	var total int64
	for _, p := range srcPaths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		total += info.Size()
	}
	// filesystem structures and cluster slack need headroom
	size := total + total/8 + minImageSize
	size -= size % sectorSize

	dsk, err := diskfs.Create(imgPath, size, diskfs.SectorSizeDefault)
	if err != nil {
		return err
	}

	// one FAT32 partition spanning the rest of the image
	table := &mbr.Table{
		LogicalSectorSize:  sectorSize,
		PhysicalSectorSize: sectorSize,
		Partitions: []*mbr.Partition{
			{
				Bootable: false,
				Type:     mbr.Fat32LBA,
				Start:    partStart,
				Size:     uint32(size/sectorSize) - partStart,
			},
		},
	}
	if err := dsk.Partition(table); err != nil {
		os.Remove(imgPath)
		return err
	}
	fatfs, err := dsk.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: "CUEBIN",
	})
	if err != nil {
		os.Remove(imgPath)
		return err
	}

	if err := loadTracks(fatfs, label, srcPaths); err != nil {
		os.Remove(imgPath)
		return err
	}
	return nil
}

func loadTracks(fatfs filesystem.FileSystem, label string, srcPaths []string) error {
	dir := sanitizeName(label)
	if dir != "" {
		dir = "/" + dir
		if err := fatfs.Mkdir(dir); err != nil {
			return err
		}
	}

	for i, p := range srcPaths {
		fname := fmt.Sprintf("%v/TRACK%02d.BIN", dir, i+1)
		if err := copyTrack(fatfs, fname, p); err != nil {
			return fmt.Errorf("fatimg: write track %v: %w", fname, err)
		}
	}
	return nil
}

func copyTrack(fatfs filesystem.FileSystem, fname, srcPath string) error {
	dst, err := fatfs.OpenFile(fname, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return err
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close() // opened read-only
	_, err = io.Copy(dst, src)
	return err
}
