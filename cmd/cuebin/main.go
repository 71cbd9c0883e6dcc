// Command cuebin converts a cue/bin optical disc image between its
// split (one binary file per track) and merged (single binary file)
// layouts, and can pack a split set into a FAT32 disk image.
//
// Both conversions are lossless and non-destructive: inputs are only
// ever read, and an existing output path aborts the whole operation
// before anything is written.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuebin/cuesheet"
	"github.com/rabidaudio/cuebin/fatimg"
	"github.com/rabidaudio/cuebin/transcode"
)

var log = logrus.New()

func main() {
	// .env and environment supply defaults; flags override
	_ = godotenv.Load()

	outdir := os.Getenv("CUEBIN_OUTDIR")
	if outdir == "" {
		outdir = "."
	}
	var verbose bool

	root := &cobra.Command{
		Use:          "cuebin",
		Short:        "Convert cue/bin disc images between split and merged layouts",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if lvl, err := logrus.ParseLevel(os.Getenv("CUEBIN_LOG_LEVEL")); err == nil {
				log.SetLevel(lvl)
			}
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	mergeCmd := &cobra.Command{
		Use:   "merge <cuefile> <basename>",
		Short: "Concatenate a split track set into one binary with a rewritten cue",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMerge(args[0], args[1], outdir)
		},
	}
	mergeCmd.Flags().StringVarP(&outdir, "outdir", "o", outdir, "output directory, created if missing")

	splitCmd := &cobra.Command{
		Use:   "split <cuefile> <basename>",
		Short: "Slice a merged binary back into one file per track with a rewritten cue",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSplit(args[0], args[1], outdir)
		},
	}
	splitCmd.Flags().StringVarP(&outdir, "outdir", "o", outdir, "output directory, created if missing")

	imageCmd := &cobra.Command{
		Use:   "image <cuefile> <image>",
		Short: "Pack a split track set into a FAT32 disk image",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImage(args[0], args[1])
		},
	}

	root.AddCommand(mergeCmd, splitCmd, imageCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMerge(cuePath, basename, outdir string) error {
	sheet, err := cuesheet.Parse(cuePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	cueOut := filepath.Join(outdir, basename+".cue")
	binOut := filepath.Join(outdir, basename+".bin")
	// surface a cue collision before the (long) binary copy starts
	if _, err := os.Stat(cueOut); err == nil {
		return &transcode.OutputExistsError{Paths: []string{cueOut}}
	}

	log.WithFields(logrus.Fields{
		"files": len(sheet.Files),
		"dest":  binOut,
	}).Info("merging")
	if err := transcode.Merge(sheet, binOut); err != nil {
		return err
	}
	log.WithField("cue", cueOut).Debug("writing cue sheet")
	return cuesheet.WriteSheet(cueOut, cuesheet.MergedSheet(sheet, basename))
}

func runSplit(cuePath, basename, outdir string) error {
	sheet, err := cuesheet.Parse(cuePath)
	if err != nil {
		return err
	}
	if len(sheet.Files) != 1 {
		return fmt.Errorf("split needs a merged (single FILE) cue sheet, got %d FILE entries", len(sheet.Files))
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	cueOut := filepath.Join(outdir, basename+".cue")
	if _, err := os.Stat(cueOut); err == nil {
		return &transcode.OutputExistsError{Paths: []string{cueOut}}
	}

	log.WithFields(logrus.Fields{
		"tracks": len(sheet.Files[0].Tracks),
		"outdir": outdir,
	}).Info("splitting")
	paths, err := transcode.Split(sheet, outdir, basename)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.WithField("path", p).Debug("wrote track")
	}
	return cuesheet.WriteSheet(cueOut, cuesheet.SplitSheet(sheet, basename))
}

func runImage(cuePath, imgPath string) error {
	sheet, err := cuesheet.Parse(cuePath)
	if err != nil {
		return err
	}
	var srcPaths []string
	for _, f := range sheet.Files {
		srcPaths = append(srcPaths, f.Path)
	}
	label := strings.TrimSuffix(filepath.Base(cuePath), filepath.Ext(cuePath))

	log.WithFields(logrus.Fields{
		"tracks": len(srcPaths),
		"image":  imgPath,
	}).Info("building disk image")
	if err := fatimg.Build(imgPath, label, srcPaths); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("refusing to overwrite %s", imgPath)
		}
		return err
	}
	return nil
}
