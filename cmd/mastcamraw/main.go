package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	mc "mastcamraw/pkg/mastcamraw"
)

const previewWidth = 800

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fl := flag.NewFlagSet("mastcamraw", flag.ContinueOnError)
	outputDir := fl.String("output", "", "directory for output PNGs (default: output_png/ beside each label)")
	bayerName := fl.String("bayer", "", "override the Bayer pattern (rggb, gbrg, grbg, bggr)")
	workers := fl.Int("workers", runtime.NumCPU(), "number of images processed in parallel")
	preview := fl.Bool("preview", false, "also write a scaled JPEG preview per image")
	verbose := fl.Bool("v", false, "enable debug logging")
	if err := fl.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fl.NArg() < 1 {
		return fmt.Errorf("usage: mastcamraw [flags] <label-or-directory> ...")
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	var override *mc.BayerPattern
	if *bayerName != "" {
		p, err := mc.ParseBayerPattern(*bayerName)
		if err != nil {
			return err
		}
		override = &p
	}

	labels, err := findLabels(log, fl.Args())
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no XML label files found")
	}
	log.Info().Int("labels", len(labels)).Msg("starting batch")

	opts := mc.DefaultOptions()
	numWorkers := *workers
	if numWorkers < 1 {
		numWorkers = 1
	}

	// One image per worker; the pipeline itself shares no state across
	// images, so this needs no synchronization beyond the tally.
	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, failed := 0, 0

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for labelPath := range jobs {
				outPath, err := processLabel(log, labelPath, override, *outputDir, *preview, opts)
				mu.Lock()
				if err != nil {
					failed++
					log.Error().Err(err).Str("label", labelPath).Msg("processing failed")
				} else {
					succeeded++
					log.Info().Str("output", outPath).Msg("saved")
				}
				mu.Unlock()
			}
		}()
	}

	start := time.Now()
	for _, labelPath := range labels {
		jobs <- labelPath
	}
	close(jobs)
	wg.Wait()

	log.Info().
		Int("succeeded", succeeded).
		Int("failed", failed).
		Int("total", len(labels)).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")

	if succeeded == 0 {
		return fmt.Errorf("all %d images failed", failed)
	}
	return nil
}

// findLabels expands the input arguments into a sorted list of PDS4 XML
// label paths, searching directories recursively.
func findLabels(log zerolog.Logger, paths []string) ([]string, error) {
	var labels []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("path not found: %s", p)
		}
		if info.IsDir() {
			walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
					labels = append(labels, path)
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("searching %s: %w", p, walkErr)
			}
		} else if strings.EqualFold(filepath.Ext(p), ".xml") {
			labels = append(labels, p)
		} else {
			log.Warn().Str("path", p).Msg("skipping non-XML file")
		}
	}
	sort.Strings(labels)
	return labels, nil
}

// processLabel runs one label + IMG pair through the full pipeline and
// writes the resulting PNG (and optional preview).
func processLabel(log zerolog.Logger, labelPath string, override *mc.BayerPattern, outputDir string, preview bool, opts mc.Options) (string, error) {
	label, err := mc.ParseLabelFile(labelPath)
	if err != nil {
		return "", err
	}

	pattern := mc.DefaultPattern
	if override != nil {
		pattern = *override
	}
	log.Debug().
		Str("label", labelPath).
		Str("file", label.FileName).
		Int64("offset", label.Offset).
		Int("samples", label.Samples).
		Int("lines", label.Lines).
		Stringer("bayer", pattern).
		Msg("processing")

	imgPath := filepath.Join(filepath.Dir(labelPath), label.FileName)
	frame, err := mc.ReadMosaic(imgPath, label.Offset, label.Samples, label.Lines)
	if err != nil {
		return "", err
	}

	raster, err := mc.Process(frame, pattern, opts)
	if err != nil {
		return "", err
	}
	img := raster.ToRGBA()

	destDir := outputDir
	if destDir == "" {
		destDir = filepath.Join(filepath.Dir(labelPath), "output_png")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(imgPath), filepath.Ext(imgPath))
	outPath := filepath.Join(destDir, base+"_RGB.png")
	if err := saveImage(outPath, img); err != nil {
		return "", err
	}

	if preview {
		thumbPath := filepath.Join(destDir, base+"_thumb.jpg")
		if err := mc.WritePreviewJPEG(thumbPath, img, previewWidth); err != nil {
			return "", err
		}
	}
	return outPath, nil
}
