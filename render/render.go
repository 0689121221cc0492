// Package render ties the pieces together: it fills a canvas with
// concentric colored rings and hands the encoded bitmap to a byte sink.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"ringbmp/bmp"
	"ringbmp/parallel"
	"ringbmp/raster"
)

// Options tune a render. The zero value asks for the default color rule
// and single-threaded drawing.
type Options struct {
	// Colors picks ring colors; nil means raster.DefaultColors.
	Colors raster.ColorFunc
	// Workers > 1 draws radii concurrently on that many workers.
	// Distinct radii never touch the same pixel, so the output is
	// byte-identical to a serial render.
	Workers int
}

// ConcentricCircles renders a width x height canvas of rings centered on
// the middle of the image, one ring per radius from 1 up to half the
// larger dimension, and encodes it to w as a 24-bit bitmap.
func ConcentricCircles(w io.Writer, width, height int, opts Options) error {
	buf, err := raster.New(width, height)
	if err != nil {
		return fmt.Errorf("could not create %dx%d canvas: %w", width, height, err)
	}

	rule := opts.Colors
	if rule == nil {
		rule = raster.DefaultColors
	}

	cx, cy := width/2, height/2
	maxRadius := max(width, height)/2 - 1
	if opts.Workers > 1 {
		pool := parallel.Start(opts.Workers)
		pool.ForEachInt(1, maxRadius, func(r int) {
			raster.DrawRing(buf, cx, cy, r, rule)
		})
	} else {
		for r := 1; r <= maxRadius; r++ {
			raster.DrawRing(buf, cx, cy, r, rule)
		}
	}

	if err := bmp.Encode(w, buf); err != nil {
		return fmt.Errorf("could not encode bitmap: %w", err)
	}
	return nil
}

// SaveFile writes the output of render into dest by way of a temporary
// file in the same directory, renamed into place only after a successful
// flush. A failed render never leaves a partial file behind.
func SaveFile(dest string, render func(io.Writer) error) (err error) {
	dir, name := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, name)
	if err != nil {
		return fmt.Errorf("could not create temporary destination in %q: %w", dir, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush destination %q: %w", dest, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", dest, defErr)
		}
		if !canRename || err != nil {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", defErr)
			}
			return
		}
		if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
			err = fmt.Errorf("could not rename destination %q: %w", dest, defErr)
		}
	}()

	if err = render(outFile); err != nil {
		return err
	}
	canRename = true
	return nil
}
