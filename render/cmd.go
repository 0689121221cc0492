package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type RenderCmd struct {
	Width   int    `help:"Canvas width in pixels" default:"1024"`
	Height  int    `help:"Canvas height in pixels" default:"1024"`
	Out     string `help:"Destination bitmap file" default:"rings.bmp"`
	Workers int    `help:"Worker count for drawing rings; 1 renders serially, 0 uses one worker per CPU" default:"1"`
	Force   bool   `help:"Overwrite the destination if it already exists" default:"false"`
}

func (c *RenderCmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 {
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("invalid canvas height: %d", c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = out

	if !c.Force {
		if info, err := os.Stat(c.Out); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("cannot stat destination file %q: %w", c.Out, err)
			}
		} else {
			return fmt.Errorf("destination file already exists: %q", info.Name())
		}
	}

	return nil
}

func (c *RenderCmd) Run() error {
	logger := slog.Default().With("file", c.Out)
	logger.Info("rendering", "width", c.Width, "height", c.Height, "workers", c.Workers)

	err := SaveFile(c.Out, func(w io.Writer) error {
		return ConcentricCircles(w, c.Width, c.Height, Options{Workers: c.Workers})
	})
	if err != nil {
		return err
	}

	logger.Info("saved", "bytes", fileSizeOf(c.Out))
	return nil
}

func fileSizeOf(name string) int64 {
	info, err := os.Stat(name)
	if err != nil {
		return -1
	}
	return info.Size()
}

type InfoCmd struct {
	File string `arg:"" help:"Bitmap file to inspect" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	imgFile, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.File, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", c.File, "error", closeErr)
		}
	}()

	imgConf, imgType, err := image.DecodeConfig(imgFile)
	if err != nil {
		return fmt.Errorf("could not read image %q: %w", c.File, err)
	}

	slog.Info("image", "file", c.File, "format", imgType,
		"width", imgConf.Width, "height", imgConf.Height)
	return nil
}
