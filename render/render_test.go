package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"ringbmp/bmp"
)

func TestConcentricCirclesRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero width", width: 0, height: 64},
		{name: "negative height", width: 64, height: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := ConcentricCircles(&out, tt.width, tt.height, Options{}); err == nil {
				t.Error("ConcentricCircles succeeded, want error")
			}
			if out.Len() != 0 {
				t.Errorf("wrote %d bytes despite error", out.Len())
			}
		})
	}
}

func TestConcentricCirclesOutput(t *testing.T) {
	const width, height = 64, 48
	var out bytes.Buffer
	if err := ConcentricCircles(&out, width, height, Options{}); err != nil {
		t.Fatalf("ConcentricCircles failed: %v", err)
	}

	if got, want := out.Len(), bmp.FileSize(width, height); got != want {
		t.Fatalf("output size = %d, want %d", got, want)
	}

	h := out.Bytes()
	if h[0] != 'B' || h[1] != 'M' {
		t.Errorf("magic = %q, want BM", h[:2])
	}
	le := binary.LittleEndian
	if got := le.Uint32(h[18:22]); got != width {
		t.Errorf("header width = %d, want %d", got, width)
	}
	if got := le.Uint32(h[22:26]); got != height {
		t.Errorf("header height = %d, want %d", got, height)
	}

	// The ring sweep must have touched the canvas.
	if !bytes.ContainsFunc(h[54:], func(r rune) bool { return r != 0 }) {
		t.Error("pixel data is all zero, no rings drawn")
	}
}

func TestConcentricCirclesParallelMatchesSerial(t *testing.T) {
	const width, height = 100, 70
	var serial, concurrent bytes.Buffer
	if err := ConcentricCircles(&serial, width, height, Options{}); err != nil {
		t.Fatalf("serial render failed: %v", err)
	}
	if err := ConcentricCircles(&concurrent, width, height, Options{Workers: 8}); err != nil {
		t.Fatalf("parallel render failed: %v", err)
	}
	if !bytes.Equal(serial.Bytes(), concurrent.Bytes()) {
		t.Error("parallel render differs from serial render")
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.bmp")

	payload := []byte("payload")
	err := SaveFile(dest, func(w io.Writer) error {
		_, err := w.Write(payload)
		return err
	})
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("could not read destination: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("destination = %q, want %q", got, payload)
	}
}

func TestSaveFileLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.bmp")

	renderErr := errors.New("render broke")
	err := SaveFile(dest, func(w io.Writer) error {
		if _, werr := w.Write([]byte("partial")); werr != nil {
			return werr
		}
		return renderErr
	})
	if !errors.Is(err, renderErr) {
		t.Fatalf("SaveFile error = %v, want %v", err, renderErr)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("could not read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed save: %v", entries)
	}
}
