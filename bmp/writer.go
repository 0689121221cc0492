// Package bmp serializes a raster.Buffer as an uncompressed 24-bit
// Windows bitmap: a 54-byte little-endian header followed by bottom-up,
// BGR-ordered pixel rows padded to 4-byte boundaries.
package bmp

import (
	"encoding/binary"
	"fmt"
	"io"

	"ringbmp/raster"
)

const (
	// fileHeaderSize + infoHeaderSize is also the pixel data offset.
	fileHeaderSize = 14
	infoHeaderSize = 40
	headerSize     = fileHeaderSize + infoHeaderSize

	bitsPerPixel  = 24
	bytesPerPixel = 3
)

// BytesPerRow returns the on-disk length of one pixel row: width pixels
// at 24 bits, rounded up to the next multiple of 4 bytes. The format
// requires the rounding, e.g. width 175 gives 528 bytes, not 525.
func BytesPerRow(width int) int {
	return ((width*bitsPerPixel + 31) / 32) * 4
}

// FileSize returns the total encoded size in bytes for a canvas of the
// given dimensions.
func FileSize(width, height int) int {
	return headerSize + BytesPerRow(width)*height
}

// writeHeader fills in the BITMAPFILEHEADER and BITMAPINFOHEADER fields
// one by one. The wire layout is written explicitly rather than through a
// struct so it cannot depend on in-memory field alignment.
func writeHeader(h []byte, width, height, imageDataSize int) {
	le := binary.LittleEndian

	h[0] = 'B'
	h[1] = 'M'
	le.PutUint32(h[2:6], uint32(headerSize+imageDataSize)) // file size
	le.PutUint32(h[6:10], 0)                               // reserved
	le.PutUint32(h[10:14], headerSize)                     // pixel data offset

	le.PutUint32(h[14:18], infoHeaderSize)
	le.PutUint32(h[18:22], uint32(width))
	le.PutUint32(h[22:26], uint32(height))
	le.PutUint16(h[26:28], 1) // color planes
	le.PutUint16(h[28:30], bitsPerPixel)
	le.PutUint32(h[30:34], 0) // no compression
	le.PutUint32(h[34:38], uint32(imageDataSize))
	le.PutUint32(h[38:42], 0) // x pixels per meter, unspecified
	le.PutUint32(h[42:46], 0) // y pixels per meter, unspecified
	le.PutUint32(h[46:50], 0) // colors used
	le.PutUint32(h[50:54], 0) // important colors
}

// Encode writes buf to w as a complete bitmap file. The transformation
// itself cannot fail; any returned error comes from the writer.
func Encode(w io.Writer, buf *raster.Buffer) error {
	bytesPerRow := BytesPerRow(buf.Width)
	imageDataSize := bytesPerRow * buf.Height

	var header [headerSize]byte
	writeHeader(header[:], buf.Width, buf.Height, imageDataSize)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("could not write bitmap header: %w", err)
	}

	// One scratch row, reused for every line. Trailing pad bytes stay
	// zero for the whole encode.
	row := make([]byte, bytesPerRow)

	// Rows are stored upside down: last image row first.
	for y := buf.Height - 1; y >= 0; y-- {
		for x := 0; x < buf.Width; x++ {
			c := buf.RGBAt(x, y)
			i := x * bytesPerPixel
			row[i] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("could not write bitmap row %d: %w", y, err)
		}
	}

	return nil
}
