// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rom treats the cartridge image as what it is to this pipeline:
// an opaque byte array of fixed total length, addressed by absolute file
// offsets. Reads never mutate; writes always produce a fresh copy so the
// caller can compare, retry, or decide not to replace the original.
package rom

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/xaionaro-go/bytesextra"
)

// Image is a fixed-length cartridge image.
type Image struct {
	buf []byte
}

// FromBytes wraps a copy of b.
func FromBytes(b []byte) *Image {
	return &Image{buf: append([]byte(nil), b...)}
}

// Load reads an image from a file.
func Load(path string) (*Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image '%s': %w", path, err)
	}
	return &Image{buf: b}, nil
}

// Save writes the image to a file.
func (im *Image) Save(path string) error {
	if err := os.WriteFile(path, im.buf, 0666); err != nil {
		return fmt.Errorf("unable to write image '%s': %w", path, err)
	}
	return nil
}

// Len returns the total image length in bytes.
func (im *Image) Len() int {
	return len(im.buf)
}

// Bytes returns a copy of the image contents.
func (im *Image) Bytes() []byte {
	return append([]byte(nil), im.buf...)
}

// Equal reports whether two images hold identical bytes.
func (im *Image) Equal(other *Image) bool {
	return bytes.Equal(im.buf, other.buf)
}

// Slice returns a copy of length bytes at offset.
func (im *Image) Slice(offset, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(im.buf)) {
		return nil, &OutOfBoundsError{Offset: offset, Length: length, ImageLen: len(im.buf)}
	}
	return append([]byte(nil), im.buf[offset:end]...), nil
}

// WriteRegion returns a copy of the image with data overwritten at
// offset. The receiver is left untouched. The region must already fit:
// an image never grows or shrinks.
func (im *Image) WriteRegion(offset uint32, data []byte) (*Image, error) {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(im.buf)) {
		return nil, &OutOfBoundsError{Offset: offset, Length: uint32(len(data)), ImageLen: len(im.buf)}
	}
	out := append([]byte(nil), im.buf...)
	w := bytesextra.NewReadWriteSeeker(out)
	if _, err := w.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	return &Image{buf: out}, nil
}

// OutOfBoundsError means a region does not fit within the image.
type OutOfBoundsError struct {
	Offset   uint32
	Length   uint32
	ImageLen int
}

func (err *OutOfBoundsError) Error() string {
	return fmt.Sprintf("region [0x%x, 0x%x) is out of bounds for a %d byte image",
		err.Offset, uint64(err.Offset)+uint64(err.Length), err.ImageLen)
}
