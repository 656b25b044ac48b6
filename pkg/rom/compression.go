// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

// Compressor defines a single compression scheme used for image backups.
type Compressor interface {
	// Name is the scheme name as selectable from the command line.
	Name() string

	// Suffix is the file name suffix for backups in this scheme.
	Suffix() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

// CompressorByName returns the Compressor with the given name, or nil.
func CompressorByName(name string) Compressor {
	switch name {
	case "gzip":
		return &GZIP{}
	case "xz":
		return &XZ{}
	case "lz4":
		return &LZ4{}
	}
	return nil
}

// GZIP implements Compressor using the gzip format.
type GZIP struct{}

// Name implements Compressor.
func (c *GZIP) Name() string { return "gzip" }

// Suffix implements Compressor.
func (c *GZIP) Suffix() string { return "gz" }

// Encode implements Compressor.
func (c *GZIP) Encode(decodedData []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Compressor.
func (c *GZIP) Decode(encodedData []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(encodedData))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// XZ implements Compressor using the xz format.
type XZ struct{}

// Name implements Compressor.
func (c *XZ) Name() string { return "xz" }

// Suffix implements Compressor.
func (c *XZ) Suffix() string { return "xz" }

// Encode implements Compressor.
func (c *XZ) Encode(decodedData []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Compressor.
func (c *XZ) Decode(encodedData []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(encodedData))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// LZ4 implements Compressor using the lz4 frame format.
type LZ4 struct{}

// Name implements Compressor.
func (c *LZ4) Name() string { return "lz4" }

// Suffix implements Compressor.
func (c *LZ4) Suffix() string { return "lz4" }

// Encode implements Compressor.
func (c *LZ4) Encode(decodedData []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Compressor.
func (c *LZ4) Decode(encodedData []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(encodedData)))
}
