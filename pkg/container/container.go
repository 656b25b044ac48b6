// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container implements the DWDT container format: a fixed 32-byte
// header wrapped around one opaque payload extracted from a cartridge
// image. Containers are the only objects that cross tool invocations, so
// every consumer re-verifies the header and checksum on parse.
package container

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"time"

	"github.com/xaionaro-go/bytesextra"
)

// Signature is the magic marker at the start of every container.
var Signature = [4]byte{'D', 'W', 'D', 'T'}

const (
	// HeaderSize is the fixed size of the container header in bytes.
	HeaderSize = 32

	// VersionMajor is the highest major format revision this build
	// understands. A container with a larger major version is rejected;
	// unknown minor versions are accepted and their extra header
	// semantics ignored.
	VersionMajor = 1
	// VersionMinor is the minor format revision stamped on new containers.
	VersionMinor = 0

	// MaxPayloadSize bounds the payload accepted by Build and Parse.
	// Larger than any cartridge image this toolchain targets.
	MaxPayloadSize = 1 << 24
)

// Header is the serialized container header. All multi-byte integers are
// little-endian. The layout is frozen; Reserved must be written as zeros
// and is ignored on read so minor revisions can claim it later.
type Header struct {
	Magic        [4]byte
	VersionMajor uint8
	VersionMinor uint8
	TypeID       uint8
	Flags        uint8
	PayloadSize  uint32
	SourceOffset uint32
	Checksum     uint32
	Timestamp    uint32
	Reserved     [8]byte
}

// Container is an immutable header + payload pair. A new container is
// built, never mutated in place, whenever the payload changes.
type Container struct {
	Header
	payload []byte
}

// Build wraps payload in a fresh container stamped with the current
// version and time. It fails only when payload exceeds MaxPayloadSize.
func Build(typeID uint8, sourceOffset uint32, payload []byte) (*Container, error) {
	return BuildAt(typeID, sourceOffset, payload, time.Now())
}

// BuildAt is Build with a pinned timestamp, for reproducible output.
func BuildAt(typeID uint8, sourceOffset uint32, payload []byte, ts time.Time) (*Container, error) {
	if len(payload) > MaxPayloadSize {
		return nil, &SizeExceededError{Size: len(payload)}
	}
	c := &Container{
		Header: Header{
			Magic:        Signature,
			VersionMajor: VersionMajor,
			VersionMinor: VersionMinor,
			TypeID:       typeID,
			PayloadSize:  uint32(len(payload)),
			SourceOffset: sourceOffset,
			Checksum:     crc32.ChecksumIEEE(payload),
			Timestamp:    uint32(ts.Unix()),
		},
		payload: append([]byte(nil), payload...),
	}
	return c, nil
}

// Payload returns a copy of the payload bytes.
func (c *Container) Payload() []byte {
	return append([]byte(nil), c.payload...)
}

// Serialize renders the container as header followed by payload. The
// output is byte-for-byte deterministic for identical inputs.
func (c *Container) Serialize() ([]byte, error) {
	buf := make([]byte, HeaderSize+len(c.payload))
	w := bytesextra.NewReadWriteSeeker(buf)
	if err := binary.Write(w, binary.LittleEndian, c.Header); err != nil {
		return nil, err
	}
	copy(buf[HeaderSize:], c.payload)
	return buf, nil
}

// Parse reads a serialized container and re-verifies everything the
// header claims. A failed parse yields no usable payload: the container
// is either fully trusted or rejected.
func Parse(b []byte) (*Container, error) {
	if len(b) < HeaderSize {
		return nil, &TruncatedError{Want: HeaderSize, Got: len(b)}
	}
	var h Header
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Magic != Signature {
		return nil, &BadMagicError{Got: h.Magic}
	}
	if h.VersionMajor > VersionMajor {
		return nil, &UnsupportedVersionError{Got: h.VersionMajor}
	}
	if h.PayloadSize > MaxPayloadSize {
		return nil, &SizeExceededError{Size: int(h.PayloadSize)}
	}
	want := HeaderSize + int(h.PayloadSize)
	if len(b) < want {
		return nil, &TruncatedError{Want: want, Got: len(b)}
	}
	payload := b[HeaderSize:want]
	if sum := crc32.ChecksumIEEE(payload); sum != h.Checksum {
		return nil, &ChecksumMismatchError{Stored: h.Checksum, Computed: sum}
	}
	return &Container{
		Header:  h,
		payload: append([]byte(nil), payload...),
	}, nil
}
