// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

import (
	"fmt"
)

// BadMagicError means the leading marker is not the DWDT signature.
type BadMagicError struct {
	Got [4]byte
}

func (err *BadMagicError) Error() string {
	return fmt.Sprintf("bad magic: expected %q, got %q", Signature, err.Got)
}

// UnsupportedVersionError means the container's major version exceeds
// what this build understands.
type UnsupportedVersionError struct {
	Got uint8
}

func (err *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported container version: major %d, this build understands up to %d",
		err.Got, VersionMajor)
}

// TruncatedError means fewer bytes are present than the header declares.
type TruncatedError struct {
	Want int
	Got  int
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("truncated container: need %d bytes, got %d", err.Want, err.Got)
}

// ChecksumMismatchError means the stored CRC-32 disagrees with the one
// recomputed over the payload. The container is corrupt and must not be
// unpacked or inserted.
type ChecksumMismatchError struct {
	Stored   uint32
	Computed uint32
}

func (err *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("payload checksum mismatch: stored 0x%08X, computed 0x%08X",
		err.Stored, err.Computed)
}

// SizeExceededError means the payload is larger than MaxPayloadSize.
type SizeExceededError struct {
	Size int
}

func (err *SizeExceededError) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds the maximum of %d", err.Size, MaxPayloadSize)
}
