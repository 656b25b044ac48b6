// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
)

// UnknownTypeError means no entry is registered for the requested type.
type UnknownTypeError struct {
	ID   TypeID
	Name string
}

func (err *UnknownTypeError) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("unknown type %q", err.Name)
	}
	return fmt.Sprintf("unknown type id %s", err.ID)
}

// UnknownCodecError means an entry's configuration names a codec this
// build does not ship.
type UnknownCodecError struct {
	Entry string
	Codec string
}

func (err *UnknownCodecError) Error() string {
	return fmt.Sprintf("entry %q references unknown codec %q", err.Entry, err.Codec)
}

// ConfigOverlapError means two entries claim intersecting image ranges.
// The registry refuses to come up, since overlapping ranges would make
// every subsequent stage's offset math unsafe.
type ConfigOverlapError struct {
	A *Entry
	B *Entry
}

func (err *ConfigOverlapError) Error() string {
	return fmt.Sprintf("entries %q %s and %q %s claim overlapping image ranges",
		err.A.Name, err.A.Range(), err.B.Name, err.B.Range())
}

// StrideError means an entry's payload size, record count and stride
// disagree with each other.
type StrideError struct {
	Entry  string
	Reason string
}

func (err *StrideError) Error() string {
	return fmt.Sprintf("entry %q: %s", err.Entry, err.Reason)
}

// DuplicateIDError means two entries share a type id.
type DuplicateIDError struct {
	ID TypeID
}

func (err *DuplicateIDError) Error() string {
	return fmt.Sprintf("two entries registered type id %s", err.ID)
}

// DuplicateNameError means two entries share a name.
type DuplicateNameError struct {
	Name string
}

func (err *DuplicateNameError) Error() string {
	return fmt.Sprintf("two entries registered the name %q", err.Name)
}
