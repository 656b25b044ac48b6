// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"

	"github.com/romtools/dwkit/pkg/registry"
)

// TypeMismatchError means a container was handed to the wrong registry
// entry.
type TypeMismatchError struct {
	Got  registry.TypeID
	Want registry.TypeID
}

func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf("container carries type %s, entry expects %s", err.Got, err.Want)
}

// SizeMismatchError means a container's payload size disagrees with the
// registry entry it is being used with.
type SizeMismatchError struct {
	Got  uint32
	Want uint32
}

func (err *SizeMismatchError) Error() string {
	return fmt.Sprintf("container payload is %d bytes, entry expects %d", err.Got, err.Want)
}

// RecordCountError means a record set no longer holds the number of
// records its type is registered with.
type RecordCountError struct {
	Got  int
	Want int
}

func (err *RecordCountError) Error() string {
	return fmt.Sprintf("record set holds %d records, entry expects %d", err.Got, err.Want)
}

// ProvenanceMismatchError means a container's declared source offset is
// not the offset of the entry it is being inserted through. This refuses
// to write one type's payload into another type's region even if the
// type ids were somehow conflated.
type ProvenanceMismatchError struct {
	ContainerOffset uint32
	EntryOffset     uint32
}

func (err *ProvenanceMismatchError) Error() string {
	return fmt.Sprintf("container declares source offset 0x%x, entry is registered at 0x%x",
		err.ContainerOffset, err.EntryOffset)
}

// SizeInvariantError means an insertion changed the total image length,
// which this format never does.
type SizeInvariantError struct {
	Was int
	Now int
}

func (err *SizeInvariantError) Error() string {
	return fmt.Sprintf("image length changed from %d to %d bytes during insertion", err.Was, err.Now)
}
