// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements the four stage operations that move packed
// game data through the DWDT container format: extract from the image,
// unpack into records, pack edited records, and insert back into a copy
// of the image. Stages for distinct types are independent; within one
// type the order Extract, Unpack, Validate, Pack, Insert is strict and a
// failed stage is terminal for that run.
package pipeline

import (
	"fmt"

	"github.com/romtools/dwkit/pkg/record"
	"github.com/romtools/dwkit/pkg/registry"
	"github.com/romtools/dwkit/pkg/rom"
)

// Stage identifies how far a type's pipeline run has progressed.
type Stage int

// Pipeline stages, in execution order.
const (
	StageExtracted Stage = iota
	StageUnpacked
	StageValidated
	StagePacked
	StageInserted
)

var stageNames = map[Stage]string{
	StageExtracted: "extracted",
	StageUnpacked:  "unpacked",
	StageValidated: "validated",
	StagePacked:    "packed",
	StageInserted:  "inserted",
}

// String creates a string representation for the stage.
func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Run drives one type through the whole state machine. edit, if non-nil,
// is applied to the structured form between unpacking and validation.
// Validation failure halts the run; a caller that wants to retry re-runs
// from extraction.
func Run(im *rom.Image, reg *registry.Registry, id registry.TypeID, edit func(*record.Set) error, opts InsertOptions) (*rom.Image, error) {
	entry, err := reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	c, err := ExtractEntry(im, entry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageExtracted, err)
	}
	set, err := Unpack(c, entry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageUnpacked, err)
	}
	if edit != nil {
		if err := edit(set); err != nil {
			return nil, err
		}
	}
	validated, err := record.Validate(set, entry.Codec.Fields())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageValidated, err)
	}
	packed, err := Pack(validated, entry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StagePacked, err)
	}
	out, err := Insert(im, packed, entry, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageInserted, err)
	}
	return out, nil
}
