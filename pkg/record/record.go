// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record models the structured, human-editable form of one
// extracted payload: a list of fixed-stride records with named fields plus
// an opaque remainder for every byte position the codec does not claim.
// The remainder is what makes unpack-then-pack an exact round trip without
// requiring every field to be reverse engineered.
package record

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// Kind is the storage type of a field within a record.
type Kind int

const (
	// Uint8 is a single byte.
	Uint8 Kind = iota
	// Uint16 is a two-byte little-endian word.
	Uint16
)

// Size returns the number of payload bytes the kind occupies.
func (k Kind) Size() int {
	switch k {
	case Uint16:
		return 2
	}
	return 1
}

// Field declares one semantic field of a record: where it lives within
// the record's stride and which values are legal for it. If Enum is
// non-empty it overrides the Min/Max range.
type Field struct {
	Name   string
	Offset int
	Kind   Kind
	Min    uint64
	Max    uint64
	Enum   []uint64
}

// DisplayName renders the field name for humans, e.g. "MaxHP" becomes
// "Max HP".
func (f Field) DisplayName() string {
	return strings.Join(camelcase.Split(f.Name), " ")
}

// Allowed returns true if v is a legal value for the field.
func (f Field) Allowed(v uint64) bool {
	if len(f.Enum) > 0 {
		for _, e := range f.Enum {
			if v == e {
				return true
			}
		}
		return false
	}
	return v >= f.Min && v <= f.Max
}

// RuleString describes the legal values for error messages.
func (f Field) RuleString() string {
	if len(f.Enum) > 0 {
		parts := make([]string, 0, len(f.Enum))
		for _, e := range f.Enum {
			parts = append(parts, fmt.Sprintf("%d", e))
		}
		return "one of {" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("range [%d, %d]", f.Min, f.Max)
}

// Record is one structured element of a payload. Values holds the decoded
// numeric fields, Text holds decoded string fields (used by text-table
// codecs), and Unknown carries the unclaimed byte positions verbatim, in
// record order.
type Record struct {
	Values  map[string]uint64 `json:"values,omitempty"`
	Text    map[string]string `json:"text,omitempty"`
	Unknown []byte            `json:"unknown,omitempty"`
}

// Set is the decoded record list for one registered type.
type Set struct {
	Type    string   `json:"type"`
	Records []Record `json:"records"`
}

// Codec decodes one raw fixed-stride record into a Record and encodes it
// back. Implementations must guarantee Encode(Decode(raw)) == raw for any
// raw they accept.
type Codec interface {
	// Name identifies the codec in registry configuration.
	Name() string

	// Fields returns the declared semantic fields, used for validation.
	Fields() []Field

	// Decode parses one record's raw bytes.
	Decode(raw []byte) (Record, error)

	// Encode serializes a record back into exactly stride bytes.
	Encode(rec Record, stride int) ([]byte, error)
}
