// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry holds the static table mapping each data type to its
// image location and structural codec. The table is built once from
// configuration, validated, and never mutated afterwards, so it is safe
// to share across any number of concurrent pipeline stages.
package registry

import (
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/romtools/dwkit/pkg/bytes"
	"github.com/romtools/dwkit/pkg/record"
)

// TypeID identifies one registered data type. It is the value carried in
// the container header's type field.
type TypeID uint8

func (id TypeID) String() string {
	return "0x" + hexByte(uint8(id))
}

func hexByte(b uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}

// Entry is the static association for one data type: where its payload
// lives in the image, how it is carved into records, and which codec
// understands those records.
type Entry struct {
	ID           TypeID
	Name         string
	ImageOffset  uint32
	PayloadSize  uint32
	RecordCount  int
	RecordStride int
	Codec        record.Codec
}

// Range returns the byte range the entry claims within the image.
func (e *Entry) Range() bytes.Range {
	return bytes.Range{Offset: uint64(e.ImageOffset), Length: uint64(e.PayloadSize)}
}

// Registry is the validated, read-only type table.
type Registry struct {
	byID   map[TypeID]*Entry
	byName map[string]*Entry
}

// New builds a Registry from cfg, rejecting the whole configuration if
// any entry is inconsistent or if two entries claim intersecting image
// ranges. Every problem found is reported, not just the first.
func New(cfg *Config) (*Registry, error) {
	var result *multierror.Error

	r := &Registry{
		byID:   map[TypeID]*Entry{},
		byName: map[string]*Entry{},
	}
	var entries []*Entry
	for i := range cfg.Types {
		tc := &cfg.Types[i]
		e := &Entry{
			ID:           TypeID(tc.ID),
			Name:         tc.Name,
			ImageOffset:  tc.Offset,
			PayloadSize:  tc.PayloadSize,
			RecordCount:  tc.RecordCount,
			RecordStride: tc.RecordStride,
		}
		if codec, ok := codecByName(tc.Codec); ok {
			e.Codec = codec
		} else {
			result = multierror.Append(result, &UnknownCodecError{Entry: e.Name, Codec: tc.Codec})
		}
		if err := checkGeometry(e); err != nil {
			result = multierror.Append(result, err)
		}
		if _, ok := r.byID[e.ID]; ok {
			result = multierror.Append(result, &DuplicateIDError{ID: e.ID})
		}
		if _, ok := r.byName[e.Name]; ok {
			result = multierror.Append(result, &DuplicateNameError{Name: e.Name})
		}
		r.byID[e.ID] = e
		r.byName[e.Name] = e
		entries = append(entries, e)
	}

	// Cross-type collision makes every later offset computation unsafe,
	// so it poisons the whole registry.
	ranges := make(bytes.Ranges, len(entries))
	for i, e := range entries {
		ranges[i] = e.Range()
	}
	if i, j := ranges.FirstOverlap(); i >= 0 {
		result = multierror.Append(result, &ConfigOverlapError{A: entries[i], B: entries[j]})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

func checkGeometry(e *Entry) error {
	if e.PayloadSize == 0 {
		return &StrideError{Entry: e.Name, Reason: "payload size is zero"}
	}
	if e.RecordStride <= 0 {
		return &StrideError{Entry: e.Name, Reason: "record stride must be positive"}
	}
	if int(e.PayloadSize)%e.RecordStride != 0 {
		return &StrideError{Entry: e.Name, Reason: "payload size is not a multiple of the record stride"}
	}
	if e.RecordCount*e.RecordStride != int(e.PayloadSize) {
		return &StrideError{Entry: e.Name, Reason: "record count times stride does not equal the payload size"}
	}
	return nil
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id TypeID) (*Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, &UnknownTypeError{ID: id}
	}
	return e, nil
}

// LookupName returns the entry with the given configured name.
func (r *Registry) LookupName(name string) (*Entry, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return e, nil
}

// Entries returns all entries ordered by image offset.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ImageOffset < entries[j].ImageOffset
	})
	return entries
}
