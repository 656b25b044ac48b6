// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
)

// LayoutCodec is the Codec for the common case: a record whose semantic
// fields sit at fixed byte offsets, with everything else opaque. Decoding
// collects the unclaimed byte positions into Record.Unknown in order;
// encoding lays them back down in the same order around the field values.
type LayoutCodec struct {
	name   string
	fields []Field
}

// NewLayoutCodec builds a LayoutCodec. It panics if two fields claim the
// same byte position, since that is a programming error in the field
// table, not a runtime condition.
func NewLayoutCodec(name string, fields ...Field) *LayoutCodec {
	claimed := map[int]string{}
	for _, f := range fields {
		for i := 0; i < f.Kind.Size(); i++ {
			pos := f.Offset + i
			if prev, ok := claimed[pos]; ok {
				panic(fmt.Sprintf("layout %q: fields %q and %q both claim byte %d",
					name, prev, f.Name, pos))
			}
			claimed[pos] = f.Name
		}
	}
	return &LayoutCodec{name: name, fields: fields}
}

// Name implements Codec.
func (l *LayoutCodec) Name() string {
	return l.name
}

// Fields implements Codec.
func (l *LayoutCodec) Fields() []Field {
	return l.fields
}

func (l *LayoutCodec) claimedPositions() map[int]bool {
	claimed := map[int]bool{}
	for _, f := range l.fields {
		for i := 0; i < f.Kind.Size(); i++ {
			claimed[f.Offset+i] = true
		}
	}
	return claimed
}

// Decode implements Codec.
func (l *LayoutCodec) Decode(raw []byte) (Record, error) {
	rec := Record{Values: map[string]uint64{}}
	for _, f := range l.fields {
		end := f.Offset + f.Kind.Size()
		if end > len(raw) {
			return Record{}, fmt.Errorf("layout %q: field %q needs bytes [%d, %d), record is only %d bytes",
				l.name, f.Name, f.Offset, end, len(raw))
		}
		switch f.Kind {
		case Uint16:
			rec.Values[f.Name] = uint64(raw[f.Offset]) | uint64(raw[f.Offset+1])<<8
		default:
			rec.Values[f.Name] = uint64(raw[f.Offset])
		}
	}
	claimed := l.claimedPositions()
	for i, b := range raw {
		if !claimed[i] {
			rec.Unknown = append(rec.Unknown, b)
		}
	}
	return rec, nil
}

// Encode implements Codec.
func (l *LayoutCodec) Encode(rec Record, stride int) ([]byte, error) {
	claimed := l.claimedPositions()
	wantUnknown := stride - len(claimed)
	if len(rec.Unknown) != wantUnknown {
		return nil, fmt.Errorf("layout %q: record carries %d unknown bytes, stride %d leaves room for %d",
			l.name, len(rec.Unknown), stride, wantUnknown)
	}
	buf := make([]byte, stride)
	next := 0
	for i := range buf {
		if !claimed[i] {
			buf[i] = rec.Unknown[next]
			next++
		}
	}
	for _, f := range l.fields {
		v, ok := rec.Values[f.Name]
		if !ok {
			return nil, fmt.Errorf("layout %q: record is missing field %q", l.name, f.Name)
		}
		switch f.Kind {
		case Uint16:
			if v > 0xFFFF {
				return nil, fmt.Errorf("layout %q: field %q value %d does not fit in 16 bits", l.name, f.Name, v)
			}
			buf[f.Offset] = byte(v)
			buf[f.Offset+1] = byte(v >> 8)
		default:
			if v > 0xFF {
				return nil, fmt.Errorf("layout %q: field %q value %d does not fit in 8 bits", l.name, f.Name, v)
			}
			buf[f.Offset] = byte(v)
		}
	}
	return buf, nil
}
