// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamedata

import (
	"fmt"

	"github.com/romtools/dwkit/pkg/record"
)

// Names decodes the monster name table: fixed-stride glyph strings,
// padded with GlyphPad. Text semantics live entirely in this codec; the
// pipeline core never interprets glyphs.
var Names record.Codec = nameCodec{}

type nameCodec struct{}

// Name implements record.Codec.
func (nameCodec) Name() string {
	return "names"
}

// Fields implements record.Codec. Names carry no numeric rules.
func (nameCodec) Fields() []record.Field {
	return nil
}

// Decode implements record.Codec. Everything from the first pad glyph
// onward is kept as the opaque remainder so an unedited name region
// round-trips exactly even when the padding area holds garbage.
func (nameCodec) Decode(raw []byte) (record.Record, error) {
	cut := len(raw)
	for i, g := range raw {
		if g == GlyphPad {
			cut = i
			break
		}
	}
	text, err := DecodeGlyphs(raw[:cut])
	if err != nil {
		return record.Record{}, err
	}
	rec := record.Record{Text: map[string]string{"Name": text}}
	if cut < len(raw) {
		rec.Unknown = append([]byte(nil), raw[cut:]...)
	}
	return rec, nil
}

// Encode implements record.Codec. An unedited record re-emits its
// remainder verbatim; an edited name whose length changed is re-padded
// with GlyphPad instead.
func (nameCodec) Encode(rec record.Record, stride int) ([]byte, error) {
	name, ok := rec.Text["Name"]
	if !ok {
		return nil, fmt.Errorf("names: record is missing the \"Name\" text field")
	}
	glyphs, err := EncodeGlyphs(name)
	if err != nil {
		return nil, err
	}
	if len(glyphs) > stride {
		return nil, fmt.Errorf("names: %q needs %d glyphs, the record stride is %d", name, len(glyphs), stride)
	}
	buf := make([]byte, 0, stride)
	buf = append(buf, glyphs...)
	if len(glyphs)+len(rec.Unknown) == stride {
		buf = append(buf, rec.Unknown...)
	} else {
		for len(buf) < stride {
			buf = append(buf, GlyphPad)
		}
	}
	return buf, nil
}
