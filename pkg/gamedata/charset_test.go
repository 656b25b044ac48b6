// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamedata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlyphRoundTrip(t *testing.T) {
	for _, name := range []string{"Slime", "Red Dragon", "Erdrick's Sword", "Metal-2", "?!"} {
		glyphs, err := EncodeGlyphs(name)
		require.NoError(t, err, name)
		back, err := DecodeGlyphs(glyphs)
		require.NoError(t, err, name)
		require.Equal(t, name, back)
	}
}

func TestEncodeGlyphsUnknownRune(t *testing.T) {
	_, err := EncodeGlyphs("Slime☃")
	var unknown *UnknownRuneError
	require.ErrorAs(t, err, &unknown)
}

func TestDecodeGlyphsUnknownGlyph(t *testing.T) {
	_, err := DecodeGlyphs([]byte{0x00, 0xFE})
	var unknown *UnknownGlyphError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte(0xFE), unknown.Glyph)
}

func TestNamesDecode(t *testing.T) {
	glyphs, err := EncodeGlyphs("Slime")
	require.NoError(t, err)
	raw := append(glyphs, GlyphPad, 0x01, 0x02) // garbage in the padding area

	rec, err := Names.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "Slime", rec.Text["Name"])
	require.Equal(t, []byte{GlyphPad, 0x01, 0x02}, rec.Unknown)
}

// An unedited name region must re-encode byte for byte even when the
// padding area holds garbage.
func TestNamesRoundTrip(t *testing.T) {
	glyphs, err := EncodeGlyphs("Ghost")
	require.NoError(t, err)
	raw := append(glyphs, GlyphPad, 0x42, 0x17)

	rec, err := Names.Decode(raw)
	require.NoError(t, err)
	out, err := Names.Encode(rec, len(raw))
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestNamesEncodeEdited(t *testing.T) {
	glyphs, err := EncodeGlyphs("Ghost")
	require.NoError(t, err)
	raw := append(glyphs, GlyphPad, GlyphPad, GlyphPad)

	rec, err := Names.Decode(raw)
	require.NoError(t, err)
	rec.Text["Name"] = "Wyvern" // different length, remainder is re-padded

	out, err := Names.Encode(rec, len(raw))
	require.NoError(t, err)
	require.Len(t, out, len(raw))

	back, err := Names.Decode(out)
	require.NoError(t, err)
	require.Equal(t, "Wyvern", back.Text["Name"])
}

func TestNamesEncodeTooLong(t *testing.T) {
	rec, err := Names.Decode([]byte{GlyphPad, GlyphPad, GlyphPad, GlyphPad})
	require.NoError(t, err)
	rec.Text["Name"] = "Dragonlord"

	_, err = Names.Encode(rec, 4)
	require.Error(t, err)
}
