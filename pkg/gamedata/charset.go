// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamedata

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// GlyphPad is the filler glyph padding a name out to its record stride.
const GlyphPad = 0x5F

var glyphToRune = map[byte]rune{}
var runeToGlyph = map[rune]byte{}

func addGlyph(g byte, r rune) {
	glyphToRune[g] = r
	runeToGlyph[r] = g
}

func init() {
	for i := 0; i < 10; i++ {
		addGlyph(byte(i), rune('0'+i))
	}
	for i := 0; i < 26; i++ {
		addGlyph(byte(0x0A+i), rune('a'+i))
		addGlyph(byte(0x24+i), rune('A'+i))
	}
	addGlyph(0x3E, '\'')
	addGlyph(0x3F, '-')
	addGlyph(0x40, ' ')
	addGlyph(0x41, '.')
	addGlyph(0x42, ',')
	addGlyph(0x43, '?')
	addGlyph(0x44, '!')
}

// UnknownGlyphError means a name region holds a byte outside the glyph
// table.
type UnknownGlyphError struct {
	Glyph byte
}

func (err *UnknownGlyphError) Error() string {
	return fmt.Sprintf("no text mapping for glyph 0x%02X", err.Glyph)
}

// UnknownRuneError means edited text uses a character the glyph table
// cannot express.
type UnknownRuneError struct {
	Rune rune
}

func (err *UnknownRuneError) Error() string {
	return fmt.Sprintf("character %q cannot be encoded as a glyph", err.Rune)
}

// GlyphDecoder is a transform.Transformer converting glyph bytes into
// UTF-8 text.
type GlyphDecoder struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (GlyphDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, g := range src {
		r, ok := glyphToRune[g]
		if !ok {
			return nDst, nSrc, &UnknownGlyphError{Glyph: g}
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

// GlyphEncoder is a transform.Transformer converting UTF-8 text into
// glyph bytes.
type GlyphEncoder struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (GlyphEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, &UnknownRuneError{Rune: r}
		}
		g, ok := runeToGlyph[r]
		if !ok {
			return nDst, nSrc, &UnknownRuneError{Rune: r}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = g
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// DecodeGlyphs converts a glyph sequence into text.
func DecodeGlyphs(b []byte) (string, error) {
	out, _, err := transform.Bytes(GlyphDecoder{}, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeGlyphs converts text into a glyph sequence.
func EncodeGlyphs(s string) ([]byte, error) {
	out, _, err := transform.Bytes(GlyphEncoder{}, []byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}
