// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamedata ships the closed set of record codecs for the packed
// tables this toolchain understands, plus the default registry table
// binding them to their image locations. The pipeline core stays
// codec-agnostic; everything game specific lives here.
package gamedata

import (
	"github.com/romtools/dwkit/pkg/record"
	"github.com/romtools/dwkit/pkg/registry"
)

// Monsters decodes the monster stat table: sixteen bytes per monster,
// with the tail bytes still unmapped and carried opaquely.
var Monsters = record.NewLayoutCodec("monsters",
	record.Field{Name: "Strength", Offset: 0, Kind: record.Uint8, Max: 255},
	record.Field{Name: "Agility", Offset: 1, Kind: record.Uint8, Max: 255},
	record.Field{Name: "MaxHP", Offset: 2, Kind: record.Uint8, Max: 255},
	record.Field{Name: "SpellPattern", Offset: 3, Kind: record.Uint8, Max: 255},
	record.Field{Name: "SleepResist", Offset: 4, Kind: record.Uint8, Max: 15},
	record.Field{Name: "StopspellResist", Offset: 5, Kind: record.Uint8, Max: 15},
	record.Field{Name: "HurtResist", Offset: 6, Kind: record.Uint8, Max: 15},
	record.Field{Name: "DodgeChance", Offset: 7, Kind: record.Uint8, Max: 15},
	record.Field{Name: "Experience", Offset: 8, Kind: record.Uint16, Max: 65535},
	record.Field{Name: "Gold", Offset: 10, Kind: record.Uint8, Max: 255},
)

// Spells decodes the spell table: one byte of MP cost per spell, second
// byte not yet mapped.
var Spells = record.NewLayoutCodec("spells",
	record.Field{Name: "MPCost", Offset: 0, Kind: record.Uint8, Max: 99},
)

// Items decodes the item price table: one little-endian word per item.
var Items = record.NewLayoutCodec("items",
	record.Field{Name: "Cost", Offset: 0, Kind: record.Uint16, Max: 60000},
)

func init() {
	registry.RegisterCodec(Monsters)
	registry.RegisterCodec(Spells)
	registry.RegisterCodec(Items)
	registry.RegisterCodec(Names)
}

// DefaultConfig is the built-in registry table for the supported image.
// An external YAML table with the same shape overrides it.
func DefaultConfig() *registry.Config {
	return &registry.Config{
		Types: []registry.TypeConfig{
			{ID: 0x01, Name: "monsters", Offset: 0x5E5B, PayloadSize: 256, RecordCount: 16, RecordStride: 16, Codec: "monsters"},
			{ID: 0x02, Name: "spells", Offset: 0x1D63, PayloadSize: 20, RecordCount: 10, RecordStride: 2, Codec: "spells"},
			{ID: 0x03, Name: "items", Offset: 0x19A1, PayloadSize: 32, RecordCount: 16, RecordStride: 2, Codec: "items"},
			{ID: 0x04, Name: "monster-names", Offset: 0x3F36, PayloadSize: 128, RecordCount: 16, RecordStride: 8, Codec: "names"},
		},
	}
}

// DefaultRegistry builds and validates the built-in registry table.
func DefaultRegistry() (*registry.Registry, error) {
	return registry.New(DefaultConfig())
}
