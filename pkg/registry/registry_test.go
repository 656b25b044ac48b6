// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/romtools/dwkit/pkg/record"
)

func init() {
	RegisterCodec(record.NewLayoutCodec("testbytes",
		record.Field{Name: "Value", Offset: 0, Kind: record.Uint8, Max: 255},
	))
}

func testConfig() *Config {
	return &Config{
		Types: []TypeConfig{
			{ID: 0x01, Name: "monsters", Offset: 0x5E5B, PayloadSize: 256, RecordCount: 16, RecordStride: 16, Codec: "testbytes"},
			{ID: 0x02, Name: "items", Offset: 0x19A1, PayloadSize: 32, RecordCount: 16, RecordStride: 2, Codec: "testbytes"},
		},
	}
}

func TestNewAndLookup(t *testing.T) {
	r, err := New(testConfig())
	require.NoError(t, err)

	e, err := r.Lookup(0x01)
	require.NoError(t, err)
	require.Equal(t, "monsters", e.Name)
	require.Equal(t, uint32(0x5E5B), e.ImageOffset)

	byName, err := r.LookupName("items")
	require.NoError(t, err)
	require.Equal(t, TypeID(0x02), byName.ID)

	entries := r.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "items", entries[0].Name, "entries are ordered by image offset")
}

func TestLookupUnknownType(t *testing.T) {
	r, err := New(testConfig())
	require.NoError(t, err)

	_, err = r.Lookup(0x7F)
	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)

	_, err = r.LookupName("dungeons")
	require.ErrorAs(t, err, &unknown)
}

// Two entries overlapping by even one byte must poison the whole
// registry before any extraction is attempted.
func TestConfigOverlap(t *testing.T) {
	cfg := testConfig()
	// [0x5E5B, 0x5F5B) and [0x5F5A, 0x5F7A) share exactly one byte.
	cfg.Types = append(cfg.Types, TypeConfig{
		ID: 0x03, Name: "spells", Offset: 0x5F5A, PayloadSize: 32, RecordCount: 16, RecordStride: 2, Codec: "testbytes",
	})

	r, err := New(cfg)
	require.Nil(t, r)
	var overlap *ConfigOverlapError
	require.ErrorAs(t, err, &overlap)
}

func TestGeometryValidation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*TypeConfig)
	}{
		{"zero_payload", func(c *TypeConfig) { c.PayloadSize = 0 }},
		{"zero_stride", func(c *TypeConfig) { c.RecordStride = 0 }},
		{"not_multiple_of_stride", func(c *TypeConfig) { c.PayloadSize = 255 }},
		{"count_disagrees", func(c *TypeConfig) { c.RecordCount = 15 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg.Types[0])

			r, err := New(cfg)
			require.Nil(t, r)
			var stride *StrideError
			require.ErrorAs(t, err, &stride)
		})
	}
}

func TestUnknownCodec(t *testing.T) {
	cfg := testConfig()
	cfg.Types[0].Codec = "no-such-codec"

	r, err := New(cfg)
	require.Nil(t, r)
	var unknown *UnknownCodecError
	require.ErrorAs(t, err, &unknown)
}

func TestDuplicateEntries(t *testing.T) {
	cfg := testConfig()
	cfg.Types[1].ID = 0x01
	cfg.Types[1].Name = "monsters"

	r, err := New(cfg)
	require.Nil(t, r)
	var dupID *DuplicateIDError
	require.ErrorAs(t, err, &dupID)
	var dupName *DuplicateNameError
	require.ErrorAs(t, err, &dupName)
}

func TestLoadYAMLConfig(t *testing.T) {
	yaml := `types:
  - id: 0x01
    name: monsters
    offset: 0x5E5B
    payload_size: 256
    record_count: 16
    record_stride: 16
    codec: testbytes
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0666))

	r, err := Load(path)
	require.NoError(t, err)

	e, err := r.LookupName("monsters")
	require.NoError(t, err)
	require.Equal(t, TypeID(0x01), e.ID)
	require.Equal(t, uint32(0x5E5B), e.ImageOffset)
	require.Equal(t, uint32(256), e.PayloadSize)
}
