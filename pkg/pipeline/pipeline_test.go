// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/gamedata"
	"github.com/romtools/dwkit/pkg/record"
	"github.com/romtools/dwkit/pkg/registry"
	"github.com/romtools/dwkit/pkg/rom"
)

const (
	monsterOffset = 0x5E5B
	monsterStride = 16
	imageSize     = 0x8000
)

// testImage builds an image whose registered regions all hold values
// that pass validation. The monster region gets a recognizable stat
// block per record; everything else is filled with 0x05, which is legal
// for every remaining codec (including the glyph table, where it reads
// as the digit '5').
func testImage(t *testing.T) *rom.Image {
	t.Helper()
	buf := make([]byte, imageSize)
	for i := range buf {
		buf[i] = 0x05
	}
	for rec := 0; rec < 16; rec++ {
		base := monsterOffset + rec*monsterStride
		copy(buf[base:], []byte{
			0x07, 0x0F, 0x03, 0x00, // strength, agility, max hp, spell pattern
			byte(rec % 16), 0x01, 0x02, 0x03, // resistances and dodge
			0x34, 0x12, 0x64, // experience (LE), gold
			0xA0, byte(rec), 0xB0, 0xC0, 0xD0, // unmapped tail
		})
	}
	return rom.FromBytes(buf)
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := gamedata.DefaultRegistry()
	require.NoError(t, err)
	return reg
}

// The concrete end-to-end scenario: edit one monster's strength from 7
// to 9 and verify the new image differs in exactly that byte.
func TestEditSingleFieldScenario(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)
	entry, err := reg.LookupName("monsters")
	require.NoError(t, err)

	orig, err := Extract(im, reg, entry.ID)
	require.NoError(t, err)

	set, err := Unpack(orig, entry)
	require.NoError(t, err)
	require.Len(t, set.Records, 16)
	require.Equal(t, uint64(7), set.Records[1].Values["Strength"])

	set.Records[1].Values["Strength"] = 9

	validated, err := record.Validate(set, entry.Codec.Fields())
	require.NoError(t, err)

	packed, err := Pack(validated, entry)
	require.NoError(t, err)
	require.NotEqual(t, orig.Checksum, packed.Checksum)

	out, err := Insert(im, packed, entry, InsertOptions{})
	require.NoError(t, err)
	require.Equal(t, im.Len(), out.Len())

	expected := im.Bytes()
	require.Equal(t, byte(0x07), expected[monsterOffset+monsterStride])
	expected[monsterOffset+monsterStride] = 0x09
	require.Equal(t, expected, out.Bytes())
}

// Unpack followed by pack with no edits must reproduce the payload
// byte for byte, for every registered type.
func TestRoundTripIdentity(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)

	for _, entry := range reg.Entries() {
		t.Run(entry.Name, func(t *testing.T) {
			orig, err := ExtractEntry(im, entry)
			require.NoError(t, err)

			set, err := Unpack(orig, entry)
			require.NoError(t, err)

			validated, err := record.Validate(set, entry.Codec.Fields())
			require.NoError(t, err)

			packed, err := Pack(validated, entry)
			require.NoError(t, err)
			require.Equal(t, orig.Payload(), packed.Payload())
		})
	}
}

func TestUnpackTypeMismatch(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)
	monsters, err := reg.LookupName("monsters")
	require.NoError(t, err)
	items, err := reg.LookupName("items")
	require.NoError(t, err)

	c, err := ExtractEntry(im, items)
	require.NoError(t, err)

	_, err = Unpack(c, monsters)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestUnpackSizeMismatch(t *testing.T) {
	reg := testRegistry(t)
	monsters, err := reg.LookupName("monsters")
	require.NoError(t, err)

	c, err := container.Build(uint8(monsters.ID), monsters.ImageOffset, make([]byte, 128))
	require.NoError(t, err)

	_, err = Unpack(c, monsters)
	var mismatch *SizeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

// A container whose declared source offset belongs to a different
// type's region must never be inserted, even though its type id and
// payload size agree with the entry.
func TestInsertProvenanceEnforcement(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)
	monsters, err := reg.LookupName("monsters")
	require.NoError(t, err)
	items, err := reg.LookupName("items")
	require.NoError(t, err)

	c, err := container.Build(uint8(monsters.ID), items.ImageOffset, make([]byte, monsters.PayloadSize))
	require.NoError(t, err)

	_, err = Insert(im, c, monsters, InsertOptions{})
	var mismatch *ProvenanceMismatchError
	require.ErrorAs(t, err, &mismatch)
}

// A payload of the wrong length is rejected before any bytes are
// written.
func TestInsertSizeMismatch(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)
	monsters, err := reg.LookupName("monsters")
	require.NoError(t, err)

	c, err := container.Build(uint8(monsters.ID), monsters.ImageOffset, make([]byte, 128))
	require.NoError(t, err)

	_, err = Insert(im, c, monsters, InsertOptions{})
	var mismatch *SizeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestExtractOutOfBounds(t *testing.T) {
	reg := testRegistry(t)
	short := rom.FromBytes(make([]byte, 0x1000))

	_, err := Extract(short, reg, 0x01)
	var oob *rom.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
}

func TestExtractUnknownType(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)

	_, err := Extract(im, reg, 0x7F)
	var unknown *registry.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
}

// Extractions for distinct types read disjoint ranges of the same
// immutable image and share the registry read-only, so they can run in
// parallel without synchronization.
func TestParallelExtract(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)

	var wg sync.WaitGroup
	errs := make(chan error, len(reg.Entries())*8)
	for _, entry := range reg.Entries() {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(e *registry.Entry) {
				defer wg.Done()
				c, err := ExtractEntry(im, e)
				if err != nil {
					errs <- err
					return
				}
				if _, err := Unpack(c, e); err != nil {
					errs <- err
				}
			}(entry)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestRunWithBackup(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)
	dir := t.TempDir()

	out, err := Run(im, reg, 0x01, func(set *record.Set) error {
		set.Records[1].Values["Strength"] = 9
		return nil
	}, InsertOptions{BackupDir: dir, Compressor: &rom.XZ{}})
	require.NoError(t, err)

	expected := im.Bytes()
	expected[monsterOffset+monsterStride] = 0x09
	require.Equal(t, expected, out.Bytes())

	backups, err := filepath.Glob(filepath.Join(dir, "monsters-*.bak.xz"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	restored, err := rom.RestoreBackup(backups[0], &rom.XZ{})
	require.NoError(t, err)
	require.True(t, im.Equal(restored), "backup must hold the pre-mutation image")
}

// A validation failure is terminal: the run halts and no image is
// produced.
func TestRunHaltsOnValidationFailure(t *testing.T) {
	im := testImage(t)
	reg := testRegistry(t)

	out, err := Run(im, reg, 0x01, func(set *record.Set) error {
		set.Records[0].Values["SleepResist"] = 16 // declared max is 15
		return nil
	}, InsertOptions{})
	require.Nil(t, out)
	var verr *record.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "SleepResist", verr.Field.Name)
}
