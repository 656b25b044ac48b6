// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	im := FromBytes([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	got, err := im.Slice(2, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, got)

	// The slice is a copy.
	got[0] = 99
	again, err := im.Slice(2, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{2}, again)
}

func TestSliceOutOfBounds(t *testing.T) {
	im := FromBytes(make([]byte, 16))

	for _, tc := range []struct {
		offset, length uint32
	}{
		{16, 1},
		{0, 17},
		{15, 2},
		{0xFFFFFFFF, 0xFFFFFFFF},
	} {
		_, err := im.Slice(tc.offset, tc.length)
		var oob *OutOfBoundsError
		require.ErrorAs(t, err, &oob, "offset 0x%x length 0x%x", tc.offset, tc.length)
	}
}

func TestWriteRegion(t *testing.T) {
	im := FromBytes([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	out, err := im.WriteRegion(2, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 0xAA, 0xBB, 4, 5, 6, 7}, out.Bytes())
	require.Equal(t, im.Len(), out.Len())

	// The original is never mutated.
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, im.Bytes())
}

func TestWriteRegionOutOfBounds(t *testing.T) {
	im := FromBytes(make([]byte, 8))

	_, err := im.WriteRegion(7, []byte{1, 2})
	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.nes")
	im := FromBytes([]byte{9, 8, 7})
	require.NoError(t, im.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, im.Equal(loaded))
}
