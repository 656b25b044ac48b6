// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBackupRestore(t *testing.T) {
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC) }
	defer func() { timeNow = orig }()

	im := FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	dir := t.TempDir()

	path, err := im.Backup(dir, "monsters", &GZIP{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "monsters-20260825T120000Z.bak.gz"), path)

	restored, err := RestoreBackup(path, &GZIP{})
	require.NoError(t, err)
	require.True(t, im.Equal(restored))
}
