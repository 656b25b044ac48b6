// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timeNow is swapped out by tests that need deterministic backup names.
var timeNow = time.Now

// Backup writes a compressed, timestamped copy of the image into dir and
// returns its path. It is taken before any mutation so a crash mid-write
// can never cost the original data.
func (im *Image) Backup(dir, tag string, c Compressor) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	encoded, err := c.Encode(im.buf)
	if err != nil {
		return "", fmt.Errorf("unable to compress backup: %w", err)
	}
	name := fmt.Sprintf("%s-%s.bak.%s", tag, timeNow().UTC().Format("20060102T150405Z"), c.Suffix())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, encoded, 0666); err != nil {
		return "", fmt.Errorf("unable to write backup '%s': %w", path, err)
	}
	return path, nil
}

// RestoreBackup reads a backup written by Backup back into an Image.
func RestoreBackup(path string, c Compressor) (*Image, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read backup '%s': %w", path, err)
	}
	decoded, err := c.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("unable to decompress backup '%s': %w", path, err)
	}
	return &Image{buf: decoded}, nil
}
