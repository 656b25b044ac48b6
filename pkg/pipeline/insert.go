// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"

	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/log"
	"github.com/romtools/dwkit/pkg/registry"
	"github.com/romtools/dwkit/pkg/rom"
)

// InsertOptions controls the insertion side effects.
type InsertOptions struct {
	// BackupDir is where the pre-mutation image backup is written. An
	// empty value disables the backup; only tests should do that.
	BackupDir string

	// Compressor selects the backup compression scheme. Nil means gzip.
	Compressor rom.Compressor
}

// Insert writes the container's payload into a copy of the image at the
// entry's registered offset. Every step is a hard gate; if any fails the
// original image is left completely untouched.
func Insert(im *rom.Image, c *container.Container, entry *registry.Entry, opts InsertOptions) (*rom.Image, error) {
	if registry.TypeID(c.TypeID) != entry.ID {
		return nil, &TypeMismatchError{Got: registry.TypeID(c.TypeID), Want: entry.ID}
	}
	if c.SourceOffset != entry.ImageOffset {
		return nil, &ProvenanceMismatchError{ContainerOffset: c.SourceOffset, EntryOffset: entry.ImageOffset}
	}
	if c.PayloadSize != entry.PayloadSize {
		return nil, &SizeMismatchError{Got: c.PayloadSize, Want: entry.PayloadSize}
	}

	// Round-trip the container through the codec even if it was built
	// in-process this run: insertion never trusts a container it did not
	// just verify.
	serialized, err := c.Serialize()
	if err != nil {
		return nil, err
	}
	verified, err := container.Parse(serialized)
	if err != nil {
		return nil, fmt.Errorf("container failed re-verification: %w", err)
	}

	if opts.BackupDir != "" {
		comp := opts.Compressor
		if comp == nil {
			comp = &rom.GZIP{}
		}
		path, err := im.Backup(opts.BackupDir, entry.Name, comp)
		if err != nil {
			return nil, fmt.Errorf("unable to take backup before insertion: %w", err)
		}
		log.Infof("backup written to %s", path)
	} else {
		log.Warnf("inserting %q without a backup", entry.Name)
	}

	out, err := im.WriteRegion(entry.ImageOffset, verified.Payload())
	if err != nil {
		return nil, err
	}
	if out.Len() != im.Len() {
		return nil, &SizeInvariantError{Was: im.Len(), Now: out.Len()}
	}
	return out, nil
}
