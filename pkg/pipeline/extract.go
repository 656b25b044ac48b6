// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/registry"
	"github.com/romtools/dwkit/pkg/rom"
)

// Extract reads the registered payload for id out of the image and wraps
// it in a fresh container. The image is only read, never touched.
func Extract(im *rom.Image, reg *registry.Registry, id registry.TypeID) (*container.Container, error) {
	entry, err := reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	return ExtractEntry(im, entry)
}

// ExtractEntry is Extract for an already-resolved registry entry.
func ExtractEntry(im *rom.Image, entry *registry.Entry) (*container.Container, error) {
	payload, err := im.Slice(entry.ImageOffset, entry.PayloadSize)
	if err != nil {
		return nil, err
	}
	return container.Build(uint8(entry.ID), entry.ImageOffset, payload)
}
