// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"

	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/record"
	"github.com/romtools/dwkit/pkg/registry"
)

// Unpack parses a container's payload into the structured record set for
// entry. The container is checked against the entry before any decoding:
// a payload must only ever be interpreted by the codec that owns it.
func Unpack(c *container.Container, entry *registry.Entry) (*record.Set, error) {
	if registry.TypeID(c.TypeID) != entry.ID {
		return nil, &TypeMismatchError{Got: registry.TypeID(c.TypeID), Want: entry.ID}
	}
	if c.PayloadSize != entry.PayloadSize {
		return nil, &SizeMismatchError{Got: c.PayloadSize, Want: entry.PayloadSize}
	}
	payload := c.Payload()
	set := &record.Set{
		Type:    entry.Name,
		Records: make([]record.Record, 0, entry.RecordCount),
	}
	for i := 0; i < entry.RecordCount; i++ {
		raw := payload[i*entry.RecordStride : (i+1)*entry.RecordStride]
		rec, err := entry.Codec.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		set.Records = append(set.Records, rec)
	}
	return set, nil
}
