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

// Pack serializes a validated record set back into a payload and wraps
// it in a fresh container destined for the entry's image offset. Taking
// record.Validated rather than a bare set is deliberate: an unvalidated
// set has no way into this function.
func Pack(validated record.Validated, entry *registry.Entry) (*container.Container, error) {
	set := validated.Set()
	if len(set.Records) != entry.RecordCount {
		return nil, &RecordCountError{Got: len(set.Records), Want: entry.RecordCount}
	}
	payload := make([]byte, 0, entry.PayloadSize)
	for i, rec := range set.Records {
		raw, err := entry.Codec.Encode(rec, entry.RecordStride)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if len(raw) != entry.RecordStride {
			// The codec broke its contract; this is a bug, not input.
			panic(fmt.Sprintf("codec %q encoded %d bytes for a stride of %d",
				entry.Codec.Name(), len(raw), entry.RecordStride))
		}
		payload = append(payload, raw...)
	}
	if len(payload) != int(entry.PayloadSize) {
		panic(fmt.Sprintf("entry %q: packed %d bytes, payload size is %d",
			entry.Name, len(payload), entry.PayloadSize))
	}
	return container.Build(uint8(entry.ID), entry.ImageOffset, payload)
}
