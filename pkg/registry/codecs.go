// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"sort"

	"github.com/romtools/dwkit/pkg/record"
)

// Codecs are compiled in and bound to registry entries by name, so the
// configuration carries offsets and sizes but never code. A codec package
// registers itself from an init function.
var codecRegistry = map[string]record.Codec{}

// RegisterCodec makes a codec available for registry configuration to
// reference. It panics on duplicate names since that is a build-time
// mistake.
func RegisterCodec(c record.Codec) {
	if _, ok := codecRegistry[c.Name()]; ok {
		panic(fmt.Sprintf("two codecs registered the same name: %q", c.Name()))
	}
	codecRegistry[c.Name()] = c
}

func codecByName(name string) (record.Codec, bool) {
	c, ok := codecRegistry[name]
	return c, ok
}

// CodecNames returns the names of all registered codecs, sorted.
func CodecNames() []string {
	names := make([]string, 0, len(codecRegistry))
	for n := range codecRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
