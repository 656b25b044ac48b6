// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/romtools/dwkit/pkg/gamedata"
	"github.com/romtools/dwkit/pkg/registry"
)

// Command is an interface of implementations of verbs
// (like "extract", "insert" etc of "dwkit extract"/"dwkit insert").
type Command interface {
	flags.Commander

	// ShortDescription explains what this command does in one line
	ShortDescription() string

	// LongDescription explains what this verb does (without limitation in amount of lines)
	LongDescription() string
}

// LoadRegistry returns the registry from a YAML table, or the built-in
// table when path is empty.
func LoadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return gamedata.DefaultRegistry()
	}
	return registry.Load(path)
}

// ResolveEntry accepts either a configured type name or a numeric type
// id ("1", "0x01").
func ResolveEntry(reg *registry.Registry, typeArg string) (*registry.Entry, error) {
	if id, err := strconv.ParseUint(strings.TrimPrefix(typeArg, "0x"), 16, 8); err == nil && strings.HasPrefix(typeArg, "0x") {
		return reg.Lookup(registry.TypeID(id))
	}
	if id, err := strconv.ParseUint(typeArg, 10, 8); err == nil {
		return reg.Lookup(registry.TypeID(id))
	}
	return reg.LookupName(typeArg)
}
