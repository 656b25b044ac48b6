// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the external registry table. Offsets and sizes live here, in
// configuration, never in code.
//
// Example:
//
//	types:
//	  - id: 0x01
//	    name: monsters
//	    offset: 0x5E5B
//	    payload_size: 256
//	    record_count: 16
//	    record_stride: 16
//	    codec: monsters
type Config struct {
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig is one registry entry as configured.
type TypeConfig struct {
	ID           uint8  `yaml:"id"`
	Name         string `yaml:"name"`
	Offset       uint32 `yaml:"offset"`
	PayloadSize  uint32 `yaml:"payload_size"`
	RecordCount  int    `yaml:"record_count"`
	RecordStride int    `yaml:"record_stride"`
	Codec        string `yaml:"codec"`
}

// ParseConfig reads a YAML registry table.
func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse registry config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads a YAML registry table from a file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read registry config '%s': %w", path, err)
	}
	return ParseConfig(b)
}

// Load is LoadConfig followed by New.
func Load(path string) (*Registry, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}
