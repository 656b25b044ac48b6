// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/pkg/pipeline"
	"github.com/romtools/dwkit/pkg/record"
	"github.com/romtools/dwkit/pkg/registry"
	"github.com/romtools/dwkit/pkg/rom"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath    string   `short:"f" long:"image" description:"path to the cartridge image" required:"true"`
	Type         string   `short:"t" long:"type" description:"registered type name or id" required:"true"`
	OutPath      string   `short:"o" long:"out" description:"path for the modified image" required:"true"`
	RegistryPath string   `long:"registry" description:"path to a YAML registry table (default: built-in table)"`
	Set          []string `long:"set" description:"edit one field before repacking, formatted INDEX.FIELD=VALUE (repeatable)"`
	BackupDir    string   `long:"backup-dir" default:"backups" description:"directory for the pre-insertion image backup"`
	BackupCodec  string   `long:"backup-codec" default:"gzip" description:"backup compression scheme [gzip, xz, lz4]"`
	NoBackup     bool     `long:"no-backup" description:"skip the pre-insertion backup (not recommended)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "runs the whole pipeline for one type: extract, unpack, edit, validate, pack, insert"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "An example:\n" +
		"    dwkit run -f game.nes -t monsters --set 1.Strength=9 -o game-edited.nes"
}

type edit struct {
	recordIndex int
	field       string
	value       uint64
}

func parseEdit(s string) (edit, error) {
	target, valueStr, found := strings.Cut(s, "=")
	if !found {
		return edit{}, fmt.Errorf("edit '%s' is missing '='", s)
	}
	indexStr, field, found := strings.Cut(target, ".")
	if !found {
		return edit{}, fmt.Errorf("edit '%s' is missing the record index", s)
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return edit{}, fmt.Errorf("unable to parse record index '%s': %w", indexStr, err)
	}
	value, err := strconv.ParseUint(valueStr, 0, 64)
	if err != nil {
		return edit{}, fmt.Errorf("unable to parse value '%s': %w", valueStr, err)
	}
	return edit{recordIndex: index, field: field, value: value}, nil
}

func applyEdits(entry *registry.Entry, edits []edit) func(*record.Set) error {
	return func(set *record.Set) error {
		declared := map[string]bool{}
		for _, f := range entry.Codec.Fields() {
			declared[f.Name] = true
		}
		for _, e := range edits {
			if e.recordIndex < 0 || e.recordIndex >= len(set.Records) {
				return fmt.Errorf("record index %d out of range, type %q has %d records",
					e.recordIndex, entry.Name, len(set.Records))
			}
			if !declared[e.field] {
				return fmt.Errorf("type %q has no declared field %q", entry.Name, e.field)
			}
			set.Records[e.recordIndex].Values[e.field] = e.value
		}
		return nil
	}
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	reg, err := commands.LoadRegistry(cmd.RegistryPath)
	if err != nil {
		return err
	}
	entry, err := commands.ResolveEntry(reg, cmd.Type)
	if err != nil {
		return err
	}
	edits := make([]edit, 0, len(cmd.Set))
	for _, s := range cmd.Set {
		e, err := parseEdit(s)
		if err != nil {
			return commands.ErrArgs{Err: err}
		}
		edits = append(edits, e)
	}
	im, err := rom.Load(cmd.ImagePath)
	if err != nil {
		return err
	}

	opts := pipeline.InsertOptions{}
	if !cmd.NoBackup {
		comp := rom.CompressorByName(cmd.BackupCodec)
		if comp == nil {
			return commands.ErrArgs{Err: fmt.Errorf("unknown backup codec '%s'", cmd.BackupCodec)}
		}
		opts.BackupDir = cmd.BackupDir
		opts.Compressor = comp
	}

	out, err := pipeline.Run(im, reg, entry.ID, applyEdits(entry, edits), opts)
	if err != nil {
		return err
	}
	return out.Save(cmd.OutPath)
}
