// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insert

import (
	"fmt"
	"os"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/pipeline"
	"github.com/romtools/dwkit/pkg/rom"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath     string `short:"f" long:"image" description:"path to the cartridge image" required:"true"`
	ContainerPath string `short:"c" long:"container" description:"path to the container file" required:"true"`
	Type          string `short:"t" long:"type" description:"registered type name or id" required:"true"`
	OutPath       string `short:"o" long:"out" description:"path for the modified image" required:"true"`
	RegistryPath  string `long:"registry" description:"path to a YAML registry table (default: built-in table)"`
	BackupDir     string `long:"backup-dir" default:"backups" description:"directory for the pre-insertion image backup"`
	BackupCodec   string `long:"backup-codec" default:"gzip" description:"backup compression scheme [gzip, xz, lz4]"`
	NoBackup      bool   `long:"no-backup" description:"skip the pre-insertion backup (not recommended)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "inserts a container's payload into a copy of the image"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "The original image file is never modified; the result is written to --out\n" +
		"only after the provenance, checksum and size gates all pass."
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
	raw, err := os.ReadFile(cmd.ContainerPath)
	if err != nil {
		return err
	}
	c, err := container.Parse(raw)
	if err != nil {
		return err
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

	out, err := pipeline.Insert(im, c, entry, opts)
	if err != nil {
		return err
	}
	return out.Save(cmd.OutPath)
}
