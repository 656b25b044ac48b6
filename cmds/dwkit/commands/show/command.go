// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"fmt"
	"hash/crc32"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/pkg/rom"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath    string `short:"f" long:"image" description:"optionally checksum each type's current region in this image"`
	RegistryPath string `long:"registry" description:"path to a YAML registry table (default: built-in table)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints the type registry"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
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
	var im *rom.Image
	if cmd.ImagePath != "" {
		if im, err = rom.Load(cmd.ImagePath); err != nil {
			return err
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Type Registry")
	header := table.Row{"ID", "Name", "Offset", "Size", "Records", "Stride", "Codec"}
	if im != nil {
		header = append(header, "Region CRC-32")
	}
	t.AppendHeader(header)
	for _, e := range reg.Entries() {
		row := table.Row{
			e.ID.String(),
			e.Name,
			fmt.Sprintf("0x%X", e.ImageOffset),
			humanize.Bytes(uint64(e.PayloadSize)),
			e.RecordCount,
			e.RecordStride,
			e.Codec.Name(),
		}
		if im != nil {
			payload, err := im.Slice(e.ImageOffset, e.PayloadSize)
			if err != nil {
				row = append(row, err.Error())
			} else {
				row = append(row, fmt.Sprintf("0x%08X", crc32.ChecksumIEEE(payload)))
			}
		}
		t.AppendRow(row)
	}
	t.Render()
	return nil
}
