// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"
	"os"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/pkg/pipeline"
	"github.com/romtools/dwkit/pkg/rom"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath    string `short:"f" long:"image" description:"path to the cartridge image" required:"true"`
	Type         string `short:"t" long:"type" description:"registered type name or id" required:"true"`
	OutPath      string `short:"o" long:"out" description:"path for the container file" required:"true"`
	RegistryPath string `long:"registry" description:"path to a YAML registry table (default: built-in table)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "extracts a type's payload from the image into a container"
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
	entry, err := commands.ResolveEntry(reg, cmd.Type)
	if err != nil {
		return err
	}
	im, err := rom.Load(cmd.ImagePath)
	if err != nil {
		return err
	}
	c, err := pipeline.ExtractEntry(im, entry)
	if err != nil {
		return err
	}
	serialized, err := c.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(cmd.OutPath, serialized, 0666)
}
