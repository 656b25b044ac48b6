// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unpack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/pkg/container"
	"github.com/romtools/dwkit/pkg/pipeline"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ContainerPath string `short:"c" long:"container" description:"path to the container file" required:"true"`
	Type          string `short:"t" long:"type" description:"registered type name or id" required:"true"`
	OutPath       string `short:"o" long:"out" description:"path for the structured records (JSON)" required:"true"`
	RegistryPath  string `long:"registry" description:"path to a YAML registry table (default: built-in table)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "unpacks a container into editable structured records"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Unknown byte positions are carried as an opaque remainder per record;\n" +
		"edit only the named fields and leave the remainder alone."
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
	set, err := pipeline.Unpack(c, entry)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(set, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(cmd.OutPath, append(out, '\n'), 0666)
}
