// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dwkit edits packed game data inside a fixed-layout cartridge image by
// round-tripping it through the DWDT container format.
//
// Synopsis:
//     dwkit extract -f IMAGE -t TYPE -o CONTAINER
//     dwkit unpack -c CONTAINER -t TYPE -o RECORDS.json
//     dwkit pack -r RECORDS.json -t TYPE -o CONTAINER
//     dwkit insert -f IMAGE -c CONTAINER -t TYPE -o NEW_IMAGE
//     dwkit run -f IMAGE -t TYPE [--set INDEX.FIELD=VALUE]... -o NEW_IMAGE
//     dwkit show [-f IMAGE]
//
// An example:
//     dwkit extract -f game.nes -t monsters -o monsters.dwdt
//     dwkit unpack -c monsters.dwdt -t monsters -o monsters.json
//     $EDITOR monsters.json
//     dwkit pack -r monsters.json -t monsters -o monsters-edited.dwdt
//     dwkit insert -f game.nes -c monsters-edited.dwdt -t monsters -o game-edited.nes
//
// Description:
//     extract: Slice a type's payload out of the image and wrap it in a
//              checksummed DWDT container.
//     unpack:  Decode a container into named-field records (JSON) with an
//              opaque remainder per record.
//     pack:    Validate edited records and pack them into a new container.
//     insert:  Write a container's payload back into a copy of the image,
//              after a backup and with every integrity gate enforced.
//     run:     The four stages above in one invocation.
//     show:    Print the type registry.
package main

import (
	"log"

	"github.com/jessevdk/go-flags"

	"github.com/romtools/dwkit/cmds/dwkit/commands"
	"github.com/romtools/dwkit/cmds/dwkit/commands/extract"
	"github.com/romtools/dwkit/cmds/dwkit/commands/insert"
	"github.com/romtools/dwkit/cmds/dwkit/commands/pack"
	"github.com/romtools/dwkit/cmds/dwkit/commands/run"
	"github.com/romtools/dwkit/cmds/dwkit/commands/show"
	"github.com/romtools/dwkit/cmds/dwkit/commands/unpack"
)

var (
	knownCommands = map[string]commands.Command{
		"extract": &extract.Command{},
		"unpack":  &unpack.Command{},
		"pack":    &pack.Command{},
		"insert":  &insert.Command{},
		"run":     &run.Command{},
		"show":    &show.Command{},
	}
)

func main() {
	flagsParser := flags.NewParser(nil, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}

	// parse arguments and execute the appropriate command
	if _, err := flagsParser.Parse(); err != nil {
		log.Fatal(err)
	}
}
