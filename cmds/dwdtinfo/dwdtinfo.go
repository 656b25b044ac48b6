// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dwdtinfo prints the header of a DWDT container file.
//
// Synopsis:
//     dwdtinfo [-x] CONTAINER
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/romtools/dwkit/pkg/bytes"
	"github.com/romtools/dwkit/pkg/container"
)

var hexdump = flag.BoolP("hexdump", "x", false, "also hex dump the payload")

func main() {
	flag.Parse()

	a := flag.Args()
	if len(a) != 1 {
		log.Fatal("expected exactly one container file")
	}

	raw, err := os.ReadFile(a[0])
	if err != nil {
		log.Fatal(err)
	}
	c, err := container.Parse(raw)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("magic:         %q\n", c.Magic)
	fmt.Printf("version:       %d.%d\n", c.VersionMajor, c.VersionMinor)
	fmt.Printf("type id:       0x%02X\n", c.TypeID)
	fmt.Printf("payload size:  %d\n", c.PayloadSize)
	fmt.Printf("source offset: 0x%X\n", c.SourceOffset)
	fmt.Printf("checksum:      0x%08X (verified)\n", c.Checksum)
	fmt.Printf("created:       %s\n", time.Unix(int64(c.Timestamp), 0).UTC().Format(time.RFC3339))
	fmt.Printf("reserved zero: %v\n", bytes.IsZeroFilled(c.Reserved[:]))

	if *hexdump {
		payload := c.Payload()
		for i := 0; i < len(payload); i += 16 {
			end := i + 16
			if end > len(payload) {
				end = len(payload)
			}
			fmt.Printf("%08x  % x\n", i, payload[i:end])
		}
	}
}
