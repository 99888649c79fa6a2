// Copyright 2026 The shakerng Authors
// This file is part of shakerng.
//
// shakerng is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shakerng is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with shakerng. If not, see <http://www.gnu.org/licenses/>.

// shakerng generates cryptographically secure random bytes on the command
// line, seeded from the operating system and optionally from caller-supplied
// material (dice rolls, a passphrase, output of another machine).
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	shakerng "github.com/niluxv/fast-erasure-shake-rng"
	"github.com/urfave/cli/v2"
)

var (
	numBytesFlag = &cli.IntFlag{
		Name:    "num-bytes",
		Aliases: []string{"n"},
		Usage:   "number of random bytes to generate",
		Value:   32,
	}
	rawFlag = &cli.BoolFlag{
		Name:  "raw",
		Usage: "write raw bytes to stdout instead of hex",
	}
	mixFlag = &cli.StringFlag{
		Name:  "mix",
		Usage: "extra seed material hashed into the state after the OS entropy",
	}
)

var app = &cli.App{
	Name:   "shakerng",
	Usage:  "generate cryptographically secure random bytes",
	Flags:  []cli.Flag{numBytesFlag, rawFlag, mixFlag},
	Action: generate,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func generate(ctx *cli.Context) error {
	n := ctx.Int(numBytesFlag.Name)
	if n < 0 {
		return fmt.Errorf("invalid --num-bytes %d", n)
	}
	rng, err := shakerng.NewFromEntropy()
	if err != nil {
		return err
	}
	defer rng.Destroy()

	if mix := ctx.String(mixFlag.Name); mix != "" {
		rng.Seed([]byte(mix))
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	buf := rng.RandomBytes(n)
	if ctx.Bool(rawFlag.Name) {
		_, err = out.Write(buf)
		return err
	}
	_, err = fmt.Fprintln(out, hex.EncodeToString(buf))
	return err
}
