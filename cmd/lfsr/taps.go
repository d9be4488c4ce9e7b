package main

import (
	"fmt"
	"strconv"

	"github.com/pma/lfsr"
	"github.com/pma/lfsr/taps"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:      "taps",
			Usage:     "lfsr taps <size>",
			ArgsUsage: "<size>",
			Description: `Print the default taps for a register size, and the feedback mask built from them.
Sizes from 2 to 786 are supported, as well as 1024, 2048 and 4096.`,
			Action: Taps,
		},
		&cli.Command{
			Name:        "mask",
			Usage:       "lfsr mask <tap> <tap>...",
			ArgsUsage:   "<tap> <tap>...",
			Description: `Print the feedback mask for explicit taps. The first tap is the register size.`,
			Action:      Mask,
		},
	)
}

// Taps prints the default taps for a size
func Taps(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("Usage is \"lfsr taps <size>\" (invalid number of arguments)")
	}

	size, err := strconv.ParseUint(c.Args().First(), 10, 0)

	if err != nil {
		return fmt.Errorf("Invalid size %q: %v", c.Args().First(), err)
	}

	t, err := taps.Lookup(uint(size))

	if err != nil {
		return err
	}

	fmt.Fprintf(
		c.App.Writer,
		"size %v: taps %v mask %#x\n",
		size,
		t,
		lfsr.DeriveMask(uint(size), t),
	)

	return nil
}

// Mask prints the mask for explicit taps
func Mask(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("Usage is \"lfsr mask <tap> <tap>...\" (no taps given)")
	}

	t, err := parseTaps(c.Args().Slice())

	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%#x\n", lfsr.DeriveMask(t[0], t))
	return nil
}
