package main

import (
	"fmt"

	"github.com/pma/lfsr/taps"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:      "fit",
			Usage:     "lfsr fit <count>",
			ArgsUsage: "<count>",
			Description: `Find the smallest register size with default taps that can produce <count> distinct values,
for example to cover an ID space.`,
			Action: Fit,
		},
	)
}

// Fit prints the smallest supported register size for a number of values
func Fit(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("Usage is \"lfsr fit <count>\" (invalid number of arguments)")
	}

	count, err := parseBig("count", c.Args().First())

	if err != nil {
		return err
	}

	size, err := taps.ForPeriod(count)

	if err != nil {
		return err
	}

	t, _ := taps.Lookup(size)
	fmt.Fprintf(c.App.Writer, "size %v taps %v\n", size, t)
	return nil
}
