package main

import (
	"fmt"

	"github.com/pma/lfsr"
	"github.com/urfave/cli/v2"
)

// the period command walks the whole cycle, so keep it to sizes that finish quickly
const maxPeriodWalkSize = 32

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:      "next",
			Aliases:   []string{"n"},
			Usage:     "lfsr next [-size <size> | -taps <taps>] [-count <n>] <state>",
			ArgsUsage: "<state>",
			Description: `Step a register from <state> and print each state it moves to.
<state> may be decimal or use a 0x, 0o or 0b prefix.`,
			Action: Next,
			Flags: append(
				[]cli.Flag{
					&cli.Uint64Flag{
						Name:    "count",
						Aliases: []string{"c"},
						Value:   1,
						Usage:   "The number of steps to take",
					},
					&cli.BoolFlag{
						Name:  "hex",
						Usage: "print states in hexadecimal",
					},
				},
				registerFlags...,
			),
		},
		&cli.Command{
			Name:      "period",
			Usage:     "lfsr period [-size <size> | -taps <taps>] <state>",
			ArgsUsage: "<state>",
			Description: fmt.Sprintf(
				`Step a register until it returns to <state> and report the number of steps.
Used to check that a set of taps gives a maximum-length sequence. Limited to sizes up to %v.`,
				maxPeriodWalkSize,
			),
			Action: Period,
			Flags:  registerFlags,
		},
	)
}

func registerFromArgs(c *cli.Context, name string) (lfsr.Register, error) {
	if c.Args().Len() != 1 {
		return lfsr.Register{}, fmt.Errorf(
			"Usage is \"lfsr %v [options] <state>\" (invalid number of arguments)",
			name,
		)
	}

	state, err := parseBig("state", c.Args().First())

	if err != nil {
		return lfsr.Register{}, err
	}

	return registerFromFlags(c, state)
}

// Next prints the next states of a register
func Next(c *cli.Context) error {
	r, err := registerFromArgs(c, "next")

	if err != nil {
		return err
	}

	format := "%v\n"
	if c.Bool("hex") {
		format = "%#x\n"
	}

	for i := uint64(0); i < c.Uint64("count"); i++ {
		r = r.Next()
		fmt.Fprintf(c.App.Writer, format, r.State())
	}

	return nil
}

// Period walks a register through its cycle
func Period(c *cli.Context) error {
	r, err := registerFromArgs(c, "period")

	if err != nil {
		return err
	}

	if r.Size() > maxPeriodWalkSize {
		return fmt.Errorf(
			"Register size %v is too large to walk, the limit is %v",
			r.Size(),
			maxPeriodWalkSize,
		)
	}

	steps := walkPeriod(r)
	expected := r.Period().Uint64()

	if steps == expected {
		fmt.Fprintf(c.App.Writer, "period %v (maximal)\n", steps)
	} else {
		fmt.Fprintf(c.App.Writer, "period %v (maximal would be %v)\n", steps, expected)
	}

	return nil
}

// the first tap is always the size, so every step is invertible and the
// register must come back to where it started
func walkPeriod(r lfsr.Register) uint64 {
	start := r.Uint64()
	steps := uint64(0)

	for {
		r = r.Next()
		steps++

		if r.Uint64() == start {
			return steps
		}
	}
}
