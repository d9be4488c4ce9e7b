/*
lfsr is a command-line front end to the lfsr package, primarily as a demonstration of usage
but supposed to be functional in itself.
*/
package main

import (
	"fmt"
	"log"
	"math/big"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/pma/lfsr"
	"github.com/urfave/cli/v2"
)

const (
	DEFAULT_SIZE = 16
)

// every command file registers itself here from init()
var commands []*cli.Command

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lfsr"
	app.Usage = "Inspect taps and step Galois linear feedback shift registers"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "profile",
			Usage: "enable HTTP profiling",
		},
		&cli.IntFlag{
			Name:  "profilePort",
			Value: 6060,
			Usage: "The port to serve profiling information on",
		},
	}
	app.Commands = commands

	app.Before = func(c *cli.Context) error {
		if c.Bool("profile") {
			port := fmt.Sprint(c.Int("profilePort"))

			go func() {
				log.Println(http.ListenAndServe("localhost:"+port, nil))
			}()
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags shared by the commands that build a register
var registerFlags = []cli.Flag{
	&cli.UintFlag{
		Name:    "size",
		Aliases: []string{"s"},
		Value:   DEFAULT_SIZE,
		Usage:   "register size in bits, using the default taps for that size",
	},
	&cli.StringFlag{
		Name:    "taps",
		Aliases: []string{"t"},
		Usage:   "comma separated taps, the first being the register size (overrides -size)",
	},
}

func registerFromFlags(c *cli.Context, state *big.Int) (lfsr.Register, error) {
	if c.IsSet("taps") {
		taps, err := parseTaps(strings.Split(c.String("taps"), ","))

		if err != nil {
			return lfsr.Register{}, err
		}

		return lfsr.NewBigWithTaps(state, taps)
	}

	return lfsr.NewBig(state, c.Uint("size"))
}

func parseTaps(args []string) ([]uint, error) {
	taps := make([]uint, 0, len(args))

	for _, a := range args {
		v, err := strconv.ParseUint(strings.TrimSpace(a), 10, 0)

		if err != nil {
			return nil, fmt.Errorf("Invalid tap %q: %v", a, err)
		}

		taps = append(taps, uint(v))
	}

	return taps, nil
}

// accepts decimal, or hex/octal/binary with a 0x, 0o or 0b prefix
func parseBig(what, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)

	if !ok {
		return nil, fmt.Errorf("Invalid %v %q", what, s)
	}

	return v, nil
}
