package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pma/lfsr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out

	err := app.Run(append([]string{"lfsr"}, args...))
	return out.String(), err
}

func TestTapsCommand(t *testing.T) {
	out, err := run(t, "taps", "16")

	if err != nil {
		t.Fatal(err)
	}

	if out != "size 16: taps [16 14 13 11] mask 0xb400\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestTapsCommandUnsupportedSize(t *testing.T) {
	_, err := run(t, "taps", "900")

	var sizeErr *lfsr.UnsupportedSizeError
	if !errors.As(err, &sizeErr) {
		t.Errorf("expected UnsupportedSizeError, got %v", err)
	}
}

func TestMaskCommand(t *testing.T) {
	out, err := run(t, "mask", "16", "14", "13", "11")

	if err != nil {
		t.Fatal(err)
	}

	if out != "0xb400\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMaskCommandRejectsBadTap(t *testing.T) {
	if _, err := run(t, "mask", "16", "x"); err == nil {
		t.Error("expected an error for a non numeric tap")
	}
}

func TestNextCommand(t *testing.T) {
	out, err := run(t, "next", "-size", "16", "-count", "2", "1")

	if err != nil {
		t.Fatal(err)
	}

	if out != "46080\n23040\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNextCommandWithTapsAndHex(t *testing.T) {
	out, err := run(t, "next", "-taps", "16,14,13,11", "-hex", "0x1")

	if err != nil {
		t.Fatal(err)
	}

	if out != "0xb400\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNextCommandInvalidState(t *testing.T) {
	_, err := run(t, "next", "-size", "8", "256")

	var stateErr *lfsr.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("expected InvalidStateError, got %v", err)
	}
}

func TestPeriodCommand(t *testing.T) {
	out, err := run(t, "period", "-size", "10", "5")

	if err != nil {
		t.Fatal(err)
	}

	if out != "period 1023 (maximal)\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPeriodCommandNonMaximalTaps(t *testing.T) {
	// x^4+x^2+1 is not primitive
	out, err := run(t, "period", "-taps", "4,2", "1")

	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(out, "(maximal would be 15)\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPeriodCommandRefusesLargeRegisters(t *testing.T) {
	if _, err := run(t, "period", "-size", "64", "1"); err == nil {
		t.Error("expected an error for a 64 bit register")
	}
}

func TestFitCommand(t *testing.T) {
	out, err := run(t, "fit", "65536")

	if err != nil {
		t.Fatal(err)
	}

	if out != "size 17 taps [17 14]\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFitCommandRejectsZero(t *testing.T) {
	if _, err := run(t, "fit", "0"); err == nil {
		t.Error("expected an error for a count of 0")
	}
}

func TestParseTaps(t *testing.T) {
	taps, err := parseTaps([]string{"8", " 6", "5 ", "4"})

	if err != nil {
		t.Fatal(err)
	}

	if len(taps) != 4 || taps[0] != 8 || taps[3] != 4 {
		t.Errorf("unexpected taps %v", taps)
	}
}
