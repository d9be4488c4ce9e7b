/*
Package lfsr implements a binary Galois linear feedback shift register.

With the right feedback taps an n-bit register steps through every nonzero
n-bit value exactly once before it repeats, giving a sequence of length
2^n-1. That makes it useful for handing out counters that look shuffled
(obfuscated sequential IDs, for instance) without remembering which values
have already been used.

The register is not a secure random number generator. Once the state and the
taps are known every following value is known too.

A Register is a value: Next returns a new Register and leaves the receiver
alone, so a Register can be copied and read from several goroutines. Callers
that want one shared, advancing counter have to serialize access to it
themselves.

	r, err := lfsr.New(1, 16)
	if err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		r = r.Next()
		fmt.Println(r.Uint64())
	}

Default taps for a register size come from the taps package. Sizes it has no
entry for can still be used by supplying the taps explicitly with
NewWithTaps.
*/
package lfsr

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/pma/lfsr/taps"
)

var one = big.NewInt(1)

// ErrInvalidTaps is returned when an explicit tap list cannot describe a
// register: it is empty, it contains 0, or its first tap is not the largest.
var ErrInvalidTaps = errors.New("lfsr: invalid taps")

// UnsupportedSizeError is returned when there are no default taps for the
// requested register size.
type UnsupportedSizeError = taps.UnsupportedSizeError

// InvalidStateError is returned when the initial state is outside [1, Limit-1].
type InvalidStateError struct {
	State *big.Int
	// 2^size
	Limit *big.Int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf(
		"lfsr: initial state %v is out of range, must be in [1, %v]",
		e.State,
		e.Max(),
	)
}

// Min is the smallest valid state
func (e *InvalidStateError) Min() *big.Int {
	return big.NewInt(1)
}

// Max is the largest valid state
func (e *InvalidStateError) Max() *big.Int {
	return new(big.Int).Sub(e.Limit, one)
}

// Register is a Galois LFSR.
// The zero value is not usable, create one with New, NewWithTaps, NewBig or NewBigWithTaps.
type Register struct {
	size  uint
	taps  []uint
	mask  *big.Int
	state *big.Int
}

// New creates a register of the given size starting at state, using the
// default taps for that size.
func New(state uint64, size uint) (Register, error) {
	return NewBig(new(big.Int).SetUint64(state), size)
}

// NewWithTaps creates a register starting at state with explicit taps.
// The first tap is the size of the register.
func NewWithTaps(state uint64, taps []uint) (Register, error) {
	return NewBigWithTaps(new(big.Int).SetUint64(state), taps)
}

// NewBig is New for registers whose state does not fit into a uint64
func NewBig(state *big.Int, size uint) (Register, error) {
	t, err := taps.Lookup(size)

	if err != nil {
		return Register{}, err
	}

	return NewBigWithTaps(state, t)
}

// NewBigWithTaps is NewWithTaps for registers whose state does not fit into a uint64
func NewBigWithTaps(state *big.Int, taps []uint) (Register, error) {
	size, err := checkTaps(taps)

	if err != nil {
		return Register{}, err
	}

	if state == nil {
		state = new(big.Int)
	}

	limit := new(big.Int).Lsh(one, size)

	if state.Sign() <= 0 || state.Cmp(limit) >= 0 {
		return Register{}, &InvalidStateError{
			State: new(big.Int).Set(state),
			Limit: limit,
		}
	}

	return Register{
		size:  size,
		taps:  append([]uint(nil), taps...),
		mask:  DeriveMask(size, taps),
		state: new(big.Int).Set(state),
	}, nil
}

func checkTaps(taps []uint) (uint, error) {
	if len(taps) == 0 {
		return 0, fmt.Errorf("%w: no taps given", ErrInvalidTaps)
	}

	size := taps[0]

	for _, t := range taps {
		switch {
		case t == 0:
			return 0, fmt.Errorf("%w: taps are numbered from 1, got %v", ErrInvalidTaps, taps)
		case t > size:
			return 0, fmt.Errorf(
				"%w: tap %v is beyond the register size %v",
				ErrInvalidTaps,
				t,
				size,
			)
		}
	}

	return size, nil
}

/*
DeriveMask builds the feedback mask for a register of the given size.

Taps are numbered from 1, counting up from the least significant bit, so tap
t sets bit t-1. Seen from the most significant end that is bit size-t, which
is how published tap tables usually describe it. For a 16 bit register the
taps 16, 14, 13 and 11 give 0xB400.

Taps outside [1, size] are ignored.
*/
func DeriveMask(size uint, taps []uint) *big.Int {
	mask := new(big.Int)

	for _, t := range taps {
		if t == 0 || t > size {
			continue
		}
		mask.SetBit(mask, int(t-1), 1)
	}

	return mask
}

// Next advances the register by one step and returns the result.
// The receiver is not modified.
func (r Register) Next() Register {
	if r.state == nil {
		return r
	}

	next := new(big.Int).Rsh(r.state, 1)

	// the bit shifted out decides whether feedback is applied
	if r.state.Bit(0) == 1 {
		next.Xor(next, r.mask)
	}

	r.state = next
	return r
}

// Advance applies Next n times
func (r Register) Advance(n uint64) Register {
	for ; n > 0; n-- {
		r = r.Next()
	}
	return r
}

// State returns a copy of the current state.
func (r Register) State() *big.Int {
	if r.state == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.state)
}

// Uint64 returns the current state as a uint64.
// Registers larger than 64 bits only return the low 64 bits of their state.
func (r Register) Uint64() uint64 {
	if r.state == nil {
		return 0
	}

	if r.state.IsUint64() {
		return r.state.Uint64()
	}

	low := new(big.Int).SetUint64(^uint64(0))
	return low.And(low, r.state).Uint64()
}

// Mask returns a copy of the feedback mask
func (r Register) Mask() *big.Int {
	if r.mask == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.mask)
}

// Size of the register in bits
func (r Register) Size() uint {
	return r.size
}

// Taps returns a copy of the taps the mask was built from
func (r Register) Taps() []uint {
	return append([]uint(nil), r.taps...)
}

// Period returns 2^size - 1, the length of the sequence when the taps give a
// maximum-length register (the default taps always do).
func (r Register) Period() *big.Int {
	p := new(big.Int).Lsh(one, r.size)
	return p.Sub(p, one)
}

func (r Register) String() string {
	return fmt.Sprintf("lfsr(size=%v, mask=%#x, state=%v)", r.size, r.Mask(), r.State())
}
