/*
Package taps holds default feedback taps for Galois linear feedback shift
registers.

Every entry lists the tap positions of a register size that is known to give
a maximum-length sequence (period 2^size-1). Taps are numbered from 1 at the
least significant bit, in descending order, and the first tap is always the
size itself. There are entries for every size from 2 to 786, and for 1024,
2048 and 4096.

The table is fixed data compiled into the package. It is never modified, and
every lookup returns a copy so callers cannot change it either.

Lookups and ordered queries over the supported sizes (Ceil, Sizes) are
answered from a left-leaning red-black tree built once from the table.
*/
package taps

import (
	"fmt"
	"math/big"

	"github.com/petar/GoLLRB/llrb"
)

const (
	// MinSize is the smallest register size with default taps
	MinSize = 2
	// MaxContiguousSize is the largest size for which every smaller size
	// (down to MinSize) also has default taps
	MaxContiguousSize = 786
	// MaxSize is the largest register size with default taps
	MaxSize = 4096
)

// UnsupportedSizeError is returned when the table has no entry for a size.
// Callers can fall back to explicit taps when they see it.
type UnsupportedSizeError struct {
	Size uint
}

func (e *UnsupportedSizeError) Error() string {
	return fmt.Sprintf("taps: no default taps for a register of size %v", e.Size)
}

// entry is a table row as stored in the index. Rows are ordered by size.
type entry []uint

func (e entry) Less(than llrb.Item) bool {
	return e[0] < than.(entry)[0]
}

func key(size uint) entry {
	return entry{size}
}

var index = buildIndex(defaults)

func buildIndex(rows [][]uint) *llrb.LLRB {
	tree := llrb.New()

	for _, row := range rows {
		tree.ReplaceOrInsert(entry(row))
	}

	return tree
}

// Lookup returns the default taps for a register size
func Lookup(size uint) ([]uint, error) {
	found := index.Get(key(size))

	if found == nil {
		return nil, &UnsupportedSizeError{Size: size}
	}

	return append([]uint(nil), found.(entry)...), nil
}

// Supported reports whether there are default taps for size
func Supported(size uint) bool {
	return index.Has(key(size))
}

// Sizes returns every supported size in ascending order
func Sizes() []uint {
	result := make([]uint, 0, index.Len())

	index.AscendGreaterOrEqual(
		index.Min(),
		func(i llrb.Item) bool {
			result = append(result, i.(entry)[0])
			return true
		},
	)

	return result
}

// Ceil finds the smallest supported size that is at least size
func Ceil(size uint) (uint, error) {
	var (
		found uint
		ok    bool
	)

	index.AscendGreaterOrEqual(
		key(size),
		func(i llrb.Item) bool {
			found, ok = i.(entry)[0], true
			return false
		},
	)

	if !ok {
		return 0, &UnsupportedSizeError{Size: size}
	}

	return found, nil
}

/*
ForPeriod finds the smallest supported size whose period (2^size-1) is at
least count, which is the register needed to hand out count distinct values.
count must be positive.
*/
func ForPeriod(count *big.Int) (uint, error) {
	if count == nil || count.Sign() <= 0 {
		return 0, fmt.Errorf("taps: period must be positive, got %v", count)
	}

	// 2^n-1 >= count <=> 2^n > count
	return Ceil(uint(count.BitLen()))
}
