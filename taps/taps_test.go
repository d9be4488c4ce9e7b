package taps

import (
	"errors"
	"math/big"
	"testing"
)

func TestEverySizeInRangeIsSupported(t *testing.T) {
	for size := uint(MinSize); size <= MaxContiguousSize; size++ {
		if !Supported(size) {
			t.Errorf("size %v has no default taps", size)
		}
	}

	for _, size := range []uint{1024, 2048, 4096} {
		if !Supported(size) {
			t.Errorf("size %v has no default taps", size)
		}
	}
}

func TestUnsupportedSizes(t *testing.T) {
	for _, size := range []uint{0, 1, 787, 900, 1023, 1025, 3000, 4097} {
		_, err := Lookup(size)

		var sizeErr *UnsupportedSizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("size %v: expected UnsupportedSizeError, got %v", size, err)
			continue
		}

		if sizeErr.Size != size {
			t.Errorf("error carried size %v, expected %v", sizeErr.Size, size)
		}
	}
}

func TestTableShape(t *testing.T) {
	for _, row := range defaults {
		size := row[0]

		if len(row) != 2 && len(row) != 4 {
			t.Errorf("size %v: expected 2 or 4 taps, got %v", size, row)
		}

		for i := 1; i < len(row); i++ {
			if row[i] == 0 || row[i] >= row[i-1] {
				t.Errorf("size %v: taps are not strictly descending and positive: %v", size, row)
			}
		}
	}
}

func TestTableIsOrderedAndUnique(t *testing.T) {
	if len(defaults) != MaxContiguousSize-MinSize+1+3 {
		t.Fatalf("unexpected table length %v", len(defaults))
	}

	for i := 1; i < len(defaults); i++ {
		if defaults[i][0] <= defaults[i-1][0] {
			t.Errorf("row %v (size %v) is out of order", i, defaults[i][0])
		}
	}
}

func TestKnownEntries(t *testing.T) {
	tests := []struct {
		size uint
		taps []uint
	}{
		{2, []uint{2, 1}},
		{4, []uint{4, 3}},
		{8, []uint{8, 6, 5, 4}},
		{16, []uint{16, 14, 13, 11}},
		{64, []uint{64, 63, 61, 60}},
	}

	for _, tt := range tests {
		got, err := Lookup(tt.size)

		if err != nil {
			t.Fatal(err)
		}

		if len(got) != len(tt.taps) {
			t.Errorf("size %v: got %v, expected %v", tt.size, got, tt.taps)
			continue
		}

		for i := range got {
			if got[i] != tt.taps[i] {
				t.Errorf("size %v: got %v, expected %v", tt.size, got, tt.taps)
				break
			}
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := Lookup(16)
	a[1] = 1

	b, _ := Lookup(16)

	if b[1] != 14 {
		t.Errorf("table was modified through a lookup: %v", b)
	}
}

func TestSizes(t *testing.T) {
	sizes := Sizes()

	if len(sizes) != len(defaults) {
		t.Fatalf("got %v sizes, expected %v", len(sizes), len(defaults))
	}

	if sizes[0] != MinSize || sizes[len(sizes)-1] != MaxSize {
		t.Errorf("unexpected bounds %v..%v", sizes[0], sizes[len(sizes)-1])
	}

	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Fatalf("sizes are not ascending at %v", i)
		}
	}
}

func TestCeil(t *testing.T) {
	tests := []struct {
		size     uint
		expected uint
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{100, 100},
		{786, 786},
		{787, 1024},
		{1024, 1024},
		{1025, 2048},
		{4000, 4096},
		{4096, 4096},
	}

	for _, tt := range tests {
		got, err := Ceil(tt.size)

		if err != nil {
			t.Errorf("Ceil(%v): %v", tt.size, err)
		} else if got != tt.expected {
			t.Errorf("Ceil(%v) = %v, expected %v", tt.size, got, tt.expected)
		}
	}

	_, err := Ceil(4097)

	var sizeErr *UnsupportedSizeError
	if !errors.As(err, &sizeErr) {
		t.Errorf("Ceil(4097): expected UnsupportedSizeError, got %v", err)
	}
}

func TestForPeriod(t *testing.T) {
	tests := []struct {
		count    int64
		expected uint
	}{
		{1, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
		{65535, 16},
		{65536, 17},
	}

	for _, tt := range tests {
		got, err := ForPeriod(big.NewInt(tt.count))

		if err != nil {
			t.Errorf("ForPeriod(%v): %v", tt.count, err)
		} else if got != tt.expected {
			t.Errorf("ForPeriod(%v) = %v, expected %v", tt.count, got, tt.expected)
		}
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 800)
	if got, err := ForPeriod(huge); err != nil || got != 1024 {
		t.Errorf("ForPeriod(2^800) = %v, %v", got, err)
	}
}

func TestForPeriodRejectsNonPositive(t *testing.T) {
	for _, count := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
		if _, err := ForPeriod(count); err == nil {
			t.Errorf("ForPeriod(%v) should fail", count)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Lookup(uint(i%(MaxContiguousSize-MinSize+1)) + MinSize)
	}
}
