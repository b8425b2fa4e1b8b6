package jpeghuff

import (
	"errors"
	"fmt"
	"sort"

	"github.com/llehouerou/go-jpeghuff/internal/packagemerge"
	"github.com/llehouerou/go-jpeghuff/internal/tables"
)

// MaxCodeLength is the longest codeword a JPEG Huffman table can hold.
const MaxCodeLength = tables.MaxCodeLength

// Class is a JPEG Huffman table class, as written in the Tc field of DHT.
type Class uint8

// Table classes.
const (
	ClassDC Class = 0
	ClassAC Class = 1
)

func (c Class) valid() bool {
	return c == ClassDC || c == ClassAC
}

// MaxValues returns the number of distinct symbols a table of class c may hold.
// It returns 0 for an unknown class.
func (c Class) MaxValues() int {
	switch c {
	case ClassDC:
		return tables.MaxDCValues
	case ClassAC:
		return tables.MaxACValues
	}
	return 0
}

// String returns "DC" or "AC".
func (c Class) String() string {
	switch c {
	case ClassDC:
		return "DC"
	case ClassAC:
		return "AC"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// WeightedSymbol is a symbol together with its occurrence count.
type WeightedSymbol struct {
	Symbol byte
	Weight uint32
}

// Table is a JPEG Huffman table in BITS/HUFFVAL form.
type Table struct {
	// Bits[l] is the number of codewords of length l. Bits[0] is always 0.
	Bits [MaxCodeLength + 1]uint8

	// Values lists the symbols by increasing code length. Symbols of
	// equal length keep the order they were given in.
	Values []byte
}

// BuildTable computes the optimal table for symbols, allowing at most
// maxValues distinct symbols.
//
// Symbols with a zero weight are skipped. The remaining symbols must be
// distinct; their order decides the order of equal-length values.
// Nothing is solved when the input is empty, has duplicates or exceeds
// maxValues.
func BuildTable(symbols []WeightedSymbol, maxValues int) (*Table, error) {
	var seen [tables.AlphabetSize]bool
	used := make([]WeightedSymbol, 0, len(symbols))
	for _, s := range symbols {
		if s.Weight == 0 {
			continue
		}
		if seen[s.Symbol] {
			return nil, fmt.Errorf("%w: 0x%02x", ErrDuplicateSymbol, s.Symbol)
		}
		seen[s.Symbol] = true
		used = append(used, s)
	}

	if len(used) == 0 {
		return nil, ErrEmptyTable
	}
	if len(used) > maxValues {
		return nil, fmt.Errorf("%w: %d symbols, limit %d", ErrCapacityExceeded, len(used), maxValues)
	}

	// The extra zero weight is the reserved symbol. It takes one of the
	// longest codewords, so no real symbol gets the all-ones pattern.
	weights := make([]uint64, len(used)+1)
	for i, s := range used {
		weights[i] = uint64(s.Weight)
	}

	lengths, err := packagemerge.Solve(weights, MaxCodeLength)
	if err != nil {
		if errors.Is(err, packagemerge.ErrMaxLengthTooSmall) {
			return nil, fmt.Errorf("%w: %v", ErrMaxLengthTooSmall, err)
		}
		return nil, err
	}
	return formatTable(used, lengths[:len(used)])
}

// formatTable converts per-symbol lengths into BITS/HUFFVAL.
func formatTable(symbols []WeightedSymbol, lengths []int) (*Table, error) {
	order := make([]int, len(symbols))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lengths[order[a]] < lengths[order[b]]
	})

	var counts [MaxCodeLength + 1]int
	t := &Table{Values: make([]byte, len(symbols))}
	for i, idx := range order {
		t.Values[i] = symbols[idx].Symbol
		counts[lengths[idx]]++
	}
	for l := 1; l <= MaxCodeLength; l++ {
		if counts[l] > 0xff {
			return nil, fmt.Errorf("%w: %d codes of length %d", ErrInvalidTable, counts[l], l)
		}
		t.Bits[l] = uint8(counts[l])
	}
	return t, nil
}

// NumValues returns the number of symbols in the table.
func (t *Table) NumValues() int {
	return len(t.Values)
}

// CodeLengths returns the code length of every symbol, 0 for symbols
// the table does not hold.
func (t *Table) CodeLengths() [tables.AlphabetSize]uint8 {
	var lengths [tables.AlphabetSize]uint8
	k := 0
	for l := 1; l <= MaxCodeLength; l++ {
		for i := 0; i < int(t.Bits[l]) && k < len(t.Values); i++ {
			lengths[t.Values[k]] = uint8(l)
			k++
		}
	}
	return lengths
}

// Validate checks that t describes a usable JPEG table: BITS matches
// the number of values, values are distinct and the lengths form a
// prefix code that leaves the all-ones codeword free.
func (t *Table) Validate() error {
	if t.Bits[0] != 0 {
		return fmt.Errorf("%w: %d codes of length 0", ErrInvalidTable, t.Bits[0])
	}

	total := 0
	var kraft uint64
	for l := 1; l <= MaxCodeLength; l++ {
		total += int(t.Bits[l])
		kraft += uint64(t.Bits[l]) << uint(MaxCodeLength-l)
	}
	if total != len(t.Values) {
		return fmt.Errorf("%w: BITS counts %d codes, %d values", ErrInvalidTable, total, len(t.Values))
	}
	if total == 0 {
		return fmt.Errorf("%w: no values", ErrInvalidTable)
	}
	if kraft >= 1<<MaxCodeLength {
		return fmt.Errorf("%w: all-ones codeword of length %d is used", ErrInvalidTable, MaxCodeLength)
	}

	var seen [tables.AlphabetSize]bool
	for _, v := range t.Values {
		if seen[v] {
			return fmt.Errorf("%w: duplicate value 0x%02x", ErrInvalidTable, v)
		}
		seen[v] = true
	}
	return nil
}

// Cost returns the number of bits needed to code the symbols counted
// in h with t. It reports false when h holds a symbol t cannot code.
func (t *Table) Cost(h *Histogram) (uint64, bool) {
	lengths := t.CodeLengths()
	var bits uint64
	for i, c := range h.counts {
		if c == 0 {
			continue
		}
		if lengths[i] == 0 {
			return 0, false
		}
		bits += uint64(c) * uint64(lengths[i])
	}
	return bits, true
}
