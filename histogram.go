package jpeghuff

import "github.com/llehouerou/go-jpeghuff/internal/tables"

// Histogram counts how often each byte symbol occurs in one frame.
// The zero value is an empty histogram ready for use.
type Histogram struct {
	counts [tables.AlphabetSize]uint32
}

// Add counts one occurrence of sym.
func (h *Histogram) Add(sym byte) {
	h.counts[sym]++
}

// AddN counts n occurrences of sym.
func (h *Histogram) AddN(sym byte, n uint32) {
	h.counts[sym] += n
}

// Count returns the number of occurrences of sym.
func (h *Histogram) Count(sym byte) uint32 {
	return h.counts[sym]
}

// NumSymbols returns the number of distinct symbols with a non-zero count.
func (h *Histogram) NumSymbols() int {
	n := 0
	for _, c := range h.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Reset clears all counts.
func (h *Histogram) Reset() {
	h.counts = [tables.AlphabetSize]uint32{}
}

// Merge adds the counts of other to h.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.counts {
		h.counts[i] += c
	}
}

// Symbols returns the symbols with a non-zero count in ascending symbol order.
func (h *Histogram) Symbols() []WeightedSymbol {
	syms := make([]WeightedSymbol, 0, h.NumSymbols())
	for i, c := range h.counts {
		if c != 0 {
			syms = append(syms, WeightedSymbol{Symbol: byte(i), Weight: c})
		}
	}
	return syms
}

// Table builds the optimal table of the given class for the counted symbols.
func (h *Histogram) Table(class Class) (*Table, error) {
	if !class.valid() {
		return nil, ErrInvalidClass
	}
	return BuildTable(h.Symbols(), class.MaxValues())
}
