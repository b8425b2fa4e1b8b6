// Package jpeghuff builds optimal JPEG Huffman tables from symbol counts.
//
// A JPEG encoder that wants frame-specific Huffman tables first counts
// every DC and AC symbol it would emit, then derives code lengths from
// those counts, and only then writes codewords. This package covers the
// middle step: it turns symbol counts into the BITS and HUFFVAL lists
// that a DHT segment carries and a canonical code builder consumes.
//
// Code lengths come from the package-merge algorithm, which is optimal
// for the 16-bit length limit of JPEG. A zero-weight reserved symbol is
// added before solving so that the all-ones codeword of the longest
// length stays unused, as JPEG requires.
//
// # Basic Usage
//
// Count symbols, then build the table:
//
//	var h jpeghuff.Histogram
//	for _, sym := range acSymbols {
//	    h.Add(sym)
//	}
//
//	table, err := h.Table(jpeghuff.ClassAC)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// table.Bits[1..16] and table.Values are ready for the DHT segment.
//
// For a whole frame, a Collector keeps the four histograms of a
// YCbCr image and builds their tables concurrently:
//
//	var c jpeghuff.Collector
//	c.Observe(jpeghuff.ClassDC, jpeghuff.Luminance, dcSymbol)
//	// ...
//	set, err := c.Build()
//
// # Errors
//
// A table class caps the number of distinct symbols (12 for DC, 256
// for AC). Exceeding it yields ErrCapacityExceeded before any solving
// work starts; no partial table is returned.
//
// # Thread Safety
//
// BuildTable and Histogram.Table are pure functions and safe to call
// from several goroutines. Histogram and Collector values are NOT safe
// for concurrent mutation.
package jpeghuff
