package jpeghuff

import (
	"fmt"
	"sync"
)

// Component selects the luminance or chrominance tables of a YCbCr frame.
type Component uint8

// Color components. Cb and Cr share the chrominance tables.
const (
	Luminance   Component = 0
	Chrominance Component = 1
)

const (
	numClasses    = 2
	numComponents = 2
)

func (c Component) valid() bool {
	return c == Luminance || c == Chrominance
}

// String returns "luminance" or "chrominance".
func (c Component) String() string {
	switch c {
	case Luminance:
		return "luminance"
	case Chrominance:
		return "chrominance"
	}
	return fmt.Sprintf("Component(%d)", uint8(c))
}

// Collector gathers the symbol counts of one frame and builds its four
// tables once counting is done.
//
// A frame goes through three phases: Observe every symbol, Build the
// tables, then emit codewords with them. Build closes the collector so
// that counts cannot change under tables already built; Reset reopens
// it for the next frame.
//
// The zero value is ready for use.
type Collector struct {
	hist   [numClasses][numComponents]Histogram
	closed bool
}

// Observe counts one occurrence of sym in the histogram of class and component.
func (c *Collector) Observe(class Class, comp Component, sym byte) error {
	if c.closed {
		return ErrCollectorClosed
	}
	if !class.valid() {
		return ErrInvalidClass
	}
	if !comp.valid() {
		return ErrInvalidComponent
	}
	c.hist[class][comp].Add(sym)
	return nil
}

// Histogram returns the counts gathered for class and component, or nil
// if either is unknown. The histogram must not be modified.
func (c *Collector) Histogram(class Class, comp Component) *Histogram {
	if !class.valid() || !comp.valid() {
		return nil
	}
	return &c.hist[class][comp]
}

// Closed reports whether Build has been called since the last Reset.
func (c *Collector) Closed() bool {
	return c.closed
}

// Reset clears every histogram and reopens the collector.
func (c *Collector) Reset() {
	for class := range c.hist {
		for comp := range c.hist[class] {
			c.hist[class][comp].Reset()
		}
	}
	c.closed = false
}

// Build closes the collector and builds a table for every histogram that
// received at least one symbol. The tables are solved concurrently.
//
// If any table fails, Build returns the error of the first failing table
// in class then component order and no TableSet.
func (c *Collector) Build() (*TableSet, error) {
	c.closed = true

	var (
		set  TableSet
		errs [numClasses][numComponents]error
		wg   sync.WaitGroup
	)
	for class := range c.hist {
		for comp := range c.hist[class] {
			h := &c.hist[class][comp]
			if h.NumSymbols() == 0 {
				continue
			}
			wg.Add(1)
			go func(class Class, comp Component) {
				defer wg.Done()
				set.tables[class][comp], errs[class][comp] = h.Table(class)
			}(Class(class), Component(comp))
		}
	}
	wg.Wait()

	for class := range errs {
		for comp, err := range errs[class] {
			if err != nil {
				return nil, fmt.Errorf("%s %s table: %w", Class(class), Component(comp), err)
			}
		}
	}
	return &set, nil
}

// TableSet holds the tables built for one frame.
type TableSet struct {
	tables [numClasses][numComponents]*Table
}

// Table returns the table for class and component, or nil if the frame
// had no such symbols.
func (s *TableSet) Table(class Class, comp Component) *Table {
	if !class.valid() || !comp.valid() {
		return nil
	}
	return s.tables[class][comp]
}

// Cost returns the number of bits the counts in c take when coded with s.
// It reports false when a counted symbol has no code in s.
func (s *TableSet) Cost(c *Collector) (uint64, bool) {
	var total uint64
	for class := range c.hist {
		for comp := range c.hist[class] {
			h := &c.hist[class][comp]
			if h.NumSymbols() == 0 {
				continue
			}
			t := s.tables[class][comp]
			if t == nil {
				return 0, false
			}
			bits, ok := t.Cost(h)
			if !ok {
				return 0, false
			}
			total += bits
		}
	}
	return total, true
}
