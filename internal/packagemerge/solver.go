// Package packagemerge computes optimal length-limited prefix code lengths.
//
// The construction is the package-merge (coin collector) method: one
// generation of weight-ordered chains per bit length, each generation
// merging the sorted symbols with adjacent pairs of the previous one.
// The resulting lengths minimise the total weighted length among all
// assignments that satisfy the Kraft inequality and the length limit.
package packagemerge

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
)

var (
	// ErrNoSymbols indicates Solve was called with an empty weight list.
	ErrNoSymbols = errors.New("packagemerge: no symbols")

	// ErrMaxLengthTooSmall indicates 2^maxLength codewords cannot hold every symbol.
	ErrMaxLengthTooSmall = errors.New("packagemerge: max length too small for symbol count")
)

// Solve returns one code length per weight, in input order.
//
// Equal weights keep their input order when sorted, and a symbol is
// preferred over a package of the same weight, so the result is
// reproducible bit for bit. A single symbol gets length 1.
func Solve(weights []uint64, maxLength int) ([]int, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrNoSymbols
	}
	if maxLength < 1 || (maxLength < bits.UintSize-1 && n > 1<<uint(maxLength)) {
		return nil, fmt.Errorf("%w: %d symbols, max length %d", ErrMaxLengthTooSmall, n, maxLength)
	}

	lengths := make([]int, n)
	if n == 1 {
		lengths[0] = 1
		return lengths, nil
	}

	order := sortByWeight(weights)

	// Two arenas are enough: each generation only reads the previous one.
	cur := newGeneration(2*n, maxLength*n)
	next := newGeneration(2*n, maxLength*n)
	for level := 0; level < maxLength; level++ {
		next.reset()
		next.merge(cur, order, weights)
		cur, next = next, cur
	}

	// The n-1 cheapest packages of the last generation are its first
	// 2n-2 chains taken pairwise. Every appearance of a symbol in them
	// adds one bit to its code.
	for _, sym := range cur.items[:cur.start[2*n-2]] {
		lengths[sym]++
	}
	return lengths, nil
}

// sortByWeight returns input indices ordered by ascending weight.
// Ties keep input order.
func sortByWeight(weights []uint64) []int32 {
	order := make([]int32, len(weights))
	for i := range order {
		order[i] = int32(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] < weights[order[b]]
	})
	return order
}

// generation is the weight-ordered chain list of one level, stored as
// an arena. Chain i holds the symbol indices items[start[i]:start[i+1]]
// and weighs weight[i]. Chains are only ever appended.
type generation struct {
	weight []uint64
	start  []int32
	items  []int32
}

func newGeneration(chains, items int) *generation {
	g := &generation{
		weight: make([]uint64, 0, chains),
		start:  make([]int32, 1, chains+1),
		items:  make([]int32, 0, items),
	}
	return g
}

func (g *generation) reset() {
	g.weight = g.weight[:0]
	g.start = g.start[:1]
	g.items = g.items[:0]
}

func (g *generation) len() int {
	return len(g.weight)
}

func (g *generation) appendSymbol(sym int32, w uint64) {
	g.items = append(g.items, sym)
	g.weight = append(g.weight, w)
	g.start = append(g.start, int32(len(g.items)))
}

// appendPackage appends the package of chains i and i+1 of src. A symbol
// present in both keeps both copies.
func (g *generation) appendPackage(src *generation, i int) {
	g.items = append(g.items, src.items[src.start[i]:src.start[i+2]]...)
	g.weight = append(g.weight, src.weight[i]+src.weight[i+1])
	g.start = append(g.start, int32(len(g.items)))
}

// merge fills g with the sorted symbols merged with the packages of
// prev, smallest weight first. On equal weight the symbol goes first.
// An odd trailing chain of prev has no partner and is dropped.
func (g *generation) merge(prev *generation, order []int32, weights []uint64) {
	pairs := prev.len() &^ 1
	i, j := 0, 0
	for i < len(order) || j < pairs {
		if i < len(order) && (j >= pairs || weights[order[i]] <= prev.weight[j]+prev.weight[j+1]) {
			g.appendSymbol(order[i], weights[order[i]])
			i++
			continue
		}
		g.appendPackage(prev, j)
		j += 2
	}
}

// Kraft returns sum(2^(maxLength-l)) over lengths. A prefix code with
// these lengths exists iff the result is at most 1<<maxLength. Lengths
// outside 1..maxLength make the sum exceed that bound.
func Kraft(lengths []int, maxLength int) uint64 {
	var sum uint64
	for _, l := range lengths {
		if l < 1 || l > maxLength {
			return 1<<uint(maxLength) + 1
		}
		sum += 1 << uint(maxLength-l)
	}
	return sum
}
