package packagemerge

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestSolve_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name      string
		weights   []uint64
		maxLength int
		want      []int
	}{
		{
			// Classic distribution limited to 3 bits.
			name:      "limited to 3 bits",
			weights:   []uint64{1, 2, 5, 10, 21},
			maxLength: 3,
			want:      []int{3, 3, 3, 3, 1},
		},
		{
			// Same distribution plus a zero-weight reserved symbol; 16 bits
			// never bind so the result is the unrestricted Huffman shape.
			name:      "reserved symbol, 16 bits",
			weights:   []uint64{1, 2, 5, 10, 21, 0},
			maxLength: 16,
			want:      []int{5, 4, 3, 2, 1, 5},
		},
		{
			name:      "single symbol",
			weights:   []uint64{42},
			maxLength: 16,
			want:      []int{1},
		},
		{
			name:      "single symbol plus reserved",
			weights:   []uint64{7, 0},
			maxLength: 16,
			want:      []int{1, 1},
		},
		{
			name:      "equal weights keep input order",
			weights:   []uint64{5, 5, 5},
			maxLength: 16,
			want:      []int{2, 2, 1},
		},
		{
			name:      "equal weights plus reserved",
			weights:   []uint64{5, 5, 5, 5, 0},
			maxLength: 16,
			want:      []int{3, 2, 2, 2, 3},
		},
		{
			name:      "dc categories",
			weights:   []uint64{40, 300, 120, 10, 3, 1, 0},
			maxLength: 16,
			want:      []int{3, 1, 2, 4, 5, 6, 6},
		},
		{
			name:      "full at boundary",
			weights:   []uint64{1, 2, 3, 4, 5, 6, 7, 8},
			maxLength: 3,
			want:      []int{3, 3, 3, 3, 3, 3, 3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.weights, tt.maxLength)
			if err != nil {
				t.Fatalf("Solve() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Solve(%v, %d) = %v, want %v", tt.weights, tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	if _, err := Solve(nil, 16); !errors.Is(err, ErrNoSymbols) {
		t.Errorf("Solve(nil) error = %v, want ErrNoSymbols", err)
	}
	if _, err := Solve(make([]uint64, 9), 3); !errors.Is(err, ErrMaxLengthTooSmall) {
		t.Errorf("Solve(9 symbols, 3) error = %v, want ErrMaxLengthTooSmall", err)
	}
	if _, err := Solve([]uint64{1}, 0); !errors.Is(err, ErrMaxLengthTooSmall) {
		t.Errorf("Solve(1 symbol, 0) error = %v, want ErrMaxLengthTooSmall", err)
	}
}

// Fibonacci weights push an unrestricted Huffman tree past 16 levels.
func TestSolve_LengthLimitBinds(t *testing.T) {
	weights := []uint64{1, 1}
	for len(weights) < 30 {
		weights = append(weights, weights[len(weights)-1]+weights[len(weights)-2])
	}

	for _, maxLength := range []int{5, 7, 16} {
		got, err := Solve(weights, maxLength)
		if err != nil {
			t.Fatalf("Solve(fib, %d) error: %v", maxLength, err)
		}
		for i, l := range got {
			if l < 1 || l > maxLength {
				t.Errorf("maxLength %d: length[%d] = %d out of range", maxLength, i, l)
			}
		}
		if k := Kraft(got, maxLength); k > 1<<uint(maxLength) {
			t.Errorf("maxLength %d: Kraft sum %d exceeds %d", maxLength, k, 1<<uint(maxLength))
		}
	}

	got, err := Solve(weights[:20], 16)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{16, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 4, 4, 3, 3, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Solve(fib[:20], 16) = %v, want %v", got, want)
	}
}

// bruteForceCost returns the minimum weighted length over every
// Kraft-feasible assignment of lengths 1..maxLength.
func bruteForceCost(weights []uint64, maxLength int) uint64 {
	best := ^uint64(0)
	lengths := make([]int, len(weights))
	var walk func(i int)
	walk = func(i int) {
		if i == len(weights) {
			if Kraft(lengths, maxLength) > 1<<uint(maxLength) {
				return
			}
			if c := cost(weights, lengths); c < best {
				best = c
			}
			return
		}
		for l := 1; l <= maxLength; l++ {
			lengths[i] = l
			walk(i + 1)
		}
	}
	walk(0)
	return best
}

func cost(weights []uint64, lengths []int) uint64 {
	var c uint64
	for i, w := range weights {
		c += w * uint64(lengths[i])
	}
	return c
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(6)
		maxLength := 3 + rng.Intn(3)
		weights := make([]uint64, n+1)
		for i := 0; i < n; i++ {
			weights[i] = uint64(1 + rng.Intn(30))
		}
		// Last entry is the zero-weight reserved symbol.

		got, err := Solve(weights, maxLength)
		if err != nil {
			t.Fatalf("Solve(%v, %d) error: %v", weights, maxLength, err)
		}
		if k := Kraft(got, maxLength); k > 1<<uint(maxLength) {
			t.Fatalf("Solve(%v, %d) = %v violates Kraft", weights, maxLength, got)
		}
		if c, want := cost(weights, got), bruteForceCost(weights, maxLength); c != want {
			t.Fatalf("Solve(%v, %d) = %v cost %d, want %d", weights, maxLength, got, c, want)
		}
	}
}

func TestSolve_ReservedCodewordStaysFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		n := 1 + rng.Intn(255)
		weights := make([]uint64, n+1)
		for i := 0; i < n; i++ {
			weights[i] = uint64(1 + rng.Intn(1000))
		}

		got, err := Solve(weights, 16)
		if err != nil {
			t.Fatal(err)
		}
		if k := Kraft(got[:n], 16); k >= 1<<16 {
			t.Fatalf("n=%d: Kraft sum without reserved symbol = %d, want < %d", n, k, 1<<16)
		}
	}
}

func TestSolve_UniformWeights(t *testing.T) {
	for n := 1; n <= 64; n++ {
		weights := make([]uint64, n)
		for i := range weights {
			weights[i] = 9
		}
		got, err := Solve(weights, 16)
		if err != nil {
			t.Fatal(err)
		}
		ceilLog := 0
		for 1<<uint(ceilLog) < n {
			ceilLog++
		}
		for i, l := range got {
			if d := l - ceilLog; d < -1 || d > 1 {
				t.Errorf("n=%d: length[%d] = %d, ceil(log2 n) = %d", n, i, l, ceilLog)
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	weights := make([]uint64, 200)
	for i := range weights {
		weights[i] = uint64(rng.Intn(8))
	}
	first, err := Solve(weights, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, _ := Solve(weights, 16)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestSolve_DoesNotModifyInput(t *testing.T) {
	weights := []uint64{21, 10, 5, 2, 1}
	Solve(weights, 16)
	want := []uint64{21, 10, 5, 2, 1}
	if !reflect.DeepEqual(weights, want) {
		t.Errorf("weights = %v, want %v", weights, want)
	}
}

func TestKraft(t *testing.T) {
	tests := []struct {
		lengths   []int
		maxLength int
		want      uint64
	}{
		{[]int{1, 1}, 16, 1 << 16},
		{[]int{1, 2, 3}, 3, 7},
		{[]int{3, 3, 3, 3, 1}, 3, 8},
		{[]int{0}, 3, 9},
		{[]int{4}, 3, 9},
	}
	for _, tt := range tests {
		if got := Kraft(tt.lengths, tt.maxLength); got != tt.want {
			t.Errorf("Kraft(%v, %d) = %d, want %d", tt.lengths, tt.maxLength, got, tt.want)
		}
	}
}

func BenchmarkSolve_FullAlphabet(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	weights := make([]uint64, 257)
	for i := 0; i < 256; i++ {
		weights[i] = uint64(1 + rng.Intn(1<<16))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve(weights, 16)
	}
}
