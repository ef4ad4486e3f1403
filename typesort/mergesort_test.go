// Copyright 2026 go-typesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typesort

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
)

// TestMergesortRandomFloat64 cross-checks random data against slices.Sort.
func TestMergesortRandomFloat64(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for _, n := range testSizes {
		data := make([]float64, n)
		want := make([]float64, n)
		for i := range data {
			data[i] = float64(rng.Intn(1000))
			want[i] = data[i]
		}
		slices.Sort(want)
		if err := SortSlice(data, Mergesort); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !slices.Equal(data, want) {
			t.Errorf("n=%d: mergesort disagrees with stdlib", n)
		}
	}
}

// TestMergesortStability tags equal values with their original position
// via argsort: among ties, indices must stay in increasing order. Sizes
// straddle the insertion-sort base case and the merge path.
func TestMergesortStability(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range testSizes {
		// Few distinct values so ties are plentiful.
		data := make([]int32, n)
		for i := range data {
			data[i] = int32(rng.Intn(5))
		}
		index, err := ArgSortSlice(data, Mergesort)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		checkPermutation(t, index, n)
		for i := 1; i < n; i++ {
			a, b := data[index[i-1]], data[index[i]]
			if b < a {
				t.Fatalf("n=%d: out of order at %d", n, i)
			}
			if a == b && index[i-1] > index[i] {
				t.Fatalf("n=%d: equal values %d reordered: index %d before %d", n, a, index[i-1], index[i])
			}
		}
	}
}

// TestMergesortNaNScenario is the float scenario: NaNs go to the tail and,
// mergesort being stable, keep their original relative order. The two NaNs
// carry distinct quiet payloads so the direct sort can be checked
// bit-for-bit.
func TestMergesortNaNScenario(t *testing.T) {
	nanA := math.Float64frombits(0x7ff8000000000001)
	nanB := math.Float64frombits(0x7ff8000000000002)
	data := []float64{2.0, nanA, 1.0, nanB, 0.5}

	if err := SortSlice(data, Mergesort); err != nil {
		t.Fatal(err)
	}
	if data[0] != 0.5 || data[1] != 1.0 || data[2] != 2.0 {
		t.Fatalf("finite prefix wrong: %v", data)
	}
	if math.Float64bits(data[3]) != 0x7ff8000000000001 {
		t.Errorf("first NaN: got bits %#x, want the first-seen payload", math.Float64bits(data[3]))
	}
	if math.Float64bits(data[4]) != 0x7ff8000000000002 {
		t.Errorf("second NaN: got bits %#x, want the second-seen payload", math.Float64bits(data[4]))
	}
}

// TestArgMergesortNaNScenario is the same scenario in indirect mode: the
// index order of the two NaNs must match their original positions.
func TestArgMergesortNaNScenario(t *testing.T) {
	nan := math.NaN()
	data := []float64{2.0, nan, 1.0, nan, 0.5}
	index, err := ArgSortSlice(data, Mergesort)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{4, 2, 0, 1, 3}; !slices.Equal(index, want) {
		t.Errorf("index = %v, want %v", index, want)
	}
}

// TestMergesortScratchFailure injects a scratch budget too small for the
// merge: the call must fail with ErrScratchAlloc and leave the buffer
// bit-identical, so the caller can fall back to heapsort.
func TestMergesortScratchFailure(t *testing.T) {
	reg := NewRegistry(WithScratchLimit(64))

	rng := rand.New(rand.NewSource(22))
	data := make([]float64, 100)
	for i := range data {
		if i%7 == 0 {
			data[i] = math.NaN()
		} else {
			data[i] = rng.NormFloat64()
		}
	}
	before := make([]uint64, len(data))
	for i, v := range data {
		before[i] = math.Float64bits(v)
	}

	err := reg.Sort(data, len(data), Scalar(FamilyFloat64), Mergesort)
	if !errors.Is(err, ErrScratchAlloc) {
		t.Fatalf("err = %v, want ErrScratchAlloc", err)
	}
	for i, v := range data {
		if math.Float64bits(v) != before[i] {
			t.Fatalf("buffer modified at %d after scratch failure", i)
		}
	}

	// Heapsort needs no scratch and must succeed on the same registry.
	if err := reg.Sort(data, len(data), Scalar(FamilyFloat64), Heapsort); err != nil {
		t.Fatalf("heapsort fallback: %v", err)
	}

	// A budget covering ceil(n/2) elements is enough.
	roomy := NewRegistry(WithScratchLimit(50 * 8))
	small := []float64{3, 1, 2}
	if err := roomy.Sort(small, len(small), Scalar(FamilyFloat64), Mergesort); err != nil {
		t.Fatalf("within budget: %v", err)
	}
}

// TestArgMergesortScratchFailure covers the same injection in indirect
// mode: the index array must be untouched too.
func TestArgMergesortScratchFailure(t *testing.T) {
	reg := NewRegistry(WithScratchLimit(8))
	data := make([]int64, 64)
	for i := range data {
		data[i] = int64(64 - i)
	}
	index := identity(len(data))
	err := reg.ArgSort(data, index, len(data), Scalar(FamilyInt64), Mergesort)
	if !errors.Is(err, ErrScratchAlloc) {
		t.Fatalf("err = %v, want ErrScratchAlloc", err)
	}
	for i, v := range index {
		if v != i {
			t.Fatalf("index array modified at %d after scratch failure", i)
		}
	}
}

// TestMergesortMultiKey chains stable argsorts, least-significant key
// first, to get a lexicographic (major, minor) order.
func TestMergesortMultiKey(t *testing.T) {
	major := []int{2, 1, 2, 1, 2, 1}
	minor := []int{0, 2, 1, 0, 0, 1}

	index := identity(len(major))

	// Sort by minor first, then re-sort stably by major.
	if err := ArgSortSliceInto(minor, index, Mergesort); err != nil {
		t.Fatal(err)
	}
	reordered := make([]int, len(index))
	for i, idx := range index {
		reordered[i] = major[idx]
	}
	second := identity(len(index))
	if err := ArgSortSliceInto(reordered, second, Mergesort); err != nil {
		t.Fatal(err)
	}
	final := make([]int, len(index))
	for i, s := range second {
		final[i] = index[s]
	}

	for i := 1; i < len(final); i++ {
		a, b := final[i-1], final[i]
		if major[a] > major[b] || (major[a] == major[b] && minor[a] > minor[b]) {
			t.Fatalf("pair (%d,%d) before (%d,%d) at %d",
				major[a], minor[a], major[b], minor[b], i)
		}
	}
}

// TestMergesortIdempotent sorts twice; the second pass must be a no-op.
func TestMergesortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	data := make([]uint8, 400)
	for i := range data {
		data[i] = uint8(rng.Intn(256))
	}
	if err := SortSlice(data, Mergesort); err != nil {
		t.Fatal(err)
	}
	once := slices.Clone(data)
	if err := SortSlice(data, Mergesort); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, once) {
		t.Error("sorting a sorted sequence changed it")
	}
}
