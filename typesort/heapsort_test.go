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
	"math"
	"math/rand"
	"slices"
	"testing"
)

// TestHeapsortRandomInt32 cross-checks random data against slices.Sort.
func TestHeapsortRandomInt32(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, n := range testSizes {
		data := make([]int32, n)
		want := make([]int32, n)
		for i := range data {
			data[i] = rng.Int31n(10000) - 5000
			want[i] = data[i]
		}
		slices.Sort(want)
		if err := SortSlice(data, Heapsort); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !slices.Equal(data, want) {
			t.Errorf("n=%d: heapsort disagrees with stdlib", n)
		}
	}
}

// TestHeapsortPatterns covers adversarial shapes for a heap build.
func TestHeapsortPatterns(t *testing.T) {
	tests := []struct {
		name string
		data []int
	}{
		{"empty", nil},
		{"single", []int{42}},
		{"pair", []int{2, 1}},
		{"sorted", []int{1, 2, 3, 4, 5, 6, 7}},
		{"reverse", []int{7, 6, 5, 4, 3, 2, 1}},
		{"all_equal", []int{9, 9, 9, 9, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := slices.Clone(tt.data)
			slices.Sort(want)
			if err := SortSlice(tt.data, Heapsort); err != nil {
				t.Fatalf("SortSlice: %v", err)
			}
			if !slices.Equal(tt.data, want) {
				t.Errorf("got %v, want %v", tt.data, want)
			}
		})
	}
}

// TestHeapsortNaNPlacement pushes NaNs to the tail like every other
// algorithm.
func TestHeapsortNaNPlacement(t *testing.T) {
	nan := float32(math.NaN())
	data := []float32{2, nan, 1, nan, 0.5, 3, nan}
	if err := SortSlice(data, Heapsort); err != nil {
		t.Fatal(err)
	}
	want := []float32{0.5, 1, 2, 3}
	for i, v := range want {
		if data[i] != v {
			t.Fatalf("position %d: got %v, want %v (full: %v)", i, data[i], v, data)
		}
	}
	for i := len(want); i < len(data); i++ {
		if !isNaN32(data[i]) {
			t.Fatalf("position %d: got %v, want NaN", i, data[i])
		}
	}
}

// TestArgHeapsortKeysScenario is the fixed-length key scenario: indirect
// heapsort over ["bb", "aa", "cc"] yields the index order [1, 0, 2].
func TestArgHeapsortKeysScenario(t *testing.T) {
	buf := []byte("bbaacc")
	index, err := ArgSortBytes(buf, 2, Heapsort)
	if err != nil {
		t.Fatalf("ArgSortBytes: %v", err)
	}
	if string(buf) != "bbaacc" {
		t.Fatalf("argsort modified the data buffer: %q", buf)
	}
	if want := []int{1, 0, 2}; !slices.Equal(index, want) {
		t.Errorf("index = %v, want %v", index, want)
	}
}

// TestArgHeapsortPermutation checks the bijection invariant on larger
// random inputs.
func TestArgHeapsortPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range testSizes {
		data := make([]uint64, n)
		for i := range data {
			data[i] = rng.Uint64() % 100
		}
		index, err := ArgSortSlice(data, Heapsort)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		checkPermutation(t, index, n)
		for i := 1; i < n; i++ {
			if data[index[i]] < data[index[i-1]] {
				t.Fatalf("n=%d: dereferenced sequence decreases at %d", n, i)
			}
		}
	}
}

// TestHeapsortIdempotent sorts twice; the second pass must be a no-op.
func TestHeapsortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	data := make([]int16, 300)
	for i := range data {
		data[i] = int16(rng.Intn(1 << 16))
	}
	if err := SortSlice(data, Heapsort); err != nil {
		t.Fatal(err)
	}
	once := slices.Clone(data)
	if err := SortSlice(data, Heapsort); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, once) {
		t.Error("sorting a sorted sequence changed it")
	}
}
