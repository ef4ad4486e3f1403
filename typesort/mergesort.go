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

// smallMergesort: runs at or below this length finish with the stable
// insertion sort instead of splitting further.
const smallMergesort = 20

// scratchLen returns the scratch size in elements for a merge sort over n
// elements. The left half is at most n/2 elements; rounding up keeps the
// declared bound independent of parity.
func scratchLen(n int) int {
	return (n + 1) / 2
}

// mergesort sorts v stably: split at the midpoint, sort both halves, copy
// the left half into scratch w, then merge scratch against the
// still-in-place right half back into v. The right head is taken only
// while strictly less than the scratch head, so ties drain the left side
// first and equal elements keep their original relative order.
//
// w must hold at least scratchLen(len(v)) elements. Indirect mode runs the
// same body over index slices with an index-typed scratch.
func mergesort[E any](v []E, w []E, less func(a, b E) bool) {
	n := len(v)
	if n <= smallMergesort {
		insertionSort(v, less)
		return
	}

	mid := n / 2
	mergesort(v[:mid], w, less)
	mergesort(v[mid:], w, less)

	copy(w, v[:mid])
	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if less(v[j], w[i]) {
			v[k] = v[j]
			j++
		} else {
			v[k] = w[i]
			i++
		}
		k++
	}
	// The write cursor can never pass the right-half read cursor, so the
	// tail of the left half is all that remains to copy back.
	for i < mid {
		v[k] = w[i]
		i++
		k++
	}
}
