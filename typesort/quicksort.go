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

// Thresholds for the partition-exchange sort.
const (
	// smallQuicksort: partitions at or below this length finish with
	// insertion sort.
	smallQuicksort = 15

	// quicksortStack bounds the explicit partition stack. Each step pushes
	// the larger partition and iterates on the smaller, so the live depth
	// never exceeds log2(n); 100 entries cover any slice length.
	quicksortStack = 100
)

// span is a half-open [lo, hi) index range.
type span struct {
	lo, hi int
}

// quicksort sorts v in place: median-of-3 pivoting, Hoare partition, an
// explicit bounded stack in place of recursion, and an insertion-sort tail
// for small partitions. Auxiliary space is O(log n) spans, always on the
// Go stack.
//
// Indirect mode runs the same body over an index slice; the pivot is then
// an index captured by copy, which stays valid while slots move because
// the data it refers to never moves.
func quicksort[E any](v []E, less func(a, b E) bool) {
	var stack [quicksortStack]span
	top := 0
	lo, hi := 0, len(v)
	for {
		for hi-lo > smallQuicksort {
			mid := lo + (hi-lo)/2
			last := hi - 1

			// Median of three via pairwise conditional swaps. Afterwards
			// v[lo] and v[last] bracket the pivot and act as sentinels for
			// the scans below.
			if less(v[mid], v[lo]) {
				v[mid], v[lo] = v[lo], v[mid]
			}
			if less(v[last], v[mid]) {
				v[last], v[mid] = v[mid], v[last]
			}
			if less(v[mid], v[lo]) {
				v[mid], v[lo] = v[lo], v[mid]
			}

			pivot := v[mid]
			v[mid], v[last-1] = v[last-1], v[mid]

			i, j := lo, last-1
			for {
				i++
				for less(v[i], pivot) {
					i++
				}
				j--
				for less(pivot, v[j]) {
					j--
				}
				if i >= j {
					break
				}
				v[i], v[j] = v[j], v[i]
			}
			v[i], v[last-1] = v[last-1], v[i]

			// Push the larger partition, keep working on the smaller one.
			if i-lo < hi-(i+1) {
				stack[top] = span{i + 1, hi}
				top++
				hi = i
			} else {
				stack[top] = span{lo, i}
				top++
				lo = i + 1
			}
		}
		insertionSort(v[lo:hi], less)

		if top == 0 {
			break
		}
		top--
		lo, hi = stack[top].lo, stack[top].hi
	}
}
