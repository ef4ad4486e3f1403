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

// Fixed-length keys live in a flat buffer of code units; element i
// occupies units [i*width, (i+1)*width). Scalars move by assignment, keys
// by the length-parameterized block primitives below, so the direct-mode
// algorithms are restated here over strided addressing. Indirect mode
// needs no key-specific code: it permutes indices through the shared
// generic cores with a lexicographic less.

// key returns the i-th element of a strided key buffer.
func key[U KeyUnit](buf []U, width, i int) []U {
	return buf[i*width : (i+1)*width]
}

// lessKey compares two equal-length keys lexicographically: the first
// differing unit decides, equal content compares equal.
func lessKey[U KeyUnit](a, b []U) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// swapKey exchanges two non-overlapping equal-length key blocks.
func swapKey[U KeyUnit](a, b []U) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// insertionSortKeys sorts elements [lo, hi) of a strided key buffer with
// the stable insertion sort. vp is a one-element scratch block of width
// units, reused across calls.
func insertionSortKeys[U KeyUnit](buf []U, width, lo, hi int, vp []U) {
	for i := lo + 1; i < hi; i++ {
		copy(vp, key(buf, width, i))
		j := i - 1
		for j >= lo && lessKey(vp, key(buf, width, j)) {
			copy(key(buf, width, j+1), key(buf, width, j))
			j--
		}
		copy(key(buf, width, j+1), vp)
	}
}

// quicksortKeys is the partition-exchange sort over a strided key buffer
// of n elements. Same structure as the scalar core; the pivot is captured
// into a copy so it stays valid while blocks move.
func quicksortKeys[U KeyUnit](buf []U, width, n int) {
	vp := make([]U, width)
	var stack [quicksortStack]span
	top := 0
	lo, hi := 0, n
	for {
		for hi-lo > smallQuicksort {
			mid := lo + (hi-lo)/2
			last := hi - 1

			if lessKey(key(buf, width, mid), key(buf, width, lo)) {
				swapKey(key(buf, width, mid), key(buf, width, lo))
			}
			if lessKey(key(buf, width, last), key(buf, width, mid)) {
				swapKey(key(buf, width, last), key(buf, width, mid))
			}
			if lessKey(key(buf, width, mid), key(buf, width, lo)) {
				swapKey(key(buf, width, mid), key(buf, width, lo))
			}

			copy(vp, key(buf, width, mid))
			swapKey(key(buf, width, mid), key(buf, width, last-1))

			i, j := lo, last-1
			for {
				i++
				for lessKey(key(buf, width, i), vp) {
					i++
				}
				j--
				for lessKey(vp, key(buf, width, j)) {
					j--
				}
				if i >= j {
					break
				}
				swapKey(key(buf, width, i), key(buf, width, j))
			}
			swapKey(key(buf, width, i), key(buf, width, last-1))

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
		insertionSortKeys(buf, width, lo, hi, vp)

		if top == 0 {
			break
		}
		top--
		lo, hi = stack[top].lo, stack[top].hi
	}
}

// heapsortKeys is the sift-down heapsort over a strided key buffer of n
// elements.
func heapsortKeys[U KeyUnit](buf []U, width, n int) {
	for i := n/2 - 1; i >= 0; i-- {
		siftDownKeys(buf, width, i, n)
	}
	for i := n - 1; i > 0; i-- {
		swapKey(key(buf, width, 0), key(buf, width, i))
		siftDownKeys(buf, width, 0, i)
	}
}

func siftDownKeys[U KeyUnit](buf []U, width, i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && lessKey(key(buf, width, largest), key(buf, width, left)) {
			largest = left
		}
		if right < n && lessKey(key(buf, width, largest), key(buf, width, right)) {
			largest = right
		}
		if largest == i {
			return
		}
		swapKey(key(buf, width, i), key(buf, width, largest))
		i = largest
	}
}

// mergesortKeys is the stable merge sort over elements [lo, hi) of a
// strided key buffer. w must hold scratchLen(hi-lo) key blocks; vp is a
// one-element scratch block for the insertion base case. Tie handling
// matches the scalar core: the right half is taken only when strictly
// less.
func mergesortKeys[U KeyUnit](buf, w []U, width, lo, hi int, vp []U) {
	n := hi - lo
	if n <= smallMergesort {
		insertionSortKeys(buf, width, lo, hi, vp)
		return
	}

	mid := lo + n/2
	mergesortKeys(buf, w, width, lo, mid, vp)
	mergesortKeys(buf, w, width, mid, hi, vp)

	nl := mid - lo
	copy(w[:nl*width], buf[lo*width:mid*width])
	i, j, k := 0, mid, lo
	for i < nl && j < hi {
		if lessKey(key(buf, width, j), key(w, width, i)) {
			copy(key(buf, width, k), key(buf, width, j))
			j++
		} else {
			copy(key(buf, width, k), key(w, width, i))
			i++
		}
		k++
	}
	for i < nl {
		copy(key(buf, width, k), key(w, width, i))
		i++
		k++
	}
}
