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

// heapsort sorts v in place with a binary max-heap: bottom-up sift-down
// from the midpoint, then repeated root extraction into the shrinking
// tail. O(n log n) worst case, O(1) auxiliary space. Not stable.
func heapsort[E any](v []E, less func(a, b E) bool) {
	n := len(v)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(v, i, n, less)
	}
	for i := n - 1; i > 0; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v, 0, i, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within v[:n].
func siftDown[E any](v []E, i, n int, less func(a, b E) bool) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && less(v[largest], v[left]) {
			largest = left
		}
		if right < n && less(v[largest], v[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		v[i], v[largest] = v[largest], v[i]
		i = largest
	}
}
