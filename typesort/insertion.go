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

// insertionSort sorts v in place. Stable: an element moves only past
// elements it is strictly less than. Both quicksort and mergesort finish
// small runs here; for short runs it does fewer comparisons and moves
// than continuing to partition or split.
//
// One body serves both access modes: direct mode instantiates E as the
// element type, indirect mode as an index whose less dereferences into
// the untouched data buffer.
func insertionSort[E any](v []E, less func(a, b E) bool) {
	for i := 1; i < len(v); i++ {
		key := v[i]
		j := i - 1
		for j >= 0 && less(key, v[j]) {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = key
	}
}
