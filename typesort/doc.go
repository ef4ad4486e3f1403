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

// Package typesort is a type-polymorphic in-memory sorting engine.
//
// Three algorithms are provided, each in two modes:
//   - Quicksort: median-of-3 partition exchange with an explicit bounded
//     stack and an insertion-sort tail. Fastest on average, not stable.
//   - Heapsort: sift-down heapsort. O(n log n) worst case with O(1)
//     auxiliary space, for callers that need a strict bound.
//   - Mergesort: top-down stable merge with a half-size scratch buffer.
//     Equal elements keep their original relative order, which makes the
//     indirect form the building block for multi-key sorting.
//
// Direct mode reorders the buffer itself; indirect mode (argsort) reorders
// a caller-owned index array and leaves the data untouched.
//
// # Supported element families
//
// Fixed-width scalars (bool, signed and unsigned integers, floats,
// complex) and fixed-length byte or code-unit keys compared
// lexicographically. Floating-point NaN values sort after every ordinary
// value; complex values order by real part then imaginary part with the
// same NaN rule.
//
// # Basic usage
//
//	import "github.com/ajroetker/go-typesort/typesort"
//
//	data := []float64{2.0, math.NaN(), 1.0}
//	typesort.SortSlice(data, typesort.Quicksort) // [1, 2, NaN]
//
//	index, _ := typesort.ArgSortSlice(data, typesort.Mergesort)
//
// The generic helpers route through the Default registry. Callers that
// work with untyped buffers and run-time type descriptors use the
// Registry API directly:
//
//	reg := typesort.NewRegistry()
//	err := reg.Sort(buf, count, typesort.BytesKey(8), typesort.Heapsort)
//
// All routines are synchronous and allocation-free except for the
// mergesort scratch buffer, which is scoped to a single call.
package typesort
