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

import "github.com/pkg/errors"

// All engine errors are detected before the target buffer or index array
// is touched: on failure the caller's data is exactly as supplied. Match
// with errors.Is.
var (
	// ErrScratchAlloc reports that the mergesort scratch buffer could not
	// be acquired within the registry's scratch budget. Safe to retry with
	// a different algorithm; heapsort needs no scratch.
	ErrScratchAlloc = errors.New("typesort: scratch buffer allocation failed")

	// ErrUnsupported reports a (family, algorithm) pair with no installed
	// routine.
	ErrUnsupported = errors.New("typesort: unsupported family/algorithm combination")

	// ErrExtent reports a count exceeding the buffer's capacity, an index
	// array shorter than the requested count, or a key width that is zero,
	// negative, or inconsistent with the buffer length.
	ErrExtent = errors.New("typesort: invalid extent")

	// ErrBuffer reports a buffer whose dynamic type does not match the
	// descriptor's family.
	ErrBuffer = errors.New("typesort: buffer type does not match descriptor")
)
