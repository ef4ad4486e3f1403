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
	"unsafe"

	"github.com/pkg/errors"
)

// directFn sorts the first n elements of data in place.
type directFn func(data any, n int, d Descriptor, r *Registry) error

// indirectFn sorts index[:n] so that data dereferenced through it is
// non-decreasing; data itself is only read.
type indirectFn func(data any, index []int, n int, d Descriptor, r *Registry) error

// routinePair is one registry entry: the direct and indirect routine for
// a (family, algorithm) combination.
type routinePair struct {
	direct   directFn
	indirect indirectFn
}

type regKey struct {
	family Family
	algo   Algorithm
}

// Registry maps (family, algorithm) to an installed routine pair. It is
// immutable once NewRegistry returns, so lookups need no synchronization.
// The zero value has nothing installed and rejects every request with
// ErrUnsupported.
type Registry struct {
	table map[regKey]routinePair

	// scratchLimit caps mergesort scratch in bytes; 0 means no cap.
	scratchLimit int
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithScratchLimit caps the mergesort scratch buffer at limit bytes. A
// merge sort whose scratch requirement exceeds the cap fails with
// ErrScratchAlloc before the target buffer or index array is touched.
func WithScratchLimit(limit int) Option {
	return func(r *Registry) {
		r.scratchLimit = limit
	}
}

// NewRegistry builds the full dispatch table: every representable family
// crossed with every algorithm, direct and indirect.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{table: make(map[regKey]routinePair)}
	for _, opt := range opts {
		opt(r)
	}

	installScalar(r, FamilyBool, lessBool)
	installScalar(r, FamilyInt8, lessOrdered[int8])
	installScalar(r, FamilyInt16, lessOrdered[int16])
	installScalar(r, FamilyInt32, lessOrdered[int32])
	installScalar(r, FamilyInt64, lessOrdered[int64])
	installScalar(r, FamilyInt, lessOrdered[int])
	installScalar(r, FamilyUint8, lessOrdered[uint8])
	installScalar(r, FamilyUint16, lessOrdered[uint16])
	installScalar(r, FamilyUint32, lessOrdered[uint32])
	installScalar(r, FamilyUint64, lessOrdered[uint64])
	installScalar(r, FamilyUint, lessOrdered[uint])
	installScalar(r, FamilyFloat32, lessFloat32)
	installScalar(r, FamilyFloat64, lessFloat64)
	installScalar(r, FamilyComplex64, lessComplex64)
	installScalar(r, FamilyComplex128, lessComplex128)
	installKeys[byte](r, FamilyBytes)
	installKeys[rune](r, FamilyRunes)

	return r
}

// Default is the process-wide registry behind the package-level API.
// Built once at initialization, read-only afterwards.
var Default = NewRegistry()

// Supports reports whether a routine pair is installed for (f, a).
func (r *Registry) Supports(f Family, a Algorithm) bool {
	_, ok := r.table[regKey{f, a}]
	return ok
}

func (r *Registry) lookup(f Family, a Algorithm) (routinePair, error) {
	p, ok := r.table[regKey{f, a}]
	if !ok {
		return routinePair{}, errors.Wrapf(ErrUnsupported, "family %s, algorithm %s", f, a)
	}
	return p, nil
}

func (r *Registry) install(f Family, a Algorithm, p routinePair) {
	r.table[regKey{f, a}] = p
}

// checkScratch enforces the scratch budget for elems scratch elements of
// elemSize bytes each.
func (r *Registry) checkScratch(elems, elemSize int) error {
	if r.scratchLimit > 0 && elems*elemSize > r.scratchLimit {
		return errors.Wrapf(ErrScratchAlloc, "need %d bytes, budget is %d", elems*elemSize, r.scratchLimit)
	}
	return nil
}

// intSize is the element size of the index scratch used by indirect
// mergesort.
const intSize = int(unsafe.Sizeof(int(0)))

// installScalar installs the six routines for one scalar family,
// instantiating the shared generic cores at T with the family's order.
func installScalar[T any](r *Registry, f Family, less func(a, b T) bool) {
	elemSize := int(unsafe.Sizeof(*new(T)))

	// assertData validates the buffer's dynamic type and the requested
	// extent, before anything is read or written.
	assertData := func(data any, n int) ([]T, error) {
		s, ok := data.([]T)
		if !ok {
			return nil, errors.Wrapf(ErrBuffer, "family %s wants a []%T buffer, got %T", f, *new(T), data)
		}
		if n < 0 || n > len(s) {
			return nil, errors.Wrapf(ErrExtent, "count %d outside buffer of %d elements", n, len(s))
		}
		return s[:n], nil
	}
	assertIndex := func(index []int, n int) error {
		if len(index) < n {
			return errors.Wrapf(ErrExtent, "count %d exceeds index array of %d entries", n, len(index))
		}
		return nil
	}

	r.install(f, Quicksort, routinePair{
		direct: func(data any, n int, _ Descriptor, _ *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			quicksort(s, less)
			return nil
		},
		indirect: func(data any, index []int, n int, _ Descriptor, _ *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			quicksort(index[:n], func(i, j int) bool { return less(s[i], s[j]) })
			return nil
		},
	})

	r.install(f, Heapsort, routinePair{
		direct: func(data any, n int, _ Descriptor, _ *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			heapsort(s, less)
			return nil
		},
		indirect: func(data any, index []int, n int, _ Descriptor, _ *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			heapsort(index[:n], func(i, j int) bool { return less(s[i], s[j]) })
			return nil
		},
	})

	r.install(f, Mergesort, routinePair{
		direct: func(data any, n int, _ Descriptor, r *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			if err := r.checkScratch(scratchLen(n), elemSize); err != nil {
				return err
			}
			mergesort(s, make([]T, scratchLen(n)), less)
			return nil
		},
		indirect: func(data any, index []int, n int, _ Descriptor, r *Registry) error {
			s, err := assertData(data, n)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			if err := r.checkScratch(scratchLen(n), intSize); err != nil {
				return err
			}
			w := make([]int, scratchLen(n))
			mergesort(index[:n], w, func(i, j int) bool { return less(s[i], s[j]) })
			return nil
		},
	})
}

// installKeys installs the six routines for one fixed-length key family.
// Direct mode uses the strided block cores; indirect mode permutes indices
// through the shared generic cores with a lexicographic less.
func installKeys[U KeyUnit](r *Registry, f Family) {
	unitSize := int(unsafe.Sizeof(*new(U)))

	// assertData validates type, width, and extent: the buffer must hold a
	// whole number of width-unit keys, at least n of them.
	assertData := func(data any, n, width int) ([]U, error) {
		s, ok := data.([]U)
		if !ok {
			return nil, errors.Wrapf(ErrBuffer, "family %s wants a []%T buffer, got %T", f, *new(U), data)
		}
		if width < 1 {
			return nil, errors.Wrapf(ErrExtent, "key width %d, must be at least one unit", width)
		}
		if len(s)%width != 0 {
			return nil, errors.Wrapf(ErrExtent, "buffer of %d units is not whole %d-unit keys", len(s), width)
		}
		if n < 0 || n > len(s)/width {
			return nil, errors.Wrapf(ErrExtent, "count %d outside buffer of %d keys", n, len(s)/width)
		}
		return s[:n*width], nil
	}
	assertIndex := func(index []int, n int) error {
		if len(index) < n {
			return errors.Wrapf(ErrExtent, "count %d exceeds index array of %d entries", n, len(index))
		}
		return nil
	}

	r.install(f, Quicksort, routinePair{
		direct: func(data any, n int, d Descriptor, _ *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			quicksortKeys(s, d.Width, n)
			return nil
		},
		indirect: func(data any, index []int, n int, d Descriptor, _ *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			less := func(i, j int) bool { return lessKey(key(s, d.Width, i), key(s, d.Width, j)) }
			quicksort(index[:n], less)
			return nil
		},
	})

	r.install(f, Heapsort, routinePair{
		direct: func(data any, n int, d Descriptor, _ *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			heapsortKeys(s, d.Width, n)
			return nil
		},
		indirect: func(data any, index []int, n int, d Descriptor, _ *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			less := func(i, j int) bool { return lessKey(key(s, d.Width, i), key(s, d.Width, j)) }
			heapsort(index[:n], less)
			return nil
		},
	})

	r.install(f, Mergesort, routinePair{
		direct: func(data any, n int, d Descriptor, r *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			if err := r.checkScratch(scratchLen(n), d.Width*unitSize); err != nil {
				return err
			}
			w := make([]U, scratchLen(n)*d.Width)
			vp := make([]U, d.Width)
			mergesortKeys(s, w, d.Width, 0, n, vp)
			return nil
		},
		indirect: func(data any, index []int, n int, d Descriptor, r *Registry) error {
			s, err := assertData(data, n, d.Width)
			if err != nil {
				return err
			}
			if err := assertIndex(index, n); err != nil {
				return err
			}
			if err := r.checkScratch(scratchLen(n), intSize); err != nil {
				return err
			}
			w := make([]int, scratchLen(n))
			less := func(i, j int) bool { return lessKey(key(s, d.Width, i), key(s, d.Width, j)) }
			mergesort(index[:n], w, less)
			return nil
		},
	})
}
