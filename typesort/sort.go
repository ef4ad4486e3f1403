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

// validate checks the descriptor's internal consistency.
func (d Descriptor) validate() error {
	if d.Family.IsKey() {
		if d.Width < 1 {
			return errors.Wrapf(ErrExtent, "family %s with key width %d", d.Family, d.Width)
		}
		return nil
	}
	if d.Width != 0 {
		return errors.Wrapf(ErrExtent, "scalar family %s with key width %d", d.Family, d.Width)
	}
	return nil
}

// Sort sorts the first count elements of data in place with the chosen
// algorithm. data must be the slice type of the descriptor's family (for
// key families, a flat unit slice holding at least count keys of d.Width
// units). On error the buffer is exactly as the caller supplied it.
func (r *Registry) Sort(data any, count int, d Descriptor, algo Algorithm) error {
	if err := d.validate(); err != nil {
		return err
	}
	p, err := r.lookup(d.Family, algo)
	if err != nil {
		return err
	}
	return p.direct(data, count, d, r)
}

// ArgSort sorts index[:count] so that dereferencing data through it yields
// a non-decreasing sequence. data is read-only for the duration of the
// call and index must hold a permutation of valid element offsets,
// commonly the identity. Only existing index values are exchanged or
// copied; none are synthesized.
func (r *Registry) ArgSort(data any, index []int, count int, d Descriptor, algo Algorithm) error {
	if err := d.validate(); err != nil {
		return err
	}
	p, err := r.lookup(d.Family, algo)
	if err != nil {
		return err
	}
	return p.indirect(data, index, count, d, r)
}

// Sort is Registry.Sort on the Default registry.
func Sort(data any, count int, d Descriptor, algo Algorithm) error {
	return Default.Sort(data, count, d, algo)
}

// ArgSort is Registry.ArgSort on the Default registry.
func ArgSort(data any, index []int, count int, d Descriptor, algo Algorithm) error {
	return Default.ArgSort(data, index, count, d, algo)
}

// familyOf maps a scalar element type to its family tag.
func familyOf[T Elem]() Family {
	var zero T
	switch any(zero).(type) {
	case bool:
		return FamilyBool
	case int8:
		return FamilyInt8
	case int16:
		return FamilyInt16
	case int32:
		return FamilyInt32
	case int64:
		return FamilyInt64
	case int:
		return FamilyInt
	case uint8:
		return FamilyUint8
	case uint16:
		return FamilyUint16
	case uint32:
		return FamilyUint32
	case uint64:
		return FamilyUint64
	case uint:
		return FamilyUint
	case float32:
		return FamilyFloat32
	case float64:
		return FamilyFloat64
	case complex64:
		return FamilyComplex64
	case complex128:
		return FamilyComplex128
	default:
		return FamilyInvalid
	}
}

// SortSlice sorts data in place, deriving the type family from the
// element type and routing through the Default registry.
func SortSlice[T Elem](data []T, algo Algorithm) error {
	return Default.Sort(data, len(data), Scalar(familyOf[T]()), algo)
}

// ArgSortSlice returns a freshly allocated index array sorted so that
// data dereferenced through it is non-decreasing; data is not modified.
func ArgSortSlice[T Elem](data []T, algo Algorithm) ([]int, error) {
	index := identity(len(data))
	if err := ArgSortSliceInto(data, index, algo); err != nil {
		return nil, err
	}
	return index, nil
}

// ArgSortSliceInto sorts a caller-supplied index array in place. index
// must be a permutation of valid offsets into data; chaining calls with a
// stable algorithm over different keys yields a lexicographic multi-key
// order, least-significant key first.
func ArgSortSliceInto[T Elem](data []T, index []int, algo Algorithm) error {
	return Default.ArgSort(data, index, len(index), Scalar(familyOf[T]()), algo)
}

// SortBytes sorts a flat buffer of len(buf)/width fixed-length byte keys
// in place.
func SortBytes(buf []byte, width int, algo Algorithm) error {
	if width < 1 {
		return errors.Wrapf(ErrExtent, "key width %d, must be at least one unit", width)
	}
	return Default.Sort(buf, len(buf)/width, BytesKey(width), algo)
}

// ArgSortBytes returns a sorted index array over a flat buffer of
// fixed-length byte keys; buf is not modified.
func ArgSortBytes(buf []byte, width int, algo Algorithm) ([]int, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrExtent, "key width %d, must be at least one unit", width)
	}
	index := identity(len(buf) / width)
	if err := Default.ArgSort(buf, index, len(index), BytesKey(width), algo); err != nil {
		return nil, err
	}
	return index, nil
}

// SortRunes sorts a flat buffer of len(buf)/width fixed-length code-unit
// keys in place.
func SortRunes(buf []rune, width int, algo Algorithm) error {
	if width < 1 {
		return errors.Wrapf(ErrExtent, "key width %d, must be at least one unit", width)
	}
	return Default.Sort(buf, len(buf)/width, RunesKey(width), algo)
}

// ArgSortRunes returns a sorted index array over a flat buffer of
// fixed-length code-unit keys; buf is not modified.
func ArgSortRunes(buf []rune, width int, algo Algorithm) ([]int, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrExtent, "key width %d, must be at least one unit", width)
	}
	index := identity(len(buf) / width)
	if err := Default.ArgSort(buf, index, len(index), RunesKey(width), algo); err != nil {
		return nil, err
	}
	return index, nil
}

// identity returns the identity permutation of n indices.
func identity(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// IsSorted reports whether data is non-decreasing under its family order.
func IsSorted[T Elem](data []T) bool {
	less := lessOf[T]()
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedKeys reports whether a flat buffer of fixed-length keys is
// non-decreasing lexicographically. width must divide len(buf).
func IsSortedKeys[U KeyUnit](buf []U, width int) bool {
	n := len(buf) / width
	for i := 1; i < n; i++ {
		if lessKey(key(buf, width, i), key(buf, width, i-1)) {
			return false
		}
	}
	return true
}
