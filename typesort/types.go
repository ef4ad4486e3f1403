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

import "unsafe"

// The constraints below name predeclared types only. The registry matches
// buffers by dynamic type, so defined types with a supported underlying
// kind would never assert successfully; allowing them in the constraints
// would just move the failure from compile time to run time.

// Floats is a constraint for floating-point element types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	int8 | int16 | int32 | int64 | int
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Complexes is a constraint for complex element types.
type Complexes interface {
	complex64 | complex128
}

// Elem is the constraint for scalar element types the engine can sort.
type Elem interface {
	Floats | Integers | Complexes | bool
}

// KeyUnit is the constraint for the code units of fixed-length keys:
// bytes for byte-string keys, runes for code-unit keys.
type KeyUnit interface {
	byte | rune
}

// Family identifies a type family: a class of elements sharing comparison,
// copy, and swap semantics and a fixed element size or length.
type Family int

const (
	// FamilyInvalid is the zero Family; nothing is installed for it.
	FamilyInvalid Family = iota

	FamilyBool
	FamilyInt8
	FamilyInt16
	FamilyInt32
	FamilyInt64
	FamilyInt
	FamilyUint8
	FamilyUint16
	FamilyUint32
	FamilyUint64
	FamilyUint
	FamilyFloat32
	FamilyFloat64
	FamilyComplex64
	FamilyComplex128

	// FamilyBytes is fixed-length byte keys stored in a flat []byte,
	// compared lexicographically.
	FamilyBytes

	// FamilyRunes is fixed-length code-unit keys stored in a flat []rune,
	// compared lexicographically by code unit.
	FamilyRunes
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case FamilyBool:
		return "bool"
	case FamilyInt8:
		return "int8"
	case FamilyInt16:
		return "int16"
	case FamilyInt32:
		return "int32"
	case FamilyInt64:
		return "int64"
	case FamilyInt:
		return "int"
	case FamilyUint8:
		return "uint8"
	case FamilyUint16:
		return "uint16"
	case FamilyUint32:
		return "uint32"
	case FamilyUint64:
		return "uint64"
	case FamilyUint:
		return "uint"
	case FamilyFloat32:
		return "float32"
	case FamilyFloat64:
		return "float64"
	case FamilyComplex64:
		return "complex64"
	case FamilyComplex128:
		return "complex128"
	case FamilyBytes:
		return "bytes"
	case FamilyRunes:
		return "runes"
	default:
		return "invalid"
	}
}

// IsKey reports whether f is a fixed-length key family.
func (f Family) IsKey() bool {
	return f == FamilyBytes || f == FamilyRunes
}

// Algorithm selects a sort family. Callers choose explicitly; no default
// is silently substituted.
type Algorithm int

const (
	// Quicksort is partition-exchange sort. Fast on average, not stable.
	Quicksort Algorithm = iota

	// Heapsort has an O(n log n) worst case and O(1) auxiliary space.
	// Not stable.
	Heapsort

	// Mergesort is stable and allocates a scratch buffer of half the
	// input size for the duration of the call.
	Mergesort
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Quicksort:
		return "quicksort"
	case Heapsort:
		return "heapsort"
	case Mergesort:
		return "mergesort"
	default:
		return "unknown"
	}
}

// Descriptor identifies the element layout of a sortable buffer: the type
// family plus, for key families, the key length in code units.
type Descriptor struct {
	Family Family

	// Width is the key length in code units. It must be at least 1 for
	// key families and 0 for scalar families.
	Width int
}

// Scalar returns the descriptor for a scalar family.
func Scalar(f Family) Descriptor {
	return Descriptor{Family: f}
}

// BytesKey returns the descriptor for fixed-length byte keys of width
// bytes each.
func BytesKey(width int) Descriptor {
	return Descriptor{Family: FamilyBytes, Width: width}
}

// RunesKey returns the descriptor for fixed-length code-unit keys of
// width runes each.
func RunesKey(width int) Descriptor {
	return Descriptor{Family: FamilyRunes, Width: width}
}

// UnitSize returns the size in bytes of one primitive unit: the scalar
// element itself, or a single code unit for key families.
func (d Descriptor) UnitSize() int {
	switch d.Family {
	case FamilyBool, FamilyInt8, FamilyUint8, FamilyBytes:
		return 1
	case FamilyInt16, FamilyUint16:
		return 2
	case FamilyInt32, FamilyUint32, FamilyFloat32, FamilyRunes:
		return 4
	case FamilyInt64, FamilyUint64, FamilyFloat64, FamilyComplex64:
		return 8
	case FamilyComplex128:
		return 16
	case FamilyInt, FamilyUint:
		return int(unsafe.Sizeof(int(0)))
	default:
		return 0
	}
}

// Stride returns the element stride in primitive units: 1 for scalars,
// the key width for key families.
func (d Descriptor) Stride() int {
	if d.Family.IsKey() {
		return d.Width
	}
	return 1
}

// ElemSize returns the element size in bytes.
func (d Descriptor) ElemSize() int {
	return d.UnitSize() * d.Stride()
}
