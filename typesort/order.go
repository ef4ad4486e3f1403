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

import "math"

// The ordering policy. Each less function is a strict weak order over its
// family: the algorithm cores assume nothing beyond that.

// lessOrdered is the ordinary numeric order for integer families.
func lessOrdered[T Integers](a, b T) bool {
	return a < b
}

// lessBool orders false before true.
func lessBool(a, b bool) bool {
	return !a && b
}

// isNaN32 avoids the float64 round trip of math.IsNaN.
func isNaN32(f float32) bool {
	return f != f
}

// lessFloat32 is the NaN-last total order: a NaN is never less than
// anything, every ordinary value is less than a NaN, and two NaNs compare
// equal.
func lessFloat32(a, b float32) bool {
	return a < b || (isNaN32(b) && !isNaN32(a))
}

// lessFloat64 is the NaN-last total order for float64.
func lessFloat64(a, b float64) bool {
	return a < b || (math.IsNaN(b) && !math.IsNaN(a))
}

// lessComplex64 compares real parts under the NaN-last order; on a real
// tie (equal reals, or both NaN) the imaginary parts decide under the same
// order. A value with a NaN real part is therefore less than another
// NaN-real value exactly when its imaginary part is not NaN and the
// other's is, or both are ordinary and compare less.
func lessComplex64(a, b complex64) bool {
	ar, br := real(a), real(b)
	if lessFloat32(ar, br) {
		return true
	}
	if lessFloat32(br, ar) {
		return false
	}
	return lessFloat32(imag(a), imag(b))
}

// lessComplex128 is lessComplex64 for complex128.
func lessComplex128(a, b complex128) bool {
	ar, br := real(a), real(b)
	if lessFloat64(ar, br) {
		return true
	}
	if lessFloat64(br, ar) {
		return false
	}
	return lessFloat64(imag(a), imag(b))
}

// lessOf returns the family order for a scalar element type.
func lessOf[T Elem]() func(a, b T) bool {
	var zero T
	var fn any
	switch any(zero).(type) {
	case bool:
		fn = lessBool
	case int8:
		fn = lessOrdered[int8]
	case int16:
		fn = lessOrdered[int16]
	case int32:
		fn = lessOrdered[int32]
	case int64:
		fn = lessOrdered[int64]
	case int:
		fn = lessOrdered[int]
	case uint8:
		fn = lessOrdered[uint8]
	case uint16:
		fn = lessOrdered[uint16]
	case uint32:
		fn = lessOrdered[uint32]
	case uint64:
		fn = lessOrdered[uint64]
	case uint:
		fn = lessOrdered[uint]
	case float32:
		fn = lessFloat32
	case float64:
		fn = lessFloat64
	case complex64:
		fn = lessComplex64
	case complex128:
		fn = lessComplex128
	}
	f, _ := fn.(func(a, b T) bool)
	return f
}
