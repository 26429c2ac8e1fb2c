// Copyright 2024 Google LLC
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

// Package ast defines the frontend view of values being lowered:
// frontend types and the context owning them.
//
// A frontend type is an IR type plus a signedness. The IR only knows
// integer widths; whether an i32 is an int32 or a uint32 exists here
// and nowhere else. Types are canonicalized by their context on the
// (IR type, signedness) pair, so identity comparison is type equality.
package ast

import (
	"fmt"

	"github.com/apd10/triton/build/ir"
)

// Signedness of a frontend integer type. Undefined for other types.
type Signedness int

// Signedness values.
const (
	Signed Signedness = iota
	Unsigned
)

// Type is a frontend type: an IR type with a signedness. For block
// types, the signedness describes the element; for pointer types, it
// describes the pointee.
type Type struct {
	ir         *ir.Type
	signedness Signedness
	ctx        *Context
}

// IRType returns the IR type lowered from this type.
func (t *Type) IRType() *ir.Type { return t.ir }

// Context returns the context owning the type.
func (t *Type) Context() *Context { return t.ctx }

// Signedness of the type.
func (t *Type) Signedness() Signedness { return t.signedness }

// Signed returns true if the type signedness is signed.
func (t *Type) Signed() bool { return t.signedness == Signed }

// IsVoid returns true for the void type.
func (t *Type) IsVoid() bool { return t.ir.IsVoid() }

// IsInteger returns true for integer types of any width.
func (t *Type) IsInteger() bool { return t.ir.IsInteger() }

// IsFloating returns true for floating point types.
func (t *Type) IsFloating() bool { return t.ir.IsFloating() }

// IsPointer returns true for pointer types.
func (t *Type) IsPointer() bool { return t.ir.IsPointer() }

// IsBlock returns true for block types.
func (t *Type) IsBlock() bool { return t.ir.IsBlock() }

// IsBool returns true for the 1-bit integer type.
func (t *Type) IsBool() bool {
	return t.ir.IsInteger() && t.ir.IntegerBitwidth() == 1
}

// Bitwidth returns the width of an integer type in bits.
func (t *Type) Bitwidth() int64 { return t.ir.IntegerBitwidth() }

// MantissaWidth returns the number of mantissa bits of a floating
// point type.
func (t *Type) MantissaWidth() int64 { return t.ir.MantissaWidth() }

// PrimitiveSizeInBits returns the storage size of the type in bits.
func (t *Type) PrimitiveSizeInBits() int64 { return t.ir.PrimitiveSizeInBits() }

// BlockShape returns the shape of a block type, nil otherwise.
func (t *Type) BlockShape() ir.Shape { return t.ir.BlockShape() }

// Rank returns the number of dimensions of a block type.
func (t *Type) Rank() int { return t.ir.Rank() }

// NumElements returns the number of elements of a block type, or 1.
func (t *Type) NumElements() int64 { return t.ir.NumElements() }

// ScalarType returns the element type of a block, or the type itself.
func (t *Type) ScalarType() *Type {
	if !t.IsBlock() {
		return t
	}
	return t.ctx.TypeFromIRType(t.ir.Scalar(), t.signedness)
}

// PointerElem returns the pointee type of a pointer type, carrying
// the signedness of the pointer.
func (t *Type) PointerElem() *Type {
	return t.ctx.TypeFromIRType(t.ir.PointerElem(), t.signedness)
}

// AddrSpace returns the address space of a pointer type.
func (t *Type) AddrSpace() int64 { return t.ir.AddrSpace() }

// String representation of the type shown to users in error messages.
func (t *Type) String() string {
	switch {
	case t.IsBlock():
		return t.ScalarType().String() + t.BlockShape().String()
	case t.IsPointer():
		return fmt.Sprintf("pointer<%s>", t.PointerElem())
	case t.IsInteger():
		if t.signedness == Unsigned {
			return fmt.Sprintf("uint%d", t.Bitwidth())
		}
		return fmt.Sprintf("int%d", t.Bitwidth())
	}
	return t.ir.String()
}
