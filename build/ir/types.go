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

package ir

import (
	"fmt"
	"strings"
)

// Kind identifies a category of IR type.
type Kind int

// Kinds of IR types. Integer types carry a width only: signedness is a
// frontend attribute and does not exist at this level.
const (
	VoidKind Kind = iota
	LabelKind
	FP8Kind
	FP16Kind
	BF16Kind
	FP32Kind
	FP64Kind
	IntegerKind
	PointerKind
	BlockKind
	FuncKind
)

// Shape is the list of dimensions of a block type.
type Shape []int64

// NumElements returns the total number of elements of the shape.
func (s Shape) NumElements() int64 {
	n := int64(1)
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal returns true if both shapes have the same dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i, dim := range s {
		if dim != o[i] {
			return false
		}
	}
	return true
}

// String representation of the shape.
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, dim := range s {
		dims[i] = fmt.Sprint(dim)
	}
	return "[" + strings.Join(dims, ", ") + "]"
}

func (s Shape) clone() Shape {
	return append(Shape{}, s...)
}

// Type of an IR value. Types are canonicalized by their Context:
// two structurally equal types are the same pointer.
type Type struct {
	kind  Kind
	width int64 // integer bit width

	elem      *Type // pointer pointee or block element
	addrSpace int64 // pointer address space
	shape     Shape // block shape

	ret    *Type // function return type
	params []*Type
}

// Kind of the type.
func (t *Type) Kind() Kind { return t.kind }

// IsVoid returns true for the void type.
func (t *Type) IsVoid() bool { return t.kind == VoidKind }

// IsLabel returns true for the label type of basic blocks.
func (t *Type) IsLabel() bool { return t.kind == LabelKind }

// IsInteger returns true for integer types of any width.
func (t *Type) IsInteger() bool { return t.kind == IntegerKind }

// IsFloating returns true for floating point types.
func (t *Type) IsFloating() bool {
	switch t.kind {
	case FP8Kind, FP16Kind, BF16Kind, FP32Kind, FP64Kind:
		return true
	}
	return false
}

// IsPointer returns true for pointer types.
func (t *Type) IsPointer() bool { return t.kind == PointerKind }

// IsBlock returns true for block types.
func (t *Type) IsBlock() bool { return t.kind == BlockKind }

// IsFunc returns true for function types.
func (t *Type) IsFunc() bool { return t.kind == FuncKind }

// IntegerBitwidth returns the width of an integer type in bits.
func (t *Type) IntegerBitwidth() int64 { return t.width }

// MantissaWidth returns the number of mantissa bits of a floating point type.
func (t *Type) MantissaWidth() int64 {
	switch t.kind {
	case FP8Kind:
		return 3
	case FP16Kind:
		return 10
	case BF16Kind:
		return 7
	case FP32Kind:
		return 23
	case FP64Kind:
		return 52
	}
	return 0
}

// PrimitiveSizeInBits returns the storage size of the type in bits.
// For a block, this is the total size across all elements.
func (t *Type) PrimitiveSizeInBits() int64 {
	switch t.kind {
	case FP8Kind:
		return 8
	case FP16Kind, BF16Kind:
		return 16
	case FP32Kind:
		return 32
	case FP64Kind:
		return 64
	case IntegerKind:
		return t.width
	case PointerKind:
		return 64
	case BlockKind:
		return t.shape.NumElements() * t.elem.PrimitiveSizeInBits()
	}
	return 0
}

// Scalar returns the element type of a block, or the type itself.
func (t *Type) Scalar() *Type {
	if t.kind == BlockKind {
		return t.elem
	}
	return t
}

// BlockShape returns the shape of a block type, nil otherwise.
func (t *Type) BlockShape() Shape { return t.shape }

// Rank returns the number of dimensions of a block type.
func (t *Type) Rank() int { return len(t.shape) }

// NumElements returns the number of elements of a block type,
// or 1 for a scalar type.
func (t *Type) NumElements() int64 {
	if t.kind == BlockKind {
		return t.shape.NumElements()
	}
	return 1
}

// PointerElem returns the pointee type of a pointer type.
func (t *Type) PointerElem() *Type { return t.elem }

// AddrSpace returns the address space of a pointer type.
func (t *Type) AddrSpace() int64 { return t.addrSpace }

// ReturnType returns the return type of a function type.
func (t *Type) ReturnType() *Type { return t.ret }

// Params returns the parameter types of a function type.
func (t *Type) Params() []*Type { return t.params }

// String representation of the type.
func (t *Type) String() string {
	switch t.kind {
	case VoidKind:
		return "void"
	case LabelKind:
		return "label"
	case FP8Kind:
		return "fp8"
	case FP16Kind:
		return "fp16"
	case BF16Kind:
		return "bf16"
	case FP32Kind:
		return "fp32"
	case FP64Kind:
		return "fp64"
	case IntegerKind:
		return fmt.Sprintf("i%d", t.width)
	case PointerKind:
		if t.addrSpace != 0 {
			return fmt.Sprintf("%s addrspace(%d)*", t.elem, t.addrSpace)
		}
		return t.elem.String() + "*"
	case BlockKind:
		return t.elem.String() + t.shape.String()
	case FuncKind:
		params := make([]string, len(t.params))
		for i, p := range t.params {
			params[i] = p.String()
		}
		return fmt.Sprintf("fn(%s) %s", strings.Join(params, ", "), t.ret)
	}
	return "<unknown>"
}

// Context owns and canonicalizes the IR types of one compilation.
// Looking up the same type twice returns the same pointer.
type Context struct {
	void, label                  *Type
	fp8, fp16, bf16, fp32, fp64  *Type
	ints                         map[int64]*Type
	pointers                     map[pointerKey]*Type
	blocks                       map[blockKey]*Type
	funcs                        map[string]*Type
}

type pointerKey struct {
	elem      *Type
	addrSpace int64
}

type blockKey struct {
	elem  *Type
	shape string
}

// NewContext returns an empty type pool for one compilation.
func NewContext() *Context {
	return &Context{
		void:     &Type{kind: VoidKind},
		label:    &Type{kind: LabelKind},
		fp8:      &Type{kind: FP8Kind},
		fp16:     &Type{kind: FP16Kind},
		bf16:     &Type{kind: BF16Kind},
		fp32:     &Type{kind: FP32Kind},
		fp64:     &Type{kind: FP64Kind},
		ints:     make(map[int64]*Type),
		pointers: make(map[pointerKey]*Type),
		blocks:   make(map[blockKey]*Type),
		funcs:    make(map[string]*Type),
	}
}

// VoidTy returns the void type.
func (c *Context) VoidTy() *Type { return c.void }

// LabelTy returns the label type of basic blocks.
func (c *Context) LabelTy() *Type { return c.label }

// FP8Ty returns the 8-bit float type.
func (c *Context) FP8Ty() *Type { return c.fp8 }

// FP16Ty returns the 16-bit float type.
func (c *Context) FP16Ty() *Type { return c.fp16 }

// BF16Ty returns the bfloat16 type.
func (c *Context) BF16Ty() *Type { return c.bf16 }

// FP32Ty returns the 32-bit float type.
func (c *Context) FP32Ty() *Type { return c.fp32 }

// FP64Ty returns the 64-bit float type.
func (c *Context) FP64Ty() *Type { return c.fp64 }

// IntTy returns the integer type of the given width.
func (c *Context) IntTy(width int64) *Type {
	t, ok := c.ints[width]
	if !ok {
		t = &Type{kind: IntegerKind, width: width}
		c.ints[width] = t
	}
	return t
}

// Int1Ty returns the 1-bit integer type.
func (c *Context) Int1Ty() *Type { return c.IntTy(1) }

// Int8Ty returns the 8-bit integer type.
func (c *Context) Int8Ty() *Type { return c.IntTy(8) }

// Int16Ty returns the 16-bit integer type.
func (c *Context) Int16Ty() *Type { return c.IntTy(16) }

// Int32Ty returns the 32-bit integer type.
func (c *Context) Int32Ty() *Type { return c.IntTy(32) }

// Int64Ty returns the 64-bit integer type.
func (c *Context) Int64Ty() *Type { return c.IntTy(64) }

// PointerTy returns the pointer type to elem in the given address space.
func (c *Context) PointerTy(elem *Type, addrSpace int64) *Type {
	key := pointerKey{elem: elem, addrSpace: addrSpace}
	t, ok := c.pointers[key]
	if !ok {
		t = &Type{kind: PointerKind, elem: elem, addrSpace: addrSpace}
		c.pointers[key] = t
	}
	return t
}

// BlockTy returns the block type with the given element type and shape.
func (c *Context) BlockTy(elem *Type, shape Shape) *Type {
	key := blockKey{elem: elem, shape: shape.String()}
	t, ok := c.blocks[key]
	if !ok {
		t = &Type{kind: BlockKind, elem: elem, shape: shape.clone()}
		c.blocks[key] = t
	}
	return t
}

// FuncTy returns the function type with the given return and parameter types.
func (c *Context) FuncTy(ret *Type, params []*Type) *Type {
	sig := ret.String()
	for _, p := range params {
		sig += "|" + p.String()
	}
	t, ok := c.funcs[sig]
	if !ok {
		t = &Type{kind: FuncKind, ret: ret, params: append([]*Type{}, params...)}
		c.funcs[sig] = t
	}
	return t
}
