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

package ast

import (
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

// Context owns the frontend types and values of one compilation.
// Types are canonicalized on the (IR type, signedness) pair: two
// look-ups with the same key return the same *Type. Values minted by
// the context live as long as the context.
type Context struct {
	irCtx  *ir.Context
	types  map[typeKey]*Type
	values []*Value
}

type typeKey struct {
	ir         *ir.Type
	signedness Signedness
}

// NewContext returns a context associated with an IR context.
func NewContext(irCtx *ir.Context) *Context {
	return &Context{
		irCtx: irCtx,
		types: make(map[typeKey]*Type),
	}
}

// IRContext returns the IR type pool of the compilation.
func (c *Context) IRContext() *ir.Context { return c.irCtx }

// TypeFromIRType returns the canonical frontend type for an IR type
// and a signedness.
func (c *Context) TypeFromIRType(irTy *ir.Type, signedness Signedness) *Type {
	key := typeKey{ir: irTy, signedness: signedness}
	t, ok := c.types[key]
	if !ok {
		t = &Type{ir: irTy, signedness: signedness, ctx: c}
		c.types[key] = t
	}
	return t
}

// TypeFromIR returns the canonical frontend type of an IR value.
func (c *Context) TypeFromIR(v ir.Value, signedness Signedness) *Type {
	return c.TypeFromIRType(v.Type(), signedness)
}

// NewValue mints a frontend value wrapping an IR value with an
// explicit frontend type.
func (c *Context) NewValue(irVal ir.Value, t *Type) *Value {
	v := &Value{ir: irVal, typ: t}
	c.values = append(c.values, v)
	return v
}

// ValueFromIR mints a frontend value whose type is inferred from the
// IR value, with signedness defaulting to signed.
func (c *Context) ValueFromIR(irVal ir.Value) *Value {
	return c.NewValue(irVal, c.TypeFromIR(irVal, Signed))
}

// ----------------------------------------------------------------------------
// Factory methods.

// Void returns the void type.
func (c *Context) Void() *Type { return c.TypeFromIRType(c.irCtx.VoidTy(), Signed) }

// FP8 returns the 8-bit float type.
func (c *Context) FP8() *Type { return c.TypeFromIRType(c.irCtx.FP8Ty(), Signed) }

// FP16 returns the 16-bit float type.
func (c *Context) FP16() *Type { return c.TypeFromIRType(c.irCtx.FP16Ty(), Signed) }

// BF16 returns the bfloat16 type.
func (c *Context) BF16() *Type { return c.TypeFromIRType(c.irCtx.BF16Ty(), Signed) }

// FP32 returns the 32-bit float type.
func (c *Context) FP32() *Type { return c.TypeFromIRType(c.irCtx.FP32Ty(), Signed) }

// FP64 returns the 64-bit float type.
func (c *Context) FP64() *Type { return c.TypeFromIRType(c.irCtx.FP64Ty(), Signed) }

// Int1 returns the boolean type.
func (c *Context) Int1() *Type { return c.TypeFromIRType(c.irCtx.Int1Ty(), Signed) }

// Int8 returns the signed 8-bit integer type.
func (c *Context) Int8() *Type { return c.TypeFromIRType(c.irCtx.Int8Ty(), Signed) }

// Int16 returns the signed 16-bit integer type.
func (c *Context) Int16() *Type { return c.TypeFromIRType(c.irCtx.Int16Ty(), Signed) }

// Int32 returns the signed 32-bit integer type.
func (c *Context) Int32() *Type { return c.TypeFromIRType(c.irCtx.Int32Ty(), Signed) }

// Int64 returns the signed 64-bit integer type.
func (c *Context) Int64() *Type { return c.TypeFromIRType(c.irCtx.Int64Ty(), Signed) }

// Uint8 returns the unsigned 8-bit integer type.
func (c *Context) Uint8() *Type { return c.TypeFromIRType(c.irCtx.Int8Ty(), Unsigned) }

// Uint16 returns the unsigned 16-bit integer type.
func (c *Context) Uint16() *Type { return c.TypeFromIRType(c.irCtx.Int16Ty(), Unsigned) }

// Uint32 returns the unsigned 32-bit integer type.
func (c *Context) Uint32() *Type { return c.TypeFromIRType(c.irCtx.Int32Ty(), Unsigned) }

// Uint64 returns the unsigned 64-bit integer type.
func (c *Context) Uint64() *Type { return c.TypeFromIRType(c.irCtx.Int64Ty(), Unsigned) }

// PointerTo returns the pointer type to pointee in the given address
// space, carrying the pointee signedness.
func (c *Context) PointerTo(pointee *Type, addrSpace int64) *Type {
	irTy := c.irCtx.PointerTy(pointee.IRType(), addrSpace)
	return c.TypeFromIRType(irTy, pointee.Signedness())
}

// BlockOf returns the block type of the given element and shape.
func (c *Context) BlockOf(elem *Type, shape ir.Shape) (*Type, error) {
	if len(shape) == 0 {
		return nil, semerr.Errorf("cannot create a block type with an empty shape")
	}
	for i, dim := range shape {
		if dim < 1 {
			return nil, semerr.Errorf("cannot create a block type: dimension %d is %d", i, dim)
		}
	}
	irTy := c.irCtx.BlockTy(elem.IRType(), shape)
	return c.TypeFromIRType(irTy, elem.Signedness()), nil
}
