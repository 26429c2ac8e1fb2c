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

package dispatch

import (
	"github.com/apd10/triton/build/ast"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

// Arange lowers the block of consecutive int32 values [start, end).
func Arange(start, end int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.ValueFromIR(b.GetRange(int32(start), int32(end))), nil
}

// Zeros lowers a block of the given shape filled with the zero of
// dtype.
func Zeros(shape ir.Shape, dtype *ast.Type, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	zero := ir.NullValue(dtype.IRType())
	ret := b.CreateSplat(zero, shape)
	retTy := ctx.TypeFromIR(ret, dtype.Signedness())
	return ctx.NewValue(ret, retTy), nil
}

// Reshape lowers a reinterpretation of input under a new shape with
// the same number of elements.
func Reshape(input *ast.Value, shape ir.Shape, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if input.Type().NumElements() != shape.NumElements() {
		return nil, semerr.Errorf("cannot reshape block of different shape")
	}
	ret := b.CreateReshape(input.IRValue(), shape)
	retTy := ctx.TypeFromIR(ret, input.Type().Signedness())
	return ctx.NewValue(ret, retTy), nil
}

// Cat lowers the concatenation of two blocks along their first
// dimension.
func Cat(lhs, rhs *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	// TODO: check that the operand shapes agree past the leading dimension.
	ret := b.CreateCat(lhs.IRValue(), rhs.IRValue())
	retTy := ctx.TypeFromIR(ret, lhs.Type().Signedness())
	return ctx.NewValue(ret, retTy), nil
}

// Dot lowers a 2D matrix multiplication of an [M, K] block by a
// [K, N] block, accumulating into an [M, N] splat of zero: fp32 zero
// when either operand is floating, int32 zero otherwise.
func Dot(lhs, rhs *ast.Value, allowTF32 bool, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if !lhs.Type().IsBlock() || !rhs.Type().IsBlock() {
		return nil, semerr.Errorf("both operands of dot must be blocks, got %s and %s", lhs.Type(), rhs.Type())
	}
	lhsShape := lhs.Type().BlockShape()
	rhsShape := rhs.Type().BlockShape()
	if len(lhsShape) != 2 || len(rhsShape) != 2 {
		return nil, semerr.Errorf("dot operands must have rank 2, got %s and %s", lhs.Type(), rhs.Type())
	}
	if lhsShape[1] != rhsShape[0] {
		return nil, semerr.Errorf("cannot multiply %s by %s: inner dimensions do not agree", lhs.Type(), rhs.Type())
	}
	var zero ir.Value
	if lhs.Type().ScalarType().IsFloating() || rhs.Type().ScalarType().IsFloating() {
		zero = b.GetFloat32(0)
	} else {
		zero = b.GetInt32(0)
	}
	acc := b.CreateSplat(zero, ir.Shape{lhsShape[0], rhsShape[1]})
	ret := b.CreateDot(lhs.IRValue(), rhs.IRValue(), acc, allowTF32)
	return ctx.ValueFromIR(ret), nil
}

// Where lowers a selection of x or y by cond. x and y are broadcast
// to the shape of cond and converted to their computation type.
func Where(cond, x, y *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	cond, err := Cast(cond, ctx.Int1(), ctx, b)
	if err != nil {
		return nil, err
	}
	if cond.Type().IsBlock() {
		if x, err = Broadcast(x, cond.Type().BlockShape(), ctx, b); err != nil {
			return nil, err
		}
		if y, err = Broadcast(y, cond.Type().BlockShape(), ctx, b); err != nil {
			return nil, err
		}
	}
	ty, err := ComputationType(x.Type().ScalarType(), y.Type().ScalarType(), false)
	if err != nil {
		return nil, err
	}
	if x, err = Cast(x, ty, ctx, b); err != nil {
		return nil, err
	}
	if y, err = Cast(y, ty, ctx, b); err != nil {
		return nil, err
	}
	ret := b.CreateSelect(cond.IRValue(), x.IRValue(), y.IRValue())
	retTy := ctx.TypeFromIR(ret, ty.Signedness())
	return ctx.NewValue(ret, retTy), nil
}
