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

// Broadcast lowers input to a block of the target shape. A scalar is
// splatted; a block must have the target rank and, on each dimension,
// either the target size or size 1. A block already of the target
// shape is returned unchanged.
func Broadcast(input *ast.Value, shape ir.Shape, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if !input.Type().IsBlock() {
		ret := b.CreateSplat(input.IRValue(), shape)
		retTy := ctx.TypeFromIR(ret, input.Type().Signedness())
		return ctx.NewValue(ret, retTy), nil
	}
	srcShape := input.Type().BlockShape()
	if len(srcShape) != len(shape) {
		return nil, semerr.Errorf("cannot broadcast %s to %s: ranks differ", input.Type(), shape)
	}
	if shape.Equal(srcShape) {
		return input, nil
	}
	for i, dim := range srcShape {
		if dim != shape[i] && dim != 1 {
			return nil, semerr.Errorf("cannot broadcast %s to %s: incompatible dimension at index %d", input.Type(), shape, i)
		}
	}
	ret := b.CreateBroadcast(input.IRValue(), shape)
	retTy := ctx.TypeFromIR(ret, input.Type().Signedness())
	return ctx.NewValue(ret, retTy), nil
}

// BroadcastPair makes the shapes of two values compatible: a scalar
// is splatted to the shape of the other side; two blocks are both
// extended to their common shape, where each dimension pair must be
// (1, k), (k, 1) or (k, k).
func BroadcastPair(lhs, rhs *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, *ast.Value, error) {
	lhsTy, rhsTy := lhs.Type(), rhs.Type()
	switch {
	case lhsTy.IsBlock() && !rhsTy.IsBlock():
		ret := b.CreateSplat(rhs.IRValue(), lhsTy.BlockShape())
		rhs = ctx.NewValue(ret, ctx.TypeFromIR(ret, rhsTy.Signedness()))
	case !lhsTy.IsBlock() && rhsTy.IsBlock():
		ret := b.CreateSplat(lhs.IRValue(), rhsTy.BlockShape())
		lhs = ctx.NewValue(ret, ctx.TypeFromIR(ret, lhsTy.Signedness()))
	case lhsTy.IsBlock() && rhsTy.IsBlock():
		lhsShape := lhsTy.BlockShape()
		rhsShape := rhsTy.BlockShape()
		if len(lhsShape) != len(rhsShape) {
			return nil, nil, semerr.Errorf("cannot make shapes compatible: blocks must have the same rank")
		}
		retShape := make(ir.Shape, len(lhsShape))
		for i := range lhsShape {
			left, right := lhsShape[i], rhsShape[i]
			switch {
			case left == 1:
				retShape[i] = right
			case right == 1 || left == right:
				retShape[i] = left
			default:
				return nil, nil, semerr.Errorf("cannot make shapes compatible: incompatible dimensions at index %d: %d and %d", i, left, right)
			}
		}
		if !lhsShape.Equal(retShape) {
			ret := b.CreateBroadcast(lhs.IRValue(), retShape)
			lhs = ctx.NewValue(ret, ctx.TypeFromIR(ret, lhsTy.Signedness()))
		}
		if !rhsShape.Equal(retShape) {
			ret := b.CreateBroadcast(rhs.IRValue(), retShape)
			rhs = ctx.NewValue(ret, ctx.TypeFromIR(ret, rhsTy.Signedness()))
		}
	}
	return lhs, rhs, nil
}
