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
	"fmt"

	"github.com/apd10/triton/build/ast"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

// liftToBlock rebuilds the scalar type of dstTy as a block of the
// source shape when the source is a block, keeping the source
// signedness. A destination that is already a block is not nested.
func liftToBlock(srcTy, dstTy *ast.Type, ctx *ast.Context) *ast.Type {
	if !srcTy.IsBlock() {
		return dstTy
	}
	blockTy := ctx.IRContext().BlockTy(dstTy.ScalarType().IRType(), srcTy.BlockShape())
	return ctx.TypeFromIRType(blockTy, srcTy.Signedness())
}

// Cast lowers a conversion of input to dstTy, picking the IR cast
// matching the scalar kinds of source and destination. Block sources
// lift the destination to a block of the same shape.
func Cast(input *ast.Value, dstTy *ast.Type, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	srcTy := input.Type()
	dstTy = liftToBlock(srcTy, dstTy, ctx)
	if srcTy == dstTy {
		return input, nil
	}
	srcSca := srcTy.ScalarType()
	dstSca := dstTy.ScalarType()
	switch {
	// FP truncation
	case srcSca.IsFloating() && dstSca.IsFloating() && srcSca.MantissaWidth() > dstSca.MantissaWidth():
		return ctx.NewValue(b.CreateFPTrunc(input.IRValue(), dstTy.IRType()), dstTy), nil
	// FP extension
	case srcSca.IsFloating() && dstSca.IsFloating() && srcSca.MantissaWidth() < dstSca.MantissaWidth():
		return ctx.NewValue(b.CreateFPExt(input.IRValue(), dstTy.IRType()), dstTy), nil
	// int cast
	case srcSca.IsInteger() && dstSca.IsInteger() &&
		(srcSca.Bitwidth() != dstSca.Bitwidth() || srcSca.Signedness() != dstSca.Signedness()):
		signExtend := srcSca.Signed() && srcSca.IRType() != ctx.IRContext().Int1Ty()
		return ctx.NewValue(b.CreateIntCast(input.IRValue(), dstTy.IRType(), signExtend), dstTy), nil
	// float -> int
	case srcSca.IsFloating() && dstSca.IsInteger():
		if dstSca.IsBool() {
			return ctx.NewValue(b.CreateFPToUI(input.IRValue(), dstTy.IRType()), dstTy), nil
		}
		return ctx.NewValue(b.CreateFPToSI(input.IRValue(), dstTy.IRType()), dstTy), nil
	// int -> float
	case srcSca.IsInteger() && dstSca.IsFloating():
		if srcSca.IsBool() || !srcSca.Signed() {
			return ctx.NewValue(b.CreateUIToFP(input.IRValue(), dstTy.IRType()), dstTy), nil
		}
		return ctx.NewValue(b.CreateSIToFP(input.IRValue(), dstTy.IRType()), dstTy), nil
	}
	// pointer -> int: only 64-bit, or 1-bit through a null check
	if srcSca.IsPointer() && dstSca.IsInteger() {
		switch dstSca.Bitwidth() {
		case 64:
			return ctx.NewValue(b.CreateCast(ir.PtrToInt, input.IRValue(), dstTy.IRType()), dstTy), nil
		case 1:
			casted, err := Cast(input, ctx.Int64(), ctx, b)
			if err != nil {
				return nil, err
			}
			return NotEqual(casted, ctx.ValueFromIR(b.GetInt64(0)), ctx, b)
		}
	}
	// int -> pointer
	if !srcSca.IsPointer() && dstSca.IsPointer() {
		return ctx.NewValue(b.CreateCast(ir.IntToPtr, input.IRValue(), dstTy.IRType()), dstTy), nil
	}
	// ptr -> ptr
	if srcSca.IsPointer() && dstSca.IsPointer() {
		return ctx.NewValue(b.CreateCast(ir.BitCast, input.IRValue(), dstTy.IRType()), dstTy), nil
	}
	// * -> bool
	if dstSca.IsBool() {
		if srcSca.IsPointer() {
			var err error
			if input, err = Cast(input, ctx.Int64(), ctx, b); err != nil {
				return nil, err
			}
		}
		other := ctx.NewValue(b.GetInt64(0), ctx.Int64())
		if srcTy.IsBool() {
			other = ctx.NewValue(b.CreateSplat(other.IRValue(), srcTy.BlockShape()), dstTy)
		}
		return ctx.NewValue(b.CreateICmp(ir.IntNE, input.IRValue(), other.IRValue()), dstTy), nil
	}
	return nil, semerr.Unreachable(fmt.Sprintf("casting from %s to %s", srcSca, dstSca))
}

// Bitcast lowers a reinterpretation of input as dstTy. Both sides
// must have the same primitive size; pointers on either side fall
// back to Cast.
func Bitcast(input *ast.Value, dstTy *ast.Type, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	srcTy := input.Type()
	dstTy = liftToBlock(srcTy, dstTy, ctx)
	if srcTy == dstTy {
		return input, nil
	}
	srcSca := srcTy.ScalarType()
	dstSca := dstTy.ScalarType()
	if srcSca.IsPointer() || dstSca.IsPointer() {
		return Cast(input, dstTy, ctx, b)
	}
	srcBits := srcSca.PrimitiveSizeInBits()
	dstBits := dstSca.PrimitiveSizeInBits()
	if srcBits != dstBits {
		return nil, semerr.Errorf("cannot bitcast data-type of size %d to data-type of size %d", srcBits, dstBits)
	}
	return ctx.NewValue(b.CreateCast(ir.BitCast, input.IRValue(), dstTy.IRType()), dstTy), nil
}
