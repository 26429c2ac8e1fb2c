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

// atomRedTypechecking applies the shared preamble of atomic
// read-modify-write operations: pointer check, broadcast of val and
// mask to the pointer shape, conversion of val to the pointee type,
// and a default all-true mask.
func atomRedTypechecking(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, *ast.Value, *ast.Value, error) {
	if !ptr.Type().ScalarType().IsPointer() {
		return nil, nil, nil, semerr.Errorf("Pointer argument of store instruction is %s", ptr.Type())
	}
	var err error
	if ptr.Type().IsBlock() {
		if mask != nil {
			if mask, err = Broadcast(mask, ptr.Type().BlockShape(), ctx, b); err != nil {
				return nil, nil, nil, err
			}
		}
		if val != nil {
			if val, err = Broadcast(val, ptr.Type().BlockShape(), ctx, b); err != nil {
				return nil, nil, nil, err
			}
		}
	}
	if val, err = Cast(val, ptr.Type().ScalarType().PointerElem(), ctx, b); err != nil {
		return nil, nil, nil, err
	}
	if mask == nil {
		mask = ctx.ValueFromIR(b.GetInt1(true))
		if ptr.Type().IsBlock() {
			mask = ctx.NewValue(b.CreateSplat(mask.IRValue(), ptr.Type().BlockShape()), val.Type())
		}
	}
	return ptr, val, mask, nil
}

// atomicMinMax lowers atomic max when max is true, atomic min
// otherwise. Integer pointees lower to a single read-modify-write
// picked by signedness. Float pointees are emulated with integer
// atomics on the bit-reinterpreted pointer: ordered as integers,
// non-negative floats use the signed operation while negative floats
// use the unsigned one with the opposite direction, and the result is
// selected by the sign of val.
func atomicMinMax(ptr, val, mask *ast.Value, max bool, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	ptr, val, mask, err := atomRedTypechecking(ptr, val, mask, ctx, b)
	if err != nil {
		return nil, err
	}
	scaTy := val.Type().ScalarType()
	if scaTy.IsInteger() {
		var op ir.AtomicOp
		switch {
		case max && scaTy.Signed():
			op = ir.AtomicMax
		case max:
			op = ir.AtomicUMax
		case scaTy.Signed():
			op = ir.AtomicMin
		default:
			op = ir.AtomicUMin
		}
		ret := b.CreateAtomicRMW(op, ptr.IRValue(), val.IRValue(), mask.IRValue())
		return ctx.NewValue(ret, val.Type()), nil
	}
	if !scaTy.IsFloating() {
		return nil, semerr.Unreachable("atomic_min_max")
	}
	iVal, err := Bitcast(val, ctx.Int32(), ctx, b)
	if err != nil {
		return nil, err
	}
	iPtr, err := Bitcast(ptr, ctx.PointerTo(ctx.Int32(), 1), ctx, b)
	if err != nil {
		return nil, err
	}
	zero := ctx.NewValue(ir.NewConstantFloat(scaTy.IRType(), 0), scaTy)
	pos, err := GreaterEqual(val, zero, ctx, b)
	if err != nil {
		return nil, err
	}
	neg, err := LessThan(val, zero, ctx, b)
	if err != nil {
		return nil, err
	}
	maskPos := b.CreateAnd(mask.IRValue(), pos.IRValue())
	maskNeg := b.CreateAnd(mask.IRValue(), neg.IRValue())
	posOp, negOp := ir.AtomicMax, ir.AtomicUMin
	if !max {
		posOp, negOp = ir.AtomicMin, ir.AtomicUMax
	}
	posRet := ctx.NewValue(b.CreateAtomicRMW(posOp, iPtr.IRValue(), iVal.IRValue(), maskPos), iVal.Type())
	negRet := ctx.NewValue(b.CreateAtomicRMW(negOp, iPtr.IRValue(), iVal.IRValue(), maskNeg), iVal.Type())
	return Where(pos, posRet, negRet, ctx, b)
}

// AtomicMax lowers an atomic maximum through ptr.
func AtomicMax(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicMinMax(ptr, val, mask, true, ctx, b)
}

// AtomicMin lowers an atomic minimum through ptr.
func AtomicMin(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicMinMax(ptr, val, mask, false, ctx, b)
}

// AtomicAdd lowers an atomic addition through ptr, a float addition
// for float pointees.
func AtomicAdd(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	ptr, val, mask, err := atomRedTypechecking(ptr, val, mask, ctx, b)
	if err != nil {
		return nil, err
	}
	op := ir.AtomicAdd
	if val.Type().ScalarType().IsFloating() {
		op = ir.AtomicFAdd
	}
	ret := b.CreateAtomicRMW(op, ptr.IRValue(), val.IRValue(), mask.IRValue())
	return ctx.NewValue(ret, val.Type()), nil
}

func atomicRMW(op ir.AtomicOp, ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	ptr, val, mask, err := atomRedTypechecking(ptr, val, mask, ctx, b)
	if err != nil {
		return nil, err
	}
	ret := b.CreateAtomicRMW(op, ptr.IRValue(), val.IRValue(), mask.IRValue())
	return ctx.NewValue(ret, val.Type()), nil
}

// AtomicAnd lowers an atomic bitwise and through ptr.
func AtomicAnd(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicRMW(ir.AtomicAnd, ptr, val, mask, ctx, b)
}

// AtomicOr lowers an atomic bitwise or through ptr.
func AtomicOr(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicRMW(ir.AtomicOr, ptr, val, mask, ctx, b)
}

// AtomicXor lowers an atomic bitwise exclusive or through ptr.
func AtomicXor(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicRMW(ir.AtomicXor, ptr, val, mask, ctx, b)
}

// AtomicXchg lowers an atomic exchange through ptr.
func AtomicXchg(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return atomicRMW(ir.AtomicXchg, ptr, val, mask, ctx, b)
}
