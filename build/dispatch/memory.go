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

// boolPtrAsInt8Ptr substitutes an int8 pointee for a bool pointee:
// the target has no addressable 1-bit storage. It returns the pointer
// value and its element type, recast when the substitution applies.
func boolPtrAsInt8Ptr(ptr *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, *ast.Type, error) {
	ptrTy := ptr.Type().ScalarType()
	eltTy := ptrTy.PointerElem()
	if eltTy != ctx.Int1() {
		return ptr, eltTy, nil
	}
	eltTy = ctx.Int8()
	ptrTy = ctx.TypeFromIRType(ctx.IRContext().PointerTy(eltTy.IRType(), ptrTy.AddrSpace()), ast.Signed)
	ptr, err := Cast(ptr, ptrTy, ctx, b)
	if err != nil {
		return nil, nil, err
	}
	return ptr, eltTy, nil
}

// Load lowers a read through ptr. mask and other are optional: with a
// mask, off-mask lanes produce other, or an undefined value when
// other is not given. other requires mask.
func Load(ptr, mask, other *ast.Value, cacheModifier string, isVolatile bool, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if !ptr.Type().ScalarType().IsPointer() {
		return nil, semerr.Errorf("Pointer argument of load instruction is %s", ptr.Type())
	}
	var err error
	if ptr.Type().IsBlock() {
		if mask != nil {
			if mask, err = Broadcast(mask, ptr.Type().BlockShape(), ctx, b); err != nil {
				return nil, err
			}
		}
		if other != nil {
			if other, err = Broadcast(other, ptr.Type().BlockShape(), ctx, b); err != nil {
				return nil, err
			}
			if other, err = Cast(other, ptr.Type().ScalarType().PointerElem(), ctx, b); err != nil {
				return nil, err
			}
		}
	}
	ptr, eltTy, err := boolPtrAsInt8Ptr(ptr, ctx, b)
	if err != nil {
		return nil, err
	}
	cache, err := cacheModifierFromString(cacheModifier)
	if err != nil {
		return nil, err
	}
	if mask == nil && other == nil {
		ret := b.CreateLoad(ptr.IRValue(), cache, isVolatile)
		return ctx.NewValue(ret, ctx.TypeFromIR(ret, eltTy.Signedness())), nil
	}
	if mask == nil {
		return nil, semerr.Errorf("`other` cannot be provided without `mask`")
	}
	if other == nil {
		other = ctx.ValueFromIR(ir.NewUndef(eltTy.IRType()))
		if ptr.Type().IsBlock() {
			other = ctx.ValueFromIR(b.CreateSplat(other.IRValue(), ptr.Type().BlockShape()))
		}
	}
	ret := b.CreateMaskedLoad(ptr.IRValue(), mask.IRValue(), other.IRValue(), cache, isVolatile)
	return ctx.NewValue(ret, ctx.TypeFromIR(ret, eltTy.Signedness())), nil
}

func cacheModifierFromString(cacheModifier string) (ir.CacheModifier, error) {
	switch cacheModifier {
	case "":
		return ir.CacheNone, nil
	case ".ca":
		return ir.CacheCA, nil
	case ".cg":
		return ir.CacheCG, nil
	}
	return ir.CacheNone, semerr.Errorf("Cache modifier %s not supported", cacheModifier)
}

// Store lowers a write of val through ptr. A mask, when given, must
// have a boolean scalar type and disables the write on its off lanes.
func Store(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if !ptr.Type().ScalarType().IsPointer() {
		return nil, semerr.Errorf("Pointer argument of store instruction is %s", ptr.Type())
	}
	var err error
	if ptr.Type().IsBlock() {
		if val, err = Broadcast(val, ptr.Type().BlockShape(), ctx, b); err != nil {
			return nil, err
		}
	}
	if mask != nil {
		if mask, err = Broadcast(mask, ptr.Type().BlockShape(), ctx, b); err != nil {
			return nil, err
		}
	}
	ptr, eltTy, err := boolPtrAsInt8Ptr(ptr, ctx, b)
	if err != nil {
		return nil, err
	}
	// cast to the target data-type
	if val, err = Cast(val, eltTy, ctx, b); err != nil {
		return nil, err
	}
	if mask == nil {
		return ctx.ValueFromIR(b.CreateStore(ptr.IRValue(), val.IRValue())), nil
	}
	if !mask.Type().ScalarType().IsBool() {
		return nil, semerr.Errorf("Mask must have boolean scalar type")
	}
	return ctx.ValueFromIR(b.CreateMaskedStore(ptr.IRValue(), val.IRValue(), mask.IRValue())), nil
}

// AtomicCAS lowers an atomic compare-and-swap through ptr.
func AtomicCAS(ptr, cmp, val *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	ret := b.CreateAtomicCAS(ptr.IRValue(), cmp.IRValue(), val.IRValue())
	return ctx.NewValue(ret, val.Type()), nil
}
