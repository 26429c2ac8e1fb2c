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

// reduceImpl lowers a reduction along one axis, picking the float or
// the integer operation by the element type of the operand.
func reduceImpl(input *ast.Value, axis int, ctx *ast.Context, b *ir.Builder,
	name string, floatOp, intOp ir.ReduceOp) (*ast.Value, error) {
	scalarTy := input.Type().ScalarType()
	// Narrow integers are extended to 32 bits: it increases numerical
	// accuracy and is pretty much free on the target.
	if scalarTy.IsInteger() && scalarTy.Bitwidth() <= 32 {
		var err error
		if input, err = Cast(input, ctx.Int32(), ctx, b); err != nil {
			return nil, err
		}
	}
	switch {
	case scalarTy.IsFloating():
		ret := b.CreateReduce(input.IRValue(), floatOp, axis)
		return ctx.NewValue(ret, ctx.TypeFromIR(ret, input.Type().Signedness())), nil
	case scalarTy.IsInteger():
		ret := b.CreateReduce(input.IRValue(), intOp, axis)
		return ctx.NewValue(ret, ctx.TypeFromIR(ret, input.Type().Signedness())), nil
	}
	return nil, semerr.Unreachable(name)
}

// Min lowers a minimum reduction along axis.
func Min(input *ast.Value, axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return reduceImpl(input, axis, ctx, b, "min", ir.ReduceFMin, ir.ReduceMin)
}

// Max lowers a maximum reduction along axis.
func Max(input *ast.Value, axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return reduceImpl(input, axis, ctx, b, "max", ir.ReduceFMax, ir.ReduceMax)
}

// Sum lowers a sum reduction along axis.
func Sum(input *ast.Value, axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return reduceImpl(input, axis, ctx, b, "sum", ir.ReduceFAdd, ir.ReduceAdd)
}

// XorSum lowers an exclusive-or reduction along axis. Integer only.
func XorSum(input *ast.Value, axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	if !input.Type().ScalarType().IsInteger() {
		return nil, semerr.Errorf("xor_sum only supported for integers")
	}
	return reduceImpl(input, axis, ctx, b, "sum", ir.ReduceXor, ir.ReduceXor)
}
