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

// compare applies the shared lowering of comparison operations: the
// binary preamble, then an ordered float compare or an integer
// compare picked by the signedness of the promoted operands. The
// resulting value carries the boolean type of the emitted compare,
// elementwise over blocks.
func compare(input, other *ast.Value, ctx *ast.Context, b *ir.Builder,
	name string, fpred ir.FloatPredicate, spred, upred ir.IntPredicate) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, true, false)
	if err != nil {
		return nil, err
	}
	scalarTy := input.Type().ScalarType()
	switch {
	case scalarTy.IsFloating():
		return ctx.ValueFromIR(b.CreateFCmp(fpred, input.IRValue(), other.IRValue())), nil
	case scalarTy.IsInteger():
		pred := upred
		if scalarTy.Signed() {
			pred = spred
		}
		return ctx.ValueFromIR(b.CreateICmp(pred, input.IRValue(), other.IRValue())), nil
	}
	return nil, semerr.Unreachable(name)
}

// GreaterThan lowers a > comparison.
func GreaterThan(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "greater_than", ir.FloatOGT, ir.IntSGT, ir.IntUGT)
}

// GreaterEqual lowers a >= comparison.
func GreaterEqual(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "greater_equal", ir.FloatOGE, ir.IntSGE, ir.IntUGE)
}

// LessThan lowers a < comparison.
func LessThan(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "less_than", ir.FloatOLT, ir.IntSLT, ir.IntULT)
}

// LessEqual lowers a <= comparison.
func LessEqual(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "less_equal", ir.FloatOLE, ir.IntSLE, ir.IntULE)
}

// Equal lowers an == comparison. Integer equality ignores signedness.
func Equal(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "equal", ir.FloatOEQ, ir.IntEQ, ir.IntEQ)
}

// NotEqual lowers a != comparison, unordered over floats so that a
// NaN operand compares not-equal.
func NotEqual(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return compare(input, other, ctx, b, "not_equal", ir.FloatUNE, ir.IntNE, ir.IntNE)
}
