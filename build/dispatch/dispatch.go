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

// Package dispatch lowers frontend operations to IR instructions.
//
// Every operation takes frontend values, the context owning them, and
// the builder to emit through; it resolves implicit broadcasting and
// implicit numeric promotion, picks the IR instruction matching the
// scalar category of its operands, and wraps the emitted value in a
// new frontend value. Operations are stateless: all state lives in
// the context and the builder.
//
// Operations return a semantic error for invalid programs; callers
// abort the current lowering on the first error. A partially emitted
// module is poisoned and must be abandoned.
package dispatch

import (
	"github.com/apd10/triton/build/ast"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

// ProgramID lowers a read of the program index along a grid axis.
func ProgramID(axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.ValueFromIR(b.CreateGetProgramID(axis)), nil
}

// NumPrograms lowers a read of the grid size along an axis.
func NumPrograms(axis int, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.ValueFromIR(b.CreateGetNumPrograms(axis)), nil
}

// MultipleOf annotates the instruction computing x with the guarantee
// that its values are multiples of value.
func MultipleOf(x *ast.Value, value int64, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	inst, ok := x.IRValue().(ir.Instruction)
	if !ok {
		return nil, semerr.Errorf("multiple_of applies to instruction results only")
	}
	inst.SetMetadata(ir.MetadataMultipleOf, value)
	return x, nil
}

// MaxContiguous annotates the instruction computing x with the length
// of its contiguous runs.
func MaxContiguous(x *ast.Value, value int64, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	inst, ok := x.IRValue().(ir.Instruction)
	if !ok {
		return nil, semerr.Errorf("max_contiguous applies to instruction results only")
	}
	inst.SetMetadata(ir.MetadataMaxContiguous, value)
	return x, nil
}

// DebugBarrier lowers a program-wide synchronization barrier.
func DebugBarrier(ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	ret := b.CreateBarrier()
	return ctx.NewValue(ret, ctx.TypeFromIR(ret, ast.Signed)), nil
}
