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

// Plus lowers a unary plus: the identity.
func Plus(input *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return input, nil
}

// Minus lowers a unary minus as 0 - input.
func Minus(input *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	inputSca := input.Type().ScalarType()
	if inputSca.IsPointer() {
		return nil, semerr.Errorf("wrong type argument to unary minus (%s)", inputSca)
	}
	zero := ctx.NewValue(ir.NullValue(inputSca.IRType()), inputSca)
	return Sub(zero, input, ctx, b)
}

// Invert lowers a bitwise complement as input xor ~0.
func Invert(input *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	inputSca := input.Type().ScalarType()
	if inputSca.IsPointer() || inputSca.IsFloating() {
		return nil, semerr.Errorf("wrong type argument to unary invert (%s)", inputSca)
	}
	ones := ctx.NewValue(ir.AllOnesValue(inputSca.IRType()), inputSca)
	return Xor(input, ones, ctx, b)
}
