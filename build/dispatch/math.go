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
)

// UMulHi lowers the upper half of the product of two integers.
func UMulHi(x, y *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	x, y, err := binaryOpTypeChecking(x, y, ctx, b, false, false, true, false)
	if err != nil {
		return nil, err
	}
	ret := b.Insert(ir.NewUMulHi(x.IRValue(), y.IRValue()))
	return ctx.NewValue(ret, x.Type()), nil
}

// Exp lowers an elementwise exponential.
func Exp(x *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.NewValue(b.CreateExp(x.IRValue()), x.Type()), nil
}

// Log lowers an elementwise natural logarithm.
func Log(x *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.NewValue(b.CreateLog(x.IRValue()), x.Type()), nil
}

// Cos lowers an elementwise cosine.
func Cos(x *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.NewValue(b.CreateCos(x.IRValue()), x.Type()), nil
}

// Sin lowers an elementwise sine.
func Sin(x *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.NewValue(b.CreateSin(x.IRValue()), x.Type()), nil
}

// Sqrt lowers an elementwise square root.
func Sqrt(x *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	return ctx.NewValue(b.CreateSqrt(x.IRValue()), x.Type()), nil
}
