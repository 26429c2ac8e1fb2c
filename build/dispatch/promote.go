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

func isFP64(t *ast.Type) bool { return t.IRType().Kind() == ir.FP64Kind }
func isFP32(t *ast.Type) bool { return t.IRType().Kind() == ir.FP32Kind }
func isFP16(t *ast.Type) bool { return t.IRType().Kind() == ir.FP16Kind }

// integerPromote reconciles two integer types to a single common one.
// Rules for signedness taken from "Usual arithmetic conversions" on
// https://en.cppreference.com/w/c/language/conversion.
func integerPromote(a, b *ast.Type) (*ast.Type, error) {
	aRank, bRank := a.Bitwidth(), b.Bitwidth()
	switch {
	case a.Signedness() == b.Signedness():
		if aRank > bRank {
			return a, nil
		}
		return b, nil
	case a.Signedness() == ast.Unsigned:
		if aRank >= bRank {
			return a, nil
		}
		return b, nil
	case b.Signedness() == ast.Unsigned:
		if bRank >= aRank {
			return b, nil
		}
		return a, nil
	}
	return nil, semerr.Unreachable("integer_promote")
}

// ComputationType returns the scalar type both operands of a binary
// arithmetic operation are implicitly converted to. divOrMod is true
// when lowering a division or a remainder, which have no native fp16
// form on the target and reject mixed integer signedness.
func ComputationType(a, b *ast.Type, divOrMod bool) (*ast.Type, error) {
	ctx := a.Context()
	// 1) if one operand is double, the other is implicitly
	//    converted to double
	if isFP64(a) || isFP64(b) {
		return ctx.FP64(), nil
	}
	// 2) if one operand is float, the other is implicitly
	//    converted to float
	if isFP32(a) || isFP32(b) {
		return ctx.FP32(), nil
	}
	// 3) if one operand is half, the other is implicitly converted to
	//    half, unless we're doing / or %, which do not exist natively
	//    for fp16 on the target
	if isFP16(a) || isFP16(b) {
		if divOrMod {
			return ctx.FP32(), nil
		}
		return ctx.FP16(), nil
	}
	if !a.IsInteger() || !b.IsInteger() {
		return nil, semerr.Unreachable("computation_type")
	}
	// 4) both operands are integer and undergo integer promotion
	if divOrMod && a.Signedness() != b.Signedness() {
		return nil, semerr.Errorf("Cannot use /, //, or %% with %s and %s because they have different signedness; this is unlikely to result in a useful answer. Cast them to the same signedness.", a, b)
	}
	return integerPromote(a, b)
}
