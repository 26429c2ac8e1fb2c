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

func errIncompatibleTypes(a, b *ast.Type) error {
	return semerr.Errorf("invalid operands of type %s and %s", a, b)
}

// checkPtrType verifies the pointer constraints of a binary operation
// on the scalar types of its operands: a pointer is only legal where
// the operation allows one, never against another pointer of a
// different pointee, and never against a float.
func checkPtrType(a, b *ast.Type, allowPtrA bool) error {
	if !a.IsPointer() {
		return nil
	}
	if !allowPtrA {
		return errIncompatibleTypes(a, b)
	}
	// T* + U* with T != U
	if b.IsPointer() && a != b {
		return errIncompatibleTypes(a, b)
	}
	// T* + float
	if b.IsFloating() {
		return errIncompatibleTypes(a, b)
	}
	return nil
}

// binaryOpTypeChecking applies the common preamble of binary
// operations: implicit broadcasting, pointer checks, and, for
// arithmetic operations, implicit conversion of both operands to
// their computation type.
func binaryOpTypeChecking(lhs, rhs *ast.Value, ctx *ast.Context, b *ir.Builder,
	allowLhsPtr, allowRhsPtr, arithmeticCheck, divOrMod bool) (*ast.Value, *ast.Value, error) {
	// implicit broadcasting
	lhs, rhs, err := BroadcastPair(lhs, rhs, ctx, b)
	if err != nil {
		return nil, nil, err
	}
	// implicit typecasting
	lhsSca := lhs.Type().ScalarType()
	rhsSca := rhs.Type().ScalarType()
	if err := checkPtrType(lhsSca, rhsSca, allowLhsPtr); err != nil {
		return nil, nil, err
	}
	if err := checkPtrType(rhsSca, lhsSca, allowRhsPtr); err != nil {
		return nil, nil, err
	}
	if arithmeticCheck && !lhsSca.IsPointer() && !rhsSca.IsPointer() {
		retSca, err := ComputationType(lhsSca, rhsSca, divOrMod)
		if err != nil {
			return nil, nil, err
		}
		if lhs, err = Cast(lhs, retSca, ctx, b); err != nil {
			return nil, nil, err
		}
		if rhs, err = Cast(rhs, retSca, ctx, b); err != nil {
			return nil, nil, err
		}
	}
	return lhs, rhs, nil
}

// Add lowers an addition. One operand may be a pointer, in which case
// the other is an offset and the addition is pointer arithmetic.
func Add(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, true, true, true, false)
	if err != nil {
		return nil, err
	}
	inputSca := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	// offset + ptr is canonicalized to ptr + offset
	if otherSca.IsPointer() && !inputSca.IsPointer() {
		input, other = other, input
		inputSca, otherSca = otherSca, inputSca
	}
	retTy := input.Type()
	switch {
	case inputSca.IsPointer():
		return ctx.NewValue(b.CreateGEP(input.IRValue(), other.IRValue()), retTy), nil
	case inputSca.IsFloating():
		return ctx.NewValue(b.CreateFAdd(input.IRValue(), other.IRValue()), retTy), nil
	case inputSca.IsInteger():
		return ctx.NewValue(b.CreateAdd(input.IRValue(), other.IRValue()), retTy), nil
	}
	return nil, semerr.Unreachable("add")
}

// Sub lowers a subtraction. Only the left operand may be a pointer:
// ptr - offset is pointer arithmetic, offset - ptr is invalid.
func Sub(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, true, false, true, false)
	if err != nil {
		return nil, err
	}
	retTy := input.Type()
	inputSca := input.Type().ScalarType()
	switch {
	case inputSca.IsPointer():
		neg, err := Minus(other, ctx, b)
		if err != nil {
			return nil, err
		}
		return ctx.NewValue(b.CreateGEP(input.IRValue(), neg.IRValue()), retTy), nil
	case inputSca.IsFloating():
		return ctx.NewValue(b.CreateFSub(input.IRValue(), other.IRValue()), retTy), nil
	case inputSca.IsInteger():
		return ctx.NewValue(b.CreateSub(input.IRValue(), other.IRValue()), retTy), nil
	}
	return nil, semerr.Unreachable("sub")
}

// Mul lowers a multiplication.
func Mul(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, true, false)
	if err != nil {
		return nil, err
	}
	retTy := input.Type()
	scalarTy := input.Type().ScalarType()
	switch {
	case scalarTy.IsFloating():
		return ctx.NewValue(b.CreateFMul(input.IRValue(), other.IRValue()), retTy), nil
	case scalarTy.IsInteger():
		return ctx.NewValue(b.CreateMul(input.IRValue(), other.IRValue()), retTy), nil
	}
	return nil, semerr.Unreachable("mul")
}

// TrueDiv lowers a division that always produces a float: integer
// operands are converted to fp32, mixed operands to the float side,
// and float operands to the one with the widest mantissa.
func TrueDiv(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, true, true)
	if err != nil {
		return nil, err
	}
	inputSca := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	switch {
	// float / int
	case inputSca.IsFloating() && otherSca.IsInteger():
		if other, err = Cast(other, inputSca, ctx, b); err != nil {
			return nil, err
		}
	// int / float
	case inputSca.IsInteger() && otherSca.IsFloating():
		if input, err = Cast(input, otherSca, ctx, b); err != nil {
			return nil, err
		}
	// int / int (cast to fp32)
	case inputSca.IsInteger() && otherSca.IsInteger():
		if input, err = Cast(input, ctx.FP32(), ctx, b); err != nil {
			return nil, err
		}
		if other, err = Cast(other, ctx.FP32(), ctx, b); err != nil {
			return nil, err
		}
	// float / float (cast to the type with the widest mantissa)
	case inputSca.IsFloating() && otherSca.IsFloating():
		if inputSca.MantissaWidth() > otherSca.MantissaWidth() {
			other, err = Cast(other, inputSca, ctx, b)
		} else {
			input, err = Cast(input, otherSca, ctx, b)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, semerr.Unreachable("div")
	}
	return ctx.NewValue(b.CreateFDiv(input.IRValue(), other.IRValue()), input.Type()), nil
}

// FloorDiv lowers an integer division.
func FloorDiv(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, true, true)
	if err != nil {
		return nil, err
	}
	inputSca := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	if inputSca.IsInteger() && otherSca.IsInteger() {
		retTy, err := integerPromote(inputSca, otherSca)
		if err != nil {
			return nil, err
		}
		if input, err = Cast(input, retTy, ctx, b); err != nil {
			return nil, err
		}
		if other, err = Cast(other, retTy, ctx, b); err != nil {
			return nil, err
		}
		if retTy.Signed() {
			return ctx.NewValue(b.CreateSDiv(input.IRValue(), other.IRValue()), retTy), nil
		}
		return ctx.NewValue(b.CreateUDiv(input.IRValue(), other.IRValue()), retTy), nil
	}
	return nil, semerr.Unreachable("floordiv")
}

// FDiv lowers a float division. ieeeRounding requests IEEE rounding
// on the emitted instruction.
func FDiv(input, other *ast.Value, ieeeRounding bool, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	inputSca := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	if !inputSca.IsFloating() || !otherSca.IsFloating() {
		return nil, semerr.Errorf("both operands of fdiv must have floating point scalar type")
	}
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, false, true)
	if err != nil {
		return nil, err
	}
	ret := b.CreateFDiv(input.IRValue(), other.IRValue())
	ret.SetFDivIEEERounding(ieeeRounding)
	return ctx.NewValue(ret, input.Type()), nil
}

// Mod lowers a remainder. Integer operands must have the same
// signedness.
func Mod(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, true, true)
	if err != nil {
		return nil, err
	}
	retTy := input.Type()
	scalarTy := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	switch {
	// float % float
	case scalarTy.IsFloating():
		return ctx.NewValue(b.CreateFRem(input.IRValue(), other.IRValue()), retTy), nil
	// int % int
	case scalarTy.IsInteger():
		if scalarTy.Signedness() != otherSca.Signedness() {
			return nil, semerr.Errorf("Cannot mod %s by %s because they have different signedness; this is unlikely to result in a useful answer. Cast them to the same signedness.", scalarTy, otherSca)
		}
		if scalarTy.Signed() {
			return ctx.NewValue(b.CreateSRem(input.IRValue(), other.IRValue()), retTy), nil
		}
		return ctx.NewValue(b.CreateURem(input.IRValue(), other.IRValue()), retTy), nil
	}
	return nil, semerr.Unreachable("mod")
}

// bitwiseOpTypeChecking applies the preamble of bitwise operations:
// broadcasting, integer-only checking, and promotion of both operands
// to their common integer type.
func bitwiseOpTypeChecking(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, *ast.Value, error) {
	input, other, err := binaryOpTypeChecking(input, other, ctx, b, false, false, false, false)
	if err != nil {
		return nil, nil, err
	}
	inputSca := input.Type().ScalarType()
	otherSca := other.Type().ScalarType()
	if !inputSca.IsInteger() || !otherSca.IsInteger() {
		return nil, nil, errIncompatibleTypes(inputSca, otherSca)
	}
	retSca, err := integerPromote(inputSca, otherSca)
	if err != nil {
		return nil, nil, err
	}
	if retSca != inputSca {
		if input, err = Cast(input, retSca, ctx, b); err != nil {
			return nil, nil, err
		}
	}
	if retSca != otherSca {
		if other, err = Cast(other, retSca, ctx, b); err != nil {
			return nil, nil, err
		}
	}
	return input, other, nil
}

// And lowers a bitwise and.
func And(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := bitwiseOpTypeChecking(input, other, ctx, b)
	if err != nil {
		return nil, err
	}
	return ctx.NewValue(b.CreateAnd(input.IRValue(), other.IRValue()), input.Type()), nil
}

// Or lowers a bitwise or.
func Or(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := bitwiseOpTypeChecking(input, other, ctx, b)
	if err != nil {
		return nil, err
	}
	return ctx.NewValue(b.CreateOr(input.IRValue(), other.IRValue()), input.Type()), nil
}

// Xor lowers a bitwise exclusive or.
func Xor(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := bitwiseOpTypeChecking(input, other, ctx, b)
	if err != nil {
		return nil, err
	}
	return ctx.NewValue(b.CreateXor(input.IRValue(), other.IRValue()), input.Type()), nil
}

// Shl lowers a left shift.
func Shl(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := bitwiseOpTypeChecking(input, other, ctx, b)
	if err != nil {
		return nil, err
	}
	return ctx.NewValue(b.CreateShl(input.IRValue(), other.IRValue()), input.Type()), nil
}

// LShr lowers a logical right shift.
func LShr(input, other *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error) {
	input, other, err := bitwiseOpTypeChecking(input, other, ctx, b)
	if err != nil {
		return nil, err
	}
	return ctx.NewValue(b.CreateLShr(input.IRValue(), other.IRValue()), input.Type()), nil
}
