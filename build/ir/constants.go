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

package ir

// ConstantInt is an integer constant.
type ConstantInt struct {
	ty *Type
	v  int64
}

// NewConstantInt returns an integer constant of the given type.
func NewConstantInt(ty *Type, v int64) *ConstantInt {
	return &ConstantInt{ty: ty, v: v}
}

// Type of the constant.
func (c *ConstantInt) Type() *Type { return c.ty }

// Value of the constant.
func (c *ConstantInt) Value() int64 { return c.v }

// ConstantFloat is a floating point constant.
type ConstantFloat struct {
	ty *Type
	v  float64
}

// NewConstantFloat returns a float constant of the given type.
func NewConstantFloat(ty *Type, v float64) *ConstantFloat {
	return &ConstantFloat{ty: ty, v: v}
}

// Type of the constant.
func (c *ConstantFloat) Type() *Type { return c.ty }

// Value of the constant.
func (c *ConstantFloat) Value() float64 { return c.v }

// Undef is an undefined value of a given type.
type Undef struct {
	ty *Type
}

// NewUndef returns an undefined value of the given type.
func NewUndef(ty *Type) *Undef {
	return &Undef{ty: ty}
}

// Type of the value.
func (u *Undef) Type() *Type { return u.ty }

// NullValue returns the zero constant of a scalar type.
// Types without a numeric zero yield an undefined value.
func NullValue(ty *Type) Value {
	switch {
	case ty.IsInteger():
		return NewConstantInt(ty, 0)
	case ty.IsFloating():
		return NewConstantFloat(ty, 0)
	}
	return NewUndef(ty)
}

// AllOnesValue returns the constant of a scalar integer type
// with every bit set.
func AllOnesValue(ty *Type) Value {
	if ty.IsInteger() {
		return NewConstantInt(ty, -1)
	}
	return NewUndef(ty)
}
