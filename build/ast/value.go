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

package ast

import "github.com/apd10/triton/build/ir"

// Value is the frontend view of an IR value: the generated value
// paired with its frontend type. The IR module owns the IR value;
// the context owns the frontend value and its type.
type Value struct {
	ir  ir.Value
	typ *Type
}

// IRValue returns the generated IR value.
func (v *Value) IRValue() ir.Value { return v.ir }

// Type returns the frontend type of the value.
func (v *Value) Type() *Type { return v.typ }
