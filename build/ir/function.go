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

import (
	"fmt"
	"slices"
)

// Argument is a formal parameter of a function.
type Argument struct {
	name   string
	ty     *Type
	parent *Function
	index  int
}

// Type of the argument.
func (a *Argument) Type() *Type { return a.ty }

// Name of the argument.
func (a *Argument) Name() string { return a.name }

// Parent returns the function declaring the argument.
func (a *Argument) Parent() *Function { return a.parent }

// Index of the argument in the function signature.
func (a *Argument) Index() int { return a.index }

// Function is a sequence of basic blocks. The first block is the
// entry block. A function is a value so that calls can use it as an
// operand.
type Function struct {
	name   string
	ty     *Type
	args   []*Argument
	blocks []*BasicBlock
	module *Module
}

// Type of the function.
func (f *Function) Type() *Type { return f.ty }

// Name of the function.
func (f *Function) Name() string { return f.name }

// Module returns the module owning the function.
func (f *Function) Module() *Module { return f.module }

// Args returns the formal parameters of the function.
func (f *Function) Args() []*Argument { return f.args }

// Blocks returns the basic blocks of the function.
func (f *Function) Blocks() []*BasicBlock { return f.blocks }

// ReturnType returns the return type of the function.
func (f *Function) ReturnType() *Type { return f.ty.ReturnType() }

func (f *Function) insertBlockBefore(blk, before *BasicBlock) {
	at := slices.Index(f.blocks, before)
	if at < 0 {
		at = len(f.blocks)
	}
	f.blocks = slices.Insert(f.blocks, at, blk)
}

func newFunction(m *Module, name string, ty *Type) *Function {
	f := &Function{name: name, ty: ty, module: m}
	for i, param := range ty.Params() {
		f.args = append(f.args, &Argument{
			name:   fmt.Sprintf("arg%d", i),
			ty:     param,
			parent: f,
			index:  i,
		})
	}
	return f
}
