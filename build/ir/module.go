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

import "slices"

// Module owns the functions of one compilation.
type Module struct {
	ctx   *Context
	funcs []*Function
}

// NewModule returns an empty module in the given type context.
func NewModule(ctx *Context) *Module {
	return &Module{ctx: ctx}
}

// Context returns the type pool of the module.
func (m *Module) Context() *Context { return m.ctx }

// Functions returns the functions of the module.
func (m *Module) Functions() []*Function { return m.funcs }

// Function returns the function with the given name, or nil.
func (m *Module) Function(name string) *Function {
	for _, f := range m.funcs {
		if f.name == name {
			return f
		}
	}
	return nil
}

// NewFunction creates a function of the given type in the module.
func (m *Module) NewFunction(name string, ty *Type) *Function {
	f := newFunction(m, name, ty)
	m.funcs = append(m.funcs, f)
	return f
}

// RemoveFunction removes a function from the module.
func (m *Module) RemoveFunction(f *Function) {
	at := slices.Index(m.funcs, f)
	if at < 0 {
		return
	}
	m.funcs = slices.Delete(m.funcs, at, at+1)
}
