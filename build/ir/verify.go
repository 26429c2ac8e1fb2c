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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Verify checks the structural invariants of a module and returns
// every defect found, combined into one error.
func Verify(m *Module) error {
	var errs error
	for _, f := range m.funcs {
		errs = multierr.Append(errs, verifyFunction(m, f))
	}
	return errs
}

func verifyFunction(m *Module, f *Function) error {
	var errs error
	appendf := func(format string, a ...any) {
		errs = multierr.Append(errs, errors.Errorf("function %s: "+format, append([]any{f.name}, a...)...))
	}
	if len(f.blocks) == 0 {
		appendf("no basic block")
		return errs
	}
	for _, blk := range f.blocks {
		if blk.parent != f {
			appendf("block %s has wrong parent", blk.name)
		}
		if len(blk.insts) == 0 {
			appendf("block %s is empty", blk.name)
			continue
		}
		if blk.Terminator() == nil {
			appendf("block %s does not end with a terminator", blk.name)
		}
		inPhis := true
		for k, inst := range blk.insts {
			if inst.Parent() != blk {
				appendf("block %s: instruction %d has wrong parent", blk.name, k)
			}
			if inst.IsTerminator() && k != len(blk.insts)-1 {
				appendf("block %s: terminator before the end of the block", blk.name)
			}
			phi, isPhi := inst.(*Phi)
			if isPhi {
				if !inPhis {
					appendf("block %s: phi after a non-phi instruction", blk.name)
				}
				if len(phi.ops)%2 != 0 {
					appendf("block %s: phi with unpaired incoming operands", blk.name)
				}
				for k := 0; k < phi.NumIncoming(); k++ {
					_, in := phi.Incoming(k)
					if in.parent != f {
						appendf("block %s: phi incoming from a foreign block %s", blk.name, in.name)
					}
				}
			} else {
				inPhis = false
			}
			if call, ok := inst.(*Call); ok {
				if m.Function(call.Callee().name) != call.Callee() {
					appendf("block %s: call to %s which is not in the module", blk.name, call.Callee().name)
				}
			}
			for _, op := range inst.Operands() {
				if opInst, ok := op.(Instruction); ok && opInst.Parent() == nil {
					appendf("block %s: use of an instruction removed from the function", blk.name)
				}
			}
		}
	}
	return errs
}
