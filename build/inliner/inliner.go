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

// Package inliner splices called function bodies into their call
// sites and removes the callees from the module.
//
// The caller must ensure the module holds no recursion, direct or
// indirect: inlining a function reachable from itself does not
// terminate.
package inliner

import (
	"github.com/apd10/triton/base/ordered"
	"github.com/apd10/triton/build/ir"
)

// Run inlines every call site of the module, callee by callee, and
// removes each callee once all its sites are gone. Call sites
// discovered while cloning are inlined as well.
func Run(m *ir.Module) {
	b := ir.NewBuilder(m.Context())
	// gather all call sites
	callsites := ordered.NewMap[*ir.Function, []*ir.Call]()
	for _, fn := range m.Functions() {
		for _, block := range fn.Blocks() {
			for _, inst := range block.Instructions() {
				if call, ok := inst.(*ir.Call); ok {
					record(callsites, call)
				}
			}
		}
	}
	// replace call sites with function bodies, one by one
	for i := 0; i < callsites.Size(); i++ {
		fn, _ := callsites.At(i)
		for j := 0; ; j++ {
			sites, _ := callsites.Load(fn)
			if j >= len(sites) {
				break
			}
			inline(fn, sites[j], b, callsites)
		}
		m.RemoveFunction(fn)
	}
}

func record(callsites *ordered.Map[*ir.Function, []*ir.Call], call *ir.Call) {
	sites, _ := callsites.Load(call.Callee())
	callsites.Store(call.Callee(), append(sites, call))
}

// inline splices the body of fn into the site of callsite.
//
// The block holding the call is split right before it: the prefix
// becomes the entry block of the inlined body, and the suffix resumes
// the parent function after the call. A phi at the top of the suffix
// joins the values of the cloned returns, each rewritten as a branch
// to the suffix.
func inline(fn *ir.Function, callsite *ir.Call, b *ir.Builder, callsites *ordered.Map[*ir.Function, []*ir.Call]) {
	parentBlock := callsite.Parent()
	parentFn := parentBlock.Parent()
	entry := parentBlock.SplitBefore(callsite, fn.Name())
	exit := entry.Successors()[0]
	newBlocks := []*ir.BasicBlock{entry}
	for _, block := range fn.Blocks()[1:] {
		newBlocks = append(newBlocks, ir.NewBlock(fn.Name()+"_"+block.Name(), parentFn))
	}
	// a phi node holds the return values of the inlined function
	b.SetInsertPointBefore(exit.FirstNonPhi())
	exitVal := b.CreatePhi(fn.ReturnType())
	tgtArgs := callsite.Args()
	srcArgs := fn.Args()
	// Remove the branch created by the split: the entry block ends
	// with the cloned body instead.
	entry.Terminator().EraseFromParent()
	// Clone all instructions, substituting callee blocks and formal
	// arguments, and turning each return into a branch to the exit
	// block with an incoming value on the phi.
	valueMap := make(map[ir.Value]ir.Value)
	var newInsts []ir.Instruction
	for i, oldBlock := range fn.Blocks() {
		newBlock := newBlocks[i]
		b.SetInsertPointAtEnd(newBlock)
		for _, oldInst := range oldBlock.Instructions() {
			var newInst ir.Instruction
			if ret, ok := oldInst.(*ir.Return); ok {
				newInst = ir.NewBranch(fn.Module().Context(), exit)
				if retVal := ret.Value(); retVal != nil {
					exitVal.AddIncoming(retVal, newBlock)
				}
			} else {
				newInst = oldInst.Clone()
				valueMap[oldInst] = newInst
			}
			if call, ok := newInst.(*ir.Call); ok {
				record(callsites, call)
			}
			for k, oldBlk := range fn.Blocks() {
				newInst.ReplaceUsesOfWith(oldBlk, newBlocks[k])
			}
			for k, arg := range srcArgs {
				newInst.ReplaceUsesOfWith(arg, tgtArgs[k])
			}
			b.Insert(newInst)
			newInsts = append(newInsts, newInst)
		}
	}
	// Rewire uses of the callee instructions to their clones. A
	// second pass so that uses ahead of their definition, as in phi
	// back edges, resolve too.
	for _, inst := range newInsts {
		for _, op := range inst.Operands() {
			if cloned, ok := valueMap[op]; ok {
				inst.ReplaceUsesOfWith(op, cloned)
			}
		}
	}
	for _, op := range exitVal.Operands() {
		if cloned, ok := valueMap[op]; ok {
			exitVal.ReplaceUsesOfWith(op, cloned)
		}
	}
	for k, arg := range srcArgs {
		exitVal.ReplaceUsesOfWith(arg, tgtArgs[k])
	}
	// The call is now computed by the phi.
	for _, block := range parentFn.Blocks() {
		for _, inst := range block.Instructions() {
			inst.ReplaceUsesOfWith(callsite, exitVal)
		}
	}
	callsite.EraseFromParent()
	// done -- leave the insertion point on the exit block
	b.SetInsertPointAtEnd(exit)
}
