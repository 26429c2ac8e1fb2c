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

// BasicBlock is a straight-line sequence of instructions ending with
// a terminator. Blocks are label-typed values so that control
// instructions can use them as operands.
type BasicBlock struct {
	name   string
	parent *Function
	insts  []Instruction
}

// NewBlock creates a block appended to the blocks of fn.
func NewBlock(name string, fn *Function) *BasicBlock {
	b := &BasicBlock{name: name, parent: fn}
	fn.blocks = append(fn.blocks, b)
	return b
}

// Type of the block: the label type.
func (b *BasicBlock) Type() *Type {
	return b.parent.Module().Context().LabelTy()
}

// Name of the block.
func (b *BasicBlock) Name() string { return b.name }

// Parent returns the function owning the block.
func (b *BasicBlock) Parent() *Function { return b.parent }

// Instructions returns the instruction list of the block.
func (b *BasicBlock) Instructions() []Instruction { return b.insts }

// Empty returns true if the block has no instruction.
func (b *BasicBlock) Empty() bool { return len(b.insts) == 0 }

// Terminator returns the instruction ending the block, or nil if the
// block does not end with a terminator.
func (b *BasicBlock) Terminator() Instruction {
	if len(b.insts) == 0 {
		return nil
	}
	last := b.insts[len(b.insts)-1]
	if !last.IsTerminator() {
		return nil
	}
	return last
}

// FirstNonPhi returns the first instruction of the block that is not
// a phi, or nil if the block only holds phis.
func (b *BasicBlock) FirstNonPhi() Instruction {
	for _, inst := range b.insts {
		if _, ok := inst.(*Phi); !ok {
			return inst
		}
	}
	return nil
}

// Successors returns the blocks control can jump to from this block.
func (b *BasicBlock) Successors() []*BasicBlock {
	term := b.Terminator()
	if term == nil {
		return nil
	}
	var succs []*BasicBlock
	for _, op := range term.Operands() {
		if blk, ok := op.(*BasicBlock); ok {
			succs = append(succs, blk)
		}
	}
	return succs
}

// SplitBefore cleaves the block immediately before inst. The
// instructions before inst move to a new block named name, inserted
// before this block in the function and terminated by a branch to
// this block. SplitBefore returns the new prefix block.
func (b *BasicBlock) SplitBefore(inst Instruction, name string) *BasicBlock {
	at := b.indexOf(inst)
	pre := &BasicBlock{name: name, parent: b.parent}
	b.parent.insertBlockBefore(pre, b)
	pre.insts = b.insts[:at:at]
	b.insts = b.insts[at:]
	for _, moved := range pre.insts {
		moved.base().parent = pre
	}
	pre.append(NewBranch(b.parent.Module().Context(), b))
	return pre
}

func (b *BasicBlock) indexOf(inst Instruction) int {
	return slices.IndexFunc(b.insts, func(i Instruction) bool { return i == inst })
}

func (b *BasicBlock) append(inst Instruction) {
	b.insertAt(len(b.insts), inst)
}

func (b *BasicBlock) insertAt(at int, inst Instruction) {
	base := inst.base()
	base.parent = b
	base.self = inst
	b.insts = slices.Insert(b.insts, at, inst)
}

func (b *BasicBlock) remove(inst Instruction) {
	at := b.indexOf(inst)
	if at < 0 {
		return
	}
	b.insts = slices.Delete(b.insts, at, at+1)
}
