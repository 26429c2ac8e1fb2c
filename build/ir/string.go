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
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// printer writes the textual form of a function, numbering the
// values it defines in order of appearance.
type printer struct {
	sb    strings.Builder
	names map[Value]string
	next  int
}

// String returns a deterministic textual dump of the module.
func (m *Module) String() string {
	var sb strings.Builder
	for i, f := range m.funcs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}

// String returns a deterministic textual dump of the function.
func (f *Function) String() string {
	p := &printer{names: make(map[Value]string)}
	params := make([]string, len(f.args))
	for i, arg := range f.args {
		p.names[arg] = "%" + arg.name
		params[i] = fmt.Sprintf("%s %%%s", arg.ty, arg.name)
	}
	fmt.Fprintf(&p.sb, "def @%s(%s) {\n", f.name, strings.Join(params, ", "))
	for _, blk := range f.blocks {
		fmt.Fprintf(&p.sb, "%s:\n", blk.name)
		for _, inst := range blk.insts {
			p.printInst(inst)
		}
	}
	p.sb.WriteString("}\n")
	return p.sb.String()
}

// value returns the printed form of an operand.
func (p *printer) value(v Value) string {
	switch v := v.(type) {
	case *ConstantInt:
		return fmt.Sprintf("%s %d", v.ty, v.v)
	case *ConstantFloat:
		return fmt.Sprintf("%s %g", v.ty, v.v)
	case *Undef:
		return "undef " + v.ty.String()
	case *BasicBlock:
		return "label %" + v.name
	case *Function:
		return "@" + v.name
	}
	name, ok := p.names[v]
	if !ok {
		name = fmt.Sprintf("%%%d", p.next)
		p.next++
		p.names[v] = name
	}
	return name
}

func (p *printer) printInst(inst Instruction) {
	ops := make([]string, len(inst.Operands()))
	for i, op := range inst.Operands() {
		ops[i] = p.value(op)
	}
	opcode := opcodeString(inst)
	p.sb.WriteString("  ")
	if !inst.Type().IsVoid() {
		fmt.Fprintf(&p.sb, "%s = ", p.value(inst))
	}
	p.sb.WriteString(opcode)
	if len(ops) > 0 {
		p.sb.WriteString(" " + strings.Join(ops, ", "))
	}
	if !inst.Type().IsVoid() {
		fmt.Fprintf(&p.sb, " : %s", inst.Type())
	}
	if md := metadataString(inst); md != "" {
		p.sb.WriteString(" ; " + md)
	}
	p.sb.WriteString("\n")
}

func opcodeString(inst Instruction) string {
	switch inst := inst.(type) {
	case *BinaryOp:
		if inst.op == FDiv && inst.fdivIEEERounding {
			return "fdiv.ieee"
		}
		return inst.op.String()
	case *ICmp:
		return "icmp " + inst.pred.String()
	case *FCmp:
		return "fcmp " + inst.pred.String()
	case *Cast:
		return inst.kind.String()
	case *GEP:
		return "gep"
	case *Load:
		return "load" + loadSuffix(inst.cache, inst.volatile)
	case *MaskedLoad:
		return "masked_load" + loadSuffix(inst.cache, inst.volatile)
	case *Store:
		return "store"
	case *MaskedStore:
		return "masked_store"
	case *AtomicCAS:
		return "atomic_cas"
	case *AtomicRMW:
		return "atomic_rmw " + inst.op.String()
	case *Splat:
		return "splat " + inst.shape.String()
	case *Broadcast:
		return "broadcast " + inst.shape.String()
	case *Reshape:
		return "reshape " + inst.shape.String()
	case *Cat:
		return "cat"
	case *Range:
		return fmt.Sprintf("range %d, %d", inst.start, inst.end)
	case *Dot:
		if inst.allowTF32 {
			return "dot.tf32"
		}
		return "dot"
	case *Reduce:
		return fmt.Sprintf("reduce %s axis=%d", inst.op, inst.axis)
	case *Select:
		return "select"
	case *Phi:
		return "phi"
	case *Branch:
		return "br"
	case *CondBranch:
		return "cond_br"
	case *Return:
		return "ret"
	case *Call:
		return "call"
	case *Barrier:
		return "barrier"
	case *GetProgramID:
		return fmt.Sprintf("get_program_id axis=%d", inst.axis)
	case *GetNumPrograms:
		return fmt.Sprintf("get_num_programs axis=%d", inst.axis)
	case *Unary:
		return inst.op.String()
	case *UMulHi:
		return "umulhi"
	}
	return "<unknown>"
}

func loadSuffix(cache CacheModifier, volatile bool) string {
	s := cache.String()
	if volatile {
		s += ".volatile"
	}
	return s
}

func metadataString(inst Instruction) string {
	md := inst.base().md
	if len(md) == 0 {
		return ""
	}
	kinds := maps.Keys(md)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", kind, md[kind])
	}
	return strings.Join(parts, " ")
}
