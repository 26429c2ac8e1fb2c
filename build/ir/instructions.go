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

// BinOp identifies a binary arithmetic or bitwise operation.
type BinOp int

// Binary operations.
const (
	FAdd BinOp = iota
	FSub
	FMul
	FDiv
	FRem
	Add
	Sub
	Mul
	SDiv
	UDiv
	SRem
	URem
	And
	Or
	Xor
	Shl
	LShr
)

var binOpNames = map[BinOp]string{
	FAdd: "fadd", FSub: "fsub", FMul: "fmul", FDiv: "fdiv", FRem: "frem",
	Add: "add", Sub: "sub", Mul: "mul", SDiv: "sdiv", UDiv: "udiv",
	SRem: "srem", URem: "urem", And: "and", Or: "or", Xor: "xor",
	Shl: "shl", LShr: "lshr",
}

func (op BinOp) String() string { return binOpNames[op] }

// BinaryOp computes an arithmetic or bitwise operation
// over two operands of the same type.
type BinaryOp struct {
	instr
	op BinOp

	fdivIEEERounding bool
}

// NewBinaryOp returns a binary instruction. The result type is the
// type of the left operand.
func NewBinaryOp(op BinOp, lhs, rhs Value) *BinaryOp {
	return &BinaryOp{instr: newInstr(lhs.Type(), lhs, rhs), op: op}
}

// Op returns the operation computed by the instruction.
func (i *BinaryOp) Op() BinOp { return i.op }

// LHS returns the left operand.
func (i *BinaryOp) LHS() Value { return i.ops[0] }

// RHS returns the right operand.
func (i *BinaryOp) RHS() Value { return i.ops[1] }

// SetFDivIEEERounding requests IEEE rounding on a float division.
func (i *BinaryOp) SetFDivIEEERounding(ieee bool) { i.fdivIEEERounding = ieee }

// FDivIEEERounding returns true if IEEE rounding was requested.
func (i *BinaryOp) FDivIEEERounding() bool { return i.fdivIEEERounding }

// Clone returns a parentless copy of the instruction.
func (i *BinaryOp) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// IntPredicate is an integer comparison predicate.
type IntPredicate int

// Integer comparison predicates.
const (
	IntEQ IntPredicate = iota
	IntNE
	IntSGT
	IntSGE
	IntSLT
	IntSLE
	IntUGT
	IntUGE
	IntULT
	IntULE
)

var intPredNames = map[IntPredicate]string{
	IntEQ: "eq", IntNE: "ne", IntSGT: "sgt", IntSGE: "sge", IntSLT: "slt",
	IntSLE: "sle", IntUGT: "ugt", IntUGE: "uge", IntULT: "ult", IntULE: "ule",
}

func (p IntPredicate) String() string { return intPredNames[p] }

// FloatPredicate is a float comparison predicate.
type FloatPredicate int

// Float comparison predicates. All comparisons are ordered except
// the not-equal one.
const (
	FloatOEQ FloatPredicate = iota
	FloatUNE
	FloatOGT
	FloatOGE
	FloatOLT
	FloatOLE
)

var floatPredNames = map[FloatPredicate]string{
	FloatOEQ: "oeq", FloatUNE: "une", FloatOGT: "ogt",
	FloatOGE: "oge", FloatOLT: "olt", FloatOLE: "ole",
}

func (p FloatPredicate) String() string { return floatPredNames[p] }

// cmpType returns the i1 result type of a comparison, elementwise
// over blocks.
func cmpType(ctx *Context, operand Value) *Type {
	ty := operand.Type()
	if ty.IsBlock() {
		return ctx.BlockTy(ctx.Int1Ty(), ty.BlockShape())
	}
	return ctx.Int1Ty()
}

// ICmp compares two integer or pointer operands.
type ICmp struct {
	instr
	pred IntPredicate
}

// NewICmp returns an integer comparison instruction.
func NewICmp(ctx *Context, pred IntPredicate, lhs, rhs Value) *ICmp {
	return &ICmp{instr: newInstr(cmpType(ctx, lhs), lhs, rhs), pred: pred}
}

// Predicate of the comparison.
func (i *ICmp) Predicate() IntPredicate { return i.pred }

// Clone returns a parentless copy of the instruction.
func (i *ICmp) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// FCmp compares two floating point operands.
type FCmp struct {
	instr
	pred FloatPredicate
}

// NewFCmp returns a float comparison instruction.
func NewFCmp(ctx *Context, pred FloatPredicate, lhs, rhs Value) *FCmp {
	return &FCmp{instr: newInstr(cmpType(ctx, lhs), lhs, rhs), pred: pred}
}

// Predicate of the comparison.
func (i *FCmp) Predicate() FloatPredicate { return i.pred }

// Clone returns a parentless copy of the instruction.
func (i *FCmp) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// CastKind identifies a cast operation.
type CastKind int

// Cast operations.
const (
	FPTrunc CastKind = iota
	FPExt
	FPToUI
	FPToSI
	UIToFP
	SIToFP
	Trunc
	ZExt
	SExt
	BitCast
	PtrToInt
	IntToPtr
)

var castKindNames = map[CastKind]string{
	FPTrunc: "fp_trunc", FPExt: "fp_ext", FPToUI: "fp_to_ui", FPToSI: "fp_to_si",
	UIToFP: "ui_to_fp", SIToFP: "si_to_fp", Trunc: "trunc", ZExt: "zext",
	SExt: "sext", BitCast: "bitcast", PtrToInt: "ptr_to_int", IntToPtr: "int_to_ptr",
}

func (k CastKind) String() string { return castKindNames[k] }

// Cast converts a value to a destination type.
type Cast struct {
	instr
	kind CastKind
}

// NewCast returns a cast instruction to the given type.
func NewCast(kind CastKind, v Value, to *Type) *Cast {
	return &Cast{instr: newInstr(to, v), kind: kind}
}

// CastKind returns the conversion performed by the instruction.
func (i *Cast) CastKind() CastKind { return i.kind }

// Clone returns a parentless copy of the instruction.
func (i *Cast) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// GEP computes a pointer from a base pointer and element offsets.
type GEP struct {
	instr
}

// NewGEP returns a pointer arithmetic instruction. The result has the
// type of the base pointer.
func NewGEP(ptr Value, indices ...Value) *GEP {
	ops := append([]Value{ptr}, indices...)
	return &GEP{instr: newInstr(ptr.Type(), ops...)}
}

// Pointer returns the base pointer.
func (i *GEP) Pointer() Value { return i.ops[0] }

// Indices returns the element offsets.
func (i *GEP) Indices() []Value { return i.ops[1:] }

// Clone returns a parentless copy of the instruction.
func (i *GEP) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// CacheModifier controls the caching behavior of a load.
type CacheModifier int

// Cache modifiers.
const (
	CacheNone CacheModifier = iota
	CacheCA
	CacheCG
)

func (m CacheModifier) String() string {
	switch m {
	case CacheCA:
		return ".ca"
	case CacheCG:
		return ".cg"
	}
	return ""
}

// Load reads a value through a pointer.
type Load struct {
	instr
	cache    CacheModifier
	volatile bool
}

// NewLoad returns a load instruction.
func NewLoad(ctx *Context, ptr Value, cache CacheModifier, volatile bool) *Load {
	return &Load{instr: newInstr(pointeeType(ctx, ptr), ptr), cache: cache, volatile: volatile}
}

// Cache returns the cache modifier of the load.
func (i *Load) Cache() CacheModifier { return i.cache }

// Volatile returns true for a volatile load.
func (i *Load) Volatile() bool { return i.volatile }

// Clone returns a parentless copy of the instruction.
func (i *Load) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// pointeeType returns the type read through ptr, elementwise over
// blocks of pointers.
func pointeeType(ctx *Context, ptr Value) *Type {
	ty := ptr.Type()
	if ty.IsBlock() {
		return ctx.BlockTy(ty.Scalar().PointerElem(), ty.BlockShape())
	}
	return ty.PointerElem()
}

// MaskedLoad reads a value through a pointer on active mask lanes,
// producing the off-lane value elsewhere.
type MaskedLoad struct {
	instr
	cache    CacheModifier
	volatile bool
}

// NewMaskedLoad returns a masked load instruction.
func NewMaskedLoad(ctx *Context, ptr, mask, other Value, cache CacheModifier, volatile bool) *MaskedLoad {
	return &MaskedLoad{instr: newInstr(pointeeType(ctx, ptr), ptr, mask, other), cache: cache, volatile: volatile}
}

// Cache returns the cache modifier of the load.
func (i *MaskedLoad) Cache() CacheModifier { return i.cache }

// Volatile returns true for a volatile load.
func (i *MaskedLoad) Volatile() bool { return i.volatile }

// Clone returns a parentless copy of the instruction.
func (i *MaskedLoad) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Store writes a value through a pointer.
type Store struct {
	instr
}

// NewStore returns a store instruction.
func NewStore(ctx *Context, ptr, val Value) *Store {
	return &Store{instr: newInstr(ctx.VoidTy(), ptr, val)}
}

// Clone returns a parentless copy of the instruction.
func (i *Store) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// MaskedStore writes a value through a pointer on active mask lanes.
type MaskedStore struct {
	instr
}

// NewMaskedStore returns a masked store instruction.
func NewMaskedStore(ctx *Context, ptr, val, mask Value) *MaskedStore {
	return &MaskedStore{instr: newInstr(ctx.VoidTy(), ptr, val, mask)}
}

// Clone returns a parentless copy of the instruction.
func (i *MaskedStore) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// AtomicCAS is an atomic compare-and-swap.
type AtomicCAS struct {
	instr
}

// NewAtomicCAS returns an atomic compare-and-swap instruction.
func NewAtomicCAS(ptr, cmp, val Value) *AtomicCAS {
	return &AtomicCAS{instr: newInstr(val.Type(), ptr, cmp, val)}
}

// Clone returns a parentless copy of the instruction.
func (i *AtomicCAS) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// AtomicOp identifies an atomic read-modify-write operation.
type AtomicOp int

// Atomic read-modify-write operations.
const (
	AtomicAdd AtomicOp = iota
	AtomicFAdd
	AtomicSub
	AtomicAnd
	AtomicOr
	AtomicXor
	AtomicMax
	AtomicMin
	AtomicUMax
	AtomicUMin
	AtomicXchg
)

var atomicOpNames = map[AtomicOp]string{
	AtomicAdd: "add", AtomicFAdd: "fadd", AtomicSub: "sub", AtomicAnd: "and",
	AtomicOr: "or", AtomicXor: "xor", AtomicMax: "max", AtomicMin: "min",
	AtomicUMax: "umax", AtomicUMin: "umin", AtomicXchg: "xchg",
}

func (op AtomicOp) String() string { return atomicOpNames[op] }

// AtomicRMW is an atomic read-modify-write on active mask lanes.
type AtomicRMW struct {
	instr
	op AtomicOp
}

// NewAtomicRMW returns an atomic read-modify-write instruction.
func NewAtomicRMW(op AtomicOp, ptr, val, mask Value) *AtomicRMW {
	return &AtomicRMW{instr: newInstr(val.Type(), ptr, val, mask), op: op}
}

// Op returns the read-modify-write operation.
func (i *AtomicRMW) Op() AtomicOp { return i.op }

// Clone returns a parentless copy of the instruction.
func (i *AtomicRMW) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Splat broadcasts a scalar to every element of a block.
type Splat struct {
	instr
	shape Shape
}

// NewSplat returns a splat instruction.
func NewSplat(ctx *Context, v Value, shape Shape) *Splat {
	return &Splat{instr: newInstr(ctx.BlockTy(v.Type(), shape), v), shape: shape.clone()}
}

// Shape of the resulting block.
func (i *Splat) Shape() Shape { return i.shape }

// Clone returns a parentless copy of the instruction.
func (i *Splat) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Broadcast extends size-1 dimensions of a block to a target shape.
type Broadcast struct {
	instr
	shape Shape
}

// NewBroadcast returns a broadcast instruction.
func NewBroadcast(ctx *Context, v Value, shape Shape) *Broadcast {
	return &Broadcast{instr: newInstr(ctx.BlockTy(v.Type().Scalar(), shape), v), shape: shape.clone()}
}

// Shape of the resulting block.
func (i *Broadcast) Shape() Shape { return i.shape }

// Clone returns a parentless copy of the instruction.
func (i *Broadcast) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Reshape reinterprets a block under a new shape with the same
// number of elements.
type Reshape struct {
	instr
	shape Shape
}

// NewReshape returns a reshape instruction.
func NewReshape(ctx *Context, v Value, shape Shape) *Reshape {
	return &Reshape{instr: newInstr(ctx.BlockTy(v.Type().Scalar(), shape), v), shape: shape.clone()}
}

// Shape of the resulting block.
func (i *Reshape) Shape() Shape { return i.shape }

// Clone returns a parentless copy of the instruction.
func (i *Reshape) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Cat concatenates two blocks along their first dimension.
type Cat struct {
	instr
}

// NewCat returns a concatenation instruction.
func NewCat(ctx *Context, lhs, rhs Value) *Cat {
	shape := lhs.Type().BlockShape().clone()
	shape[0] += rhs.Type().BlockShape()[0]
	return &Cat{instr: newInstr(ctx.BlockTy(lhs.Type().Scalar(), shape), lhs, rhs)}
}

// Clone returns a parentless copy of the instruction.
func (i *Cat) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Range produces the block of consecutive int32 values [start, end).
type Range struct {
	instr
	start, end int32
}

// NewRange returns a range instruction.
func NewRange(ctx *Context, start, end int32) *Range {
	ty := ctx.BlockTy(ctx.Int32Ty(), Shape{int64(end - start)})
	return &Range{instr: newInstr(ty), start: start, end: end}
}

// Start of the range.
func (i *Range) Start() int32 { return i.start }

// End of the range, excluded.
func (i *Range) End() int32 { return i.end }

// Clone returns a parentless copy of the instruction.
func (i *Range) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Dot is a 2D matrix multiplication accumulating into a block.
type Dot struct {
	instr
	allowTF32 bool
}

// NewDot returns a matrix multiplication instruction. The result has
// the type of the accumulator.
func NewDot(a, b, acc Value, allowTF32 bool) *Dot {
	return &Dot{instr: newInstr(acc.Type(), a, b, acc), allowTF32: allowTF32}
}

// AllowTF32 returns true if the target may use tf32 execution.
func (i *Dot) AllowTF32() bool { return i.allowTF32 }

// Clone returns a parentless copy of the instruction.
func (i *Dot) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// ReduceOp identifies a reduction operation.
type ReduceOp int

// Reduction operations. Each reduction is emitted with the float or
// the integer variant matching its operand element type.
const (
	ReduceFAdd ReduceOp = iota
	ReduceAdd
	ReduceFMin
	ReduceMin
	ReduceFMax
	ReduceMax
	ReduceXor
)

var reduceOpNames = map[ReduceOp]string{
	ReduceFAdd: "fadd", ReduceAdd: "add", ReduceFMin: "fmin", ReduceMin: "min",
	ReduceFMax: "fmax", ReduceMax: "max", ReduceXor: "xor",
}

func (op ReduceOp) String() string { return reduceOpNames[op] }

// Reduce folds a block along one axis.
type Reduce struct {
	instr
	op   ReduceOp
	axis int
}

// NewReduce returns a reduce instruction. The result drops the
// reduced axis, down to a scalar for rank-1 operands.
func NewReduce(ctx *Context, v Value, op ReduceOp, axis int) *Reduce {
	src := v.Type().BlockShape()
	var shape Shape
	for i, dim := range src {
		if i == axis {
			continue
		}
		shape = append(shape, dim)
	}
	ty := v.Type().Scalar()
	if len(shape) > 0 {
		ty = ctx.BlockTy(ty, shape)
	}
	return &Reduce{instr: newInstr(ty, v), op: op, axis: axis}
}

// Op returns the reduction operation.
func (i *Reduce) Op() ReduceOp { return i.op }

// Axis returns the reduced axis.
func (i *Reduce) Axis() int { return i.axis }

// Clone returns a parentless copy of the instruction.
func (i *Reduce) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Select picks between two values with a condition.
type Select struct {
	instr
}

// NewSelect returns a select instruction.
func NewSelect(cond, x, y Value) *Select {
	return &Select{instr: newInstr(x.Type(), cond, x, y)}
}

// Clone returns a parentless copy of the instruction.
func (i *Select) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Phi joins values flowing from the predecessors of a block.
// Operands alternate between an incoming value and its block.
type Phi struct {
	instr
}

// NewPhi returns an empty phi instruction of the given type.
func NewPhi(ty *Type) *Phi {
	return &Phi{instr: newInstr(ty)}
}

// AddIncoming records the value produced when control comes from block.
func (i *Phi) AddIncoming(v Value, block *BasicBlock) {
	i.ops = append(i.ops, v, block)
}

// NumIncoming returns the number of recorded incoming values.
func (i *Phi) NumIncoming() int { return len(i.ops) / 2 }

// Incoming returns the k-th incoming value and its block.
func (i *Phi) Incoming(k int) (Value, *BasicBlock) {
	return i.ops[2*k], i.ops[2*k+1].(*BasicBlock)
}

// Clone returns a parentless copy of the instruction.
func (i *Phi) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Branch is an unconditional jump ending a block.
type Branch struct {
	instr
}

// NewBranch returns a branch instruction.
func NewBranch(ctx *Context, target *BasicBlock) *Branch {
	return &Branch{instr: newInstr(ctx.VoidTy(), target)}
}

// Target returns the destination block.
func (i *Branch) Target() *BasicBlock { return i.ops[0].(*BasicBlock) }

// IsTerminator returns true: a branch ends its block.
func (i *Branch) IsTerminator() bool { return true }

// Clone returns a parentless copy of the instruction.
func (i *Branch) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// CondBranch is a two-way conditional jump ending a block.
type CondBranch struct {
	instr
}

// NewCondBranch returns a conditional branch instruction.
func NewCondBranch(ctx *Context, cond Value, then, els *BasicBlock) *CondBranch {
	return &CondBranch{instr: newInstr(ctx.VoidTy(), cond, then, els)}
}

// Cond returns the branch condition.
func (i *CondBranch) Cond() Value { return i.ops[0] }

// Then returns the block taken on a true condition.
func (i *CondBranch) Then() *BasicBlock { return i.ops[1].(*BasicBlock) }

// Else returns the block taken on a false condition.
func (i *CondBranch) Else() *BasicBlock { return i.ops[2].(*BasicBlock) }

// IsTerminator returns true: a conditional branch ends its block.
func (i *CondBranch) IsTerminator() bool { return true }

// Clone returns a parentless copy of the instruction.
func (i *CondBranch) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Return ends a function, optionally producing a value.
type Return struct {
	instr
}

// NewReturn returns a return instruction. v may be nil for a void
// return.
func NewReturn(ctx *Context, v Value) *Return {
	if v == nil {
		return &Return{instr: newInstr(ctx.VoidTy())}
	}
	return &Return{instr: newInstr(ctx.VoidTy(), v)}
}

// Value returns the returned value, or nil for a void return.
func (i *Return) Value() Value {
	if len(i.ops) == 0 {
		return nil
	}
	return i.ops[0]
}

// IsTerminator returns true: a return ends its block.
func (i *Return) IsTerminator() bool { return true }

// Clone returns a parentless copy of the instruction.
func (i *Return) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Call invokes a function. The callee is the first operand so that
// inlining can rewrite it like any other use.
type Call struct {
	instr
}

// NewCall returns a call instruction.
func NewCall(callee *Function, args ...Value) *Call {
	ops := append([]Value{callee}, args...)
	return &Call{instr: newInstr(callee.ReturnType(), ops...)}
}

// Callee returns the called function.
func (i *Call) Callee() *Function { return i.ops[0].(*Function) }

// Args returns the actual arguments of the call.
func (i *Call) Args() []Value { return i.ops[1:] }

// Clone returns a parentless copy of the instruction.
func (i *Call) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// Barrier synchronizes all threads of a program.
type Barrier struct {
	instr
}

// NewBarrier returns a barrier instruction.
func NewBarrier(ctx *Context) *Barrier {
	return &Barrier{instr: newInstr(ctx.VoidTy())}
}

// Clone returns a parentless copy of the instruction.
func (i *Barrier) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// GetProgramID reads the program index along a grid axis.
type GetProgramID struct {
	instr
	axis int
}

// NewGetProgramID returns a program id instruction.
func NewGetProgramID(ctx *Context, axis int) *GetProgramID {
	return &GetProgramID{instr: newInstr(ctx.Int32Ty()), axis: axis}
}

// Axis returns the grid axis.
func (i *GetProgramID) Axis() int { return i.axis }

// Clone returns a parentless copy of the instruction.
func (i *GetProgramID) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// GetNumPrograms reads the grid size along an axis.
type GetNumPrograms struct {
	instr
	axis int
}

// NewGetNumPrograms returns a grid size instruction.
func NewGetNumPrograms(ctx *Context, axis int) *GetNumPrograms {
	return &GetNumPrograms{instr: newInstr(ctx.Int32Ty()), axis: axis}
}

// Axis returns the grid axis.
func (i *GetNumPrograms) Axis() int { return i.axis }

// Clone returns a parentless copy of the instruction.
func (i *GetNumPrograms) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// UnaryOp identifies an elementwise math intrinsic.
type UnaryOp int

// Math intrinsics.
const (
	Exp UnaryOp = iota
	Log
	Cos
	Sin
	Sqrt
)

var unaryOpNames = map[UnaryOp]string{
	Exp: "exp", Log: "log", Cos: "cos", Sin: "sin", Sqrt: "sqrt",
}

func (op UnaryOp) String() string { return unaryOpNames[op] }

// Unary computes an elementwise math intrinsic. The result has the
// type of its operand.
type Unary struct {
	instr
	op UnaryOp
}

// NewUnary returns a math intrinsic instruction.
func NewUnary(op UnaryOp, v Value) *Unary {
	return &Unary{instr: newInstr(v.Type(), v), op: op}
}

// Op returns the intrinsic computed by the instruction.
func (i *Unary) Op() UnaryOp { return i.op }

// Clone returns a parentless copy of the instruction.
func (i *Unary) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}

// UMulHi computes the upper half of an unsigned integer product.
type UMulHi struct {
	instr
}

// NewUMulHi returns an upper-half multiplication instruction.
func NewUMulHi(lhs, rhs Value) *UMulHi {
	return &UMulHi{instr: newInstr(lhs.Type(), lhs, rhs)}
}

// Clone returns a parentless copy of the instruction.
func (i *UMulHi) Clone() Instruction {
	c := *i
	c.instr = i.instr.clone()
	return &c
}
