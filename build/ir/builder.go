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

// Builder emits instructions at an insertion point inside a basic
// block. The insertion point advances past each emitted instruction.
type Builder struct {
	ctx   *Context
	block *BasicBlock
	at    int
}

// NewBuilder returns a builder without an insertion point.
func NewBuilder(ctx *Context) *Builder {
	return &Builder{ctx: ctx}
}

// Context returns the type pool the builder emits into.
func (b *Builder) Context() *Context { return b.ctx }

// InsertBlock returns the block holding the insertion point.
func (b *Builder) InsertBlock() *BasicBlock { return b.block }

// SetInsertPointAtEnd moves the insertion point past the last
// instruction of blk.
func (b *Builder) SetInsertPointAtEnd(blk *BasicBlock) {
	b.block = blk
	b.at = len(blk.insts)
}

// SetInsertPointBefore moves the insertion point right before inst.
func (b *Builder) SetInsertPointBefore(inst Instruction) {
	b.block = inst.Parent()
	b.at = b.block.indexOf(inst)
}

// Insert emits inst at the insertion point and returns it.
func (b *Builder) Insert(inst Instruction) Instruction {
	b.block.insertAt(b.at, inst)
	b.at++
	return inst
}

// ----------------------------------------------------------------------------
// Arithmetic.

func (b *Builder) binary(op BinOp, lhs, rhs Value) *BinaryOp {
	inst := NewBinaryOp(op, lhs, rhs)
	b.Insert(inst)
	return inst
}

// CreateFAdd emits a float addition.
func (b *Builder) CreateFAdd(lhs, rhs Value) *BinaryOp { return b.binary(FAdd, lhs, rhs) }

// CreateFSub emits a float subtraction.
func (b *Builder) CreateFSub(lhs, rhs Value) *BinaryOp { return b.binary(FSub, lhs, rhs) }

// CreateFMul emits a float multiplication.
func (b *Builder) CreateFMul(lhs, rhs Value) *BinaryOp { return b.binary(FMul, lhs, rhs) }

// CreateFDiv emits a float division.
func (b *Builder) CreateFDiv(lhs, rhs Value) *BinaryOp { return b.binary(FDiv, lhs, rhs) }

// CreateFRem emits a float remainder.
func (b *Builder) CreateFRem(lhs, rhs Value) *BinaryOp { return b.binary(FRem, lhs, rhs) }

// CreateAdd emits an integer addition.
func (b *Builder) CreateAdd(lhs, rhs Value) *BinaryOp { return b.binary(Add, lhs, rhs) }

// CreateSub emits an integer subtraction.
func (b *Builder) CreateSub(lhs, rhs Value) *BinaryOp { return b.binary(Sub, lhs, rhs) }

// CreateMul emits an integer multiplication.
func (b *Builder) CreateMul(lhs, rhs Value) *BinaryOp { return b.binary(Mul, lhs, rhs) }

// CreateSDiv emits a signed integer division.
func (b *Builder) CreateSDiv(lhs, rhs Value) *BinaryOp { return b.binary(SDiv, lhs, rhs) }

// CreateUDiv emits an unsigned integer division.
func (b *Builder) CreateUDiv(lhs, rhs Value) *BinaryOp { return b.binary(UDiv, lhs, rhs) }

// CreateSRem emits a signed integer remainder.
func (b *Builder) CreateSRem(lhs, rhs Value) *BinaryOp { return b.binary(SRem, lhs, rhs) }

// CreateURem emits an unsigned integer remainder.
func (b *Builder) CreateURem(lhs, rhs Value) *BinaryOp { return b.binary(URem, lhs, rhs) }

// CreateAnd emits a bitwise and.
func (b *Builder) CreateAnd(lhs, rhs Value) *BinaryOp { return b.binary(And, lhs, rhs) }

// CreateOr emits a bitwise or.
func (b *Builder) CreateOr(lhs, rhs Value) *BinaryOp { return b.binary(Or, lhs, rhs) }

// CreateXor emits a bitwise exclusive or.
func (b *Builder) CreateXor(lhs, rhs Value) *BinaryOp { return b.binary(Xor, lhs, rhs) }

// CreateShl emits a left shift.
func (b *Builder) CreateShl(lhs, rhs Value) *BinaryOp { return b.binary(Shl, lhs, rhs) }

// CreateLShr emits a logical right shift.
func (b *Builder) CreateLShr(lhs, rhs Value) *BinaryOp { return b.binary(LShr, lhs, rhs) }

// ----------------------------------------------------------------------------
// Comparisons.

// CreateICmp emits an integer comparison.
func (b *Builder) CreateICmp(pred IntPredicate, lhs, rhs Value) *ICmp {
	inst := NewICmp(b.ctx, pred, lhs, rhs)
	b.Insert(inst)
	return inst
}

// CreateFCmp emits a float comparison.
func (b *Builder) CreateFCmp(pred FloatPredicate, lhs, rhs Value) *FCmp {
	inst := NewFCmp(b.ctx, pred, lhs, rhs)
	b.Insert(inst)
	return inst
}

// ----------------------------------------------------------------------------
// Casts.

// CreateCast emits a cast of the given kind to type to.
func (b *Builder) CreateCast(kind CastKind, v Value, to *Type) *Cast {
	inst := NewCast(kind, v, to)
	b.Insert(inst)
	return inst
}

// CreateFPTrunc emits a float truncation.
func (b *Builder) CreateFPTrunc(v Value, to *Type) *Cast { return b.CreateCast(FPTrunc, v, to) }

// CreateFPExt emits a float extension.
func (b *Builder) CreateFPExt(v Value, to *Type) *Cast { return b.CreateCast(FPExt, v, to) }

// CreateFPToUI emits a float to unsigned integer conversion.
func (b *Builder) CreateFPToUI(v Value, to *Type) *Cast { return b.CreateCast(FPToUI, v, to) }

// CreateFPToSI emits a float to signed integer conversion.
func (b *Builder) CreateFPToSI(v Value, to *Type) *Cast { return b.CreateCast(FPToSI, v, to) }

// CreateUIToFP emits an unsigned integer to float conversion.
func (b *Builder) CreateUIToFP(v Value, to *Type) *Cast { return b.CreateCast(UIToFP, v, to) }

// CreateSIToFP emits a signed integer to float conversion.
func (b *Builder) CreateSIToFP(v Value, to *Type) *Cast { return b.CreateCast(SIToFP, v, to) }

// CreateIntCast emits an integer resize, sign extending when widening
// a signed value.
func (b *Builder) CreateIntCast(v Value, to *Type, signExtend bool) *Cast {
	src := v.Type().Scalar().IntegerBitwidth()
	dst := to.Scalar().IntegerBitwidth()
	kind := BitCast
	switch {
	case src > dst:
		kind = Trunc
	case src < dst && signExtend:
		kind = SExt
	case src < dst:
		kind = ZExt
	}
	return b.CreateCast(kind, v, to)
}

// ----------------------------------------------------------------------------
// Memory.

// CreateGEP emits a pointer offset computation.
func (b *Builder) CreateGEP(ptr Value, indices ...Value) *GEP {
	inst := NewGEP(ptr, indices...)
	b.Insert(inst)
	return inst
}

// CreateLoad emits a load.
func (b *Builder) CreateLoad(ptr Value, cache CacheModifier, volatile bool) *Load {
	inst := NewLoad(b.ctx, ptr, cache, volatile)
	b.Insert(inst)
	return inst
}

// CreateMaskedLoad emits a load of the active mask lanes, producing
// other on the remaining lanes.
func (b *Builder) CreateMaskedLoad(ptr, mask, other Value, cache CacheModifier, volatile bool) *MaskedLoad {
	inst := NewMaskedLoad(b.ctx, ptr, mask, other, cache, volatile)
	b.Insert(inst)
	return inst
}

// CreateStore emits a store.
func (b *Builder) CreateStore(ptr, val Value) *Store {
	inst := NewStore(b.ctx, ptr, val)
	b.Insert(inst)
	return inst
}

// CreateMaskedStore emits a store of the active mask lanes.
func (b *Builder) CreateMaskedStore(ptr, val, mask Value) *MaskedStore {
	inst := NewMaskedStore(b.ctx, ptr, val, mask)
	b.Insert(inst)
	return inst
}

// CreateAtomicCAS emits an atomic compare-and-swap.
func (b *Builder) CreateAtomicCAS(ptr, cmp, val Value) *AtomicCAS {
	inst := NewAtomicCAS(ptr, cmp, val)
	b.Insert(inst)
	return inst
}

// CreateAtomicRMW emits an atomic read-modify-write.
func (b *Builder) CreateAtomicRMW(op AtomicOp, ptr, val, mask Value) *AtomicRMW {
	inst := NewAtomicRMW(op, ptr, val, mask)
	b.Insert(inst)
	return inst
}

// ----------------------------------------------------------------------------
// Shapes.

// CreateSplat emits a broadcast of a scalar to a block shape.
func (b *Builder) CreateSplat(v Value, shape Shape) *Splat {
	inst := NewSplat(b.ctx, v, shape)
	b.Insert(inst)
	return inst
}

// CreateBroadcast emits an extension of size-1 dimensions to shape.
func (b *Builder) CreateBroadcast(v Value, shape Shape) *Broadcast {
	inst := NewBroadcast(b.ctx, v, shape)
	b.Insert(inst)
	return inst
}

// CreateReshape emits a reinterpretation of a block under a new shape.
func (b *Builder) CreateReshape(v Value, shape Shape) *Reshape {
	inst := NewReshape(b.ctx, v, shape)
	b.Insert(inst)
	return inst
}

// CreateCat emits a concatenation of two blocks.
func (b *Builder) CreateCat(lhs, rhs Value) *Cat {
	inst := NewCat(b.ctx, lhs, rhs)
	b.Insert(inst)
	return inst
}

// GetRange emits the block of consecutive values [start, end).
func (b *Builder) GetRange(start, end int32) *Range {
	inst := NewRange(b.ctx, start, end)
	b.Insert(inst)
	return inst
}

// CreateDot emits a 2D matrix multiplication with accumulator acc.
func (b *Builder) CreateDot(x, y, acc Value, allowTF32 bool) *Dot {
	inst := NewDot(x, y, acc, allowTF32)
	b.Insert(inst)
	return inst
}

// CreateReduce emits a reduction along one axis.
func (b *Builder) CreateReduce(v Value, op ReduceOp, axis int) *Reduce {
	inst := NewReduce(b.ctx, v, op, axis)
	b.Insert(inst)
	return inst
}

// ----------------------------------------------------------------------------
// Math.

func (b *Builder) unary(op UnaryOp, v Value) *Unary {
	inst := NewUnary(op, v)
	b.Insert(inst)
	return inst
}

// CreateExp emits an elementwise exponential.
func (b *Builder) CreateExp(v Value) *Unary { return b.unary(Exp, v) }

// CreateLog emits an elementwise natural logarithm.
func (b *Builder) CreateLog(v Value) *Unary { return b.unary(Log, v) }

// CreateCos emits an elementwise cosine.
func (b *Builder) CreateCos(v Value) *Unary { return b.unary(Cos, v) }

// CreateSin emits an elementwise sine.
func (b *Builder) CreateSin(v Value) *Unary { return b.unary(Sin, v) }

// CreateSqrt emits an elementwise square root.
func (b *Builder) CreateSqrt(v Value) *Unary { return b.unary(Sqrt, v) }

// ----------------------------------------------------------------------------
// Control.

// CreateSelect emits a selection between two values.
func (b *Builder) CreateSelect(cond, x, y Value) *Select {
	inst := NewSelect(cond, x, y)
	b.Insert(inst)
	return inst
}

// CreatePhi emits an empty phi of the given type.
func (b *Builder) CreatePhi(ty *Type) *Phi {
	inst := NewPhi(ty)
	b.Insert(inst)
	return inst
}

// CreateBr emits an unconditional branch.
func (b *Builder) CreateBr(target *BasicBlock) *Branch {
	inst := NewBranch(b.ctx, target)
	b.Insert(inst)
	return inst
}

// CreateCondBr emits a conditional branch.
func (b *Builder) CreateCondBr(cond Value, then, els *BasicBlock) *CondBranch {
	inst := NewCondBranch(b.ctx, cond, then, els)
	b.Insert(inst)
	return inst
}

// CreateRet emits a return of v, or a void return if v is nil.
func (b *Builder) CreateRet(v Value) *Return {
	inst := NewReturn(b.ctx, v)
	b.Insert(inst)
	return inst
}

// CreateCall emits a call to fn.
func (b *Builder) CreateCall(fn *Function, args ...Value) *Call {
	inst := NewCall(fn, args...)
	b.Insert(inst)
	return inst
}

// CreateBarrier emits a program-wide synchronization barrier.
func (b *Builder) CreateBarrier() *Barrier {
	inst := NewBarrier(b.ctx)
	b.Insert(inst)
	return inst
}

// CreateGetProgramID emits a read of the program index along axis.
func (b *Builder) CreateGetProgramID(axis int) *GetProgramID {
	inst := NewGetProgramID(b.ctx, axis)
	b.Insert(inst)
	return inst
}

// CreateGetNumPrograms emits a read of the grid size along axis.
func (b *Builder) CreateGetNumPrograms(axis int) *GetNumPrograms {
	inst := NewGetNumPrograms(b.ctx, axis)
	b.Insert(inst)
	return inst
}

// ----------------------------------------------------------------------------
// Constants.

// GetInt1 returns a 1-bit integer constant.
func (b *Builder) GetInt1(v bool) *ConstantInt {
	val := int64(0)
	if v {
		val = 1
	}
	return NewConstantInt(b.ctx.Int1Ty(), val)
}

// GetInt8 returns an 8-bit integer constant.
func (b *Builder) GetInt8(v int64) *ConstantInt { return NewConstantInt(b.ctx.Int8Ty(), v) }

// GetInt32 returns a 32-bit integer constant.
func (b *Builder) GetInt32(v int64) *ConstantInt { return NewConstantInt(b.ctx.Int32Ty(), v) }

// GetInt64 returns a 64-bit integer constant.
func (b *Builder) GetInt64(v int64) *ConstantInt { return NewConstantInt(b.ctx.Int64Ty(), v) }

// GetFloat32 returns a 32-bit float constant.
func (b *Builder) GetFloat32(v float64) *ConstantFloat { return NewConstantFloat(b.ctx.FP32Ty(), v) }

// GetNullValue returns the zero constant of a scalar type.
func (b *Builder) GetNullValue(ty *Type) Value { return NullValue(ty) }

// GetAllOnesValue returns the all-bits-set constant of a scalar
// integer type.
func (b *Builder) GetAllOnesValue(ty *Type) Value { return AllOnesValue(ty) }

// GetUndef returns an undefined value of the given type.
func (b *Builder) GetUndef(ty *Type) Value { return NewUndef(ty) }
