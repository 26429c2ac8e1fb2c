package dispatch_test

import (
	"testing"

	"github.com/apd10/triton/build/dispatch"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

func TestCastIdentity(t *testing.T) {
	f := newFixture(t)
	v := f.value(f.ctx.Int32())
	got, err := dispatch.Cast(v, f.ctx.Int32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if got != v || len(f.insts()) != 0 {
		t.Errorf("cast to the same type is not a no-op")
	}
}

func TestCastFloatFloat(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Cast(f.value(f.ctx.FP32()), f.ctx.FP16(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.FPTrunc {
		t.Errorf("narrowing float cast: got %v, want fp_trunc", got.IRValue())
	}
	got, err = dispatch.Cast(f.value(f.ctx.FP16()), f.ctx.FP64(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.FPExt {
		t.Errorf("widening float cast: got %v, want fp_ext", got.IRValue())
	}
}

// For integer widths w1 <= w2 of the same signedness, widening and
// narrowing back is sign preserving: sign extension up, truncation
// down.
func TestCastIntRoundTrip(t *testing.T) {
	f := newFixture(t)
	v := f.value(f.ctx.Int8())
	wide, err := dispatch.Cast(v, f.ctx.Int32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := wide.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.SExt {
		t.Fatalf("signed widening: got %v, want sext", wide.IRValue())
	}
	narrow, err := dispatch.Cast(wide, f.ctx.Int8(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	cast, ok := narrow.IRValue().(*ir.Cast)
	if !ok || cast.CastKind() != ir.Trunc {
		t.Fatalf("narrowing: got %v, want trunc", narrow.IRValue())
	}
	if cast.Operands()[0] != wide.IRValue() {
		t.Errorf("round trip does not chain through the widened value")
	}
	if narrow.Type() != f.ctx.Int8() {
		t.Errorf("round trip type: got %s, want int8", narrow.Type())
	}
}

func TestCastUnsignedWidensWithZExt(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Cast(f.value(f.ctx.Uint8()), f.ctx.Uint32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.ZExt {
		t.Errorf("unsigned widening: got %v, want zext", got.IRValue())
	}
}

func TestCastBoolWidensWithZExt(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Cast(f.value(f.ctx.Int1()), f.ctx.Int32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	// int1 is never sign extended, signed or not.
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.ZExt {
		t.Errorf("bool widening: got %v, want zext", got.IRValue())
	}
}

func TestCastIntFloat(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Cast(f.value(f.ctx.Int32()), f.ctx.FP32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.SIToFP {
		t.Errorf("signed int to float: got %v, want si_to_fp", got.IRValue())
	}
	got, err = dispatch.Cast(f.value(f.ctx.Uint32()), f.ctx.FP32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.UIToFP {
		t.Errorf("unsigned int to float: got %v, want ui_to_fp", got.IRValue())
	}
}

func TestCastFloatInt(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Cast(f.value(f.ctx.FP32()), f.ctx.Int32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.FPToSI {
		t.Errorf("float to int: got %v, want fp_to_si", got.IRValue())
	}
	got, err = dispatch.Cast(f.value(f.ctx.FP32()), f.ctx.Int1(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.FPToUI {
		t.Errorf("float to bool: got %v, want fp_to_ui", got.IRValue())
	}
}

func TestCastPointerInt(t *testing.T) {
	f := newFixture(t)
	ptrTy := f.ctx.PointerTo(f.ctx.FP32(), 1)
	got, err := dispatch.Cast(f.value(ptrTy), f.ctx.Int64(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.PtrToInt {
		t.Errorf("pointer to int64: got %v, want ptr_to_int", got.IRValue())
	}
	// pointer to bool goes through int64 and a null check
	boolFix := newFixture(t)
	ptr := boolFix.value(boolFix.ctx.PointerTo(boolFix.ctx.FP32(), 1))
	got, err = dispatch.Cast(ptr, boolFix.ctx.Int1(), boolFix.ctx, boolFix.b)
	if err != nil {
		t.Fatal(err)
	}
	icmp, ok := got.IRValue().(*ir.ICmp)
	if !ok || icmp.Predicate() != ir.IntNE {
		t.Fatalf("pointer to bool: got %v, want icmp ne", got.IRValue())
	}
	if cast, ok := icmp.Operands()[0].(*ir.Cast); !ok || cast.CastKind() != ir.PtrToInt {
		t.Errorf("pointer to bool does not go through ptr_to_int: %v", icmp.Operands()[0])
	}
	// other widths are not supported
	badFix := newFixture(t)
	bad := badFix.value(badFix.ctx.PointerTo(badFix.ctx.FP32(), 1))
	if _, err := dispatch.Cast(bad, badFix.ctx.Int32(), badFix.ctx, badFix.b); !semerr.IsInternal(err) {
		t.Errorf("pointer to int32: got %v, want an internal error", err)
	}
}

func TestCastIntPointer(t *testing.T) {
	f := newFixture(t)
	ptrTy := f.ctx.PointerTo(f.ctx.FP32(), 1)
	got, err := dispatch.Cast(f.value(f.ctx.Int64()), ptrTy, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.IntToPtr {
		t.Errorf("int to pointer: got %v, want int_to_ptr", got.IRValue())
	}
}

func TestCastPointerPointer(t *testing.T) {
	f := newFixture(t)
	src := f.ctx.PointerTo(f.ctx.FP32(), 1)
	dst := f.ctx.PointerTo(f.ctx.Int32(), 1)
	got, err := dispatch.Cast(f.value(src), dst, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.BitCast {
		t.Errorf("pointer to pointer: got %v, want bitcast", got.IRValue())
	}
}

// A block source lifts the destination to a block of the same shape,
// keeping the source signedness. A consequence ported from the source
// implementation: an elementwise signedness-only change on a block is
// a no-op, since the lifted destination collapses onto the source
// type.
func TestCastBlockSignednessIsNoOp(t *testing.T) {
	f := newFixture(t)
	v := f.block(t, f.ctx.Int32(), 8)
	got, err := dispatch.Cast(v, f.ctx.Uint32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if got != v || len(f.insts()) != 0 {
		t.Errorf("block signedness cast emitted instructions")
	}
}

func TestCastBlockLiftsShape(t *testing.T) {
	f := newFixture(t)
	v := f.block(t, f.ctx.Int32(), 4, 8)
	got, err := dispatch.Cast(v, f.ctx.FP32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Type().IsBlock() || got.Type().ScalarType().IRType() != f.irctx.FP32Ty() {
		t.Errorf("block cast result type: got %s, want a block of fp32", got.Type())
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.SIToFP {
		t.Errorf("block int to float: got %v, want si_to_fp", got.IRValue())
	}
}

func TestBitcast(t *testing.T) {
	f := newFixture(t)
	got, err := dispatch.Bitcast(f.value(f.ctx.FP32()), f.ctx.Int32(), f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if cast, ok := got.IRValue().(*ir.Cast); !ok || cast.CastKind() != ir.BitCast {
		t.Errorf("bitcast: got %v, want bitcast", got.IRValue())
	}
	if _, err := dispatch.Bitcast(f.value(f.ctx.FP32()), f.ctx.Int64(), f.ctx, f.b); !semerr.IsSemantic(err) {
		t.Errorf("size mismatch: got %v, want a semantic error", err)
	}
}
