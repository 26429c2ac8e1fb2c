package dispatch_test

import (
	"testing"

	"github.com/apd10/triton/build/ast"
	"github.com/apd10/triton/build/dispatch"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
)

func atomicRMWs(f *fixture) []*ir.AtomicRMW {
	var rmws []*ir.AtomicRMW
	for _, inst := range f.insts() {
		if rmw, ok := inst.(*ir.AtomicRMW); ok {
			rmws = append(rmws, rmw)
		}
	}
	return rmws
}

func TestAtomicAddInteger(t *testing.T) {
	f := newFixture(t)
	ptr := f.value(f.ctx.PointerTo(f.ctx.Int32(), 1))
	got, err := dispatch.AtomicAdd(ptr, f.value(f.ctx.Int32()), nil, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	rmw, ok := got.IRValue().(*ir.AtomicRMW)
	if !ok || rmw.Op() != ir.AtomicAdd {
		t.Fatalf("emitted %v, want atomic add", got.IRValue())
	}
	// the default mask is the true constant
	if mask, ok := rmw.Operands()[2].(*ir.ConstantInt); !ok || mask.Value() != 1 {
		t.Errorf("default mask is not true: %v", rmw.Operands()[2])
	}
}

func TestAtomicAddFloat(t *testing.T) {
	f := newFixture(t)
	ptr := f.value(f.ctx.PointerTo(f.ctx.FP32(), 1))
	got, err := dispatch.AtomicAdd(ptr, f.value(f.ctx.FP32()), nil, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if rmw, ok := got.IRValue().(*ir.AtomicRMW); !ok || rmw.Op() != ir.AtomicFAdd {
		t.Errorf("emitted %v, want atomic fadd", got.IRValue())
	}
}

func TestAtomicMaxInteger(t *testing.T) {
	signed := newFixture(t)
	ptr := signed.value(signed.ctx.PointerTo(signed.ctx.Int32(), 1))
	got, err := dispatch.AtomicMax(ptr, signed.value(signed.ctx.Int32()), nil, signed.ctx, signed.b)
	if err != nil {
		t.Fatal(err)
	}
	if rmw, ok := got.IRValue().(*ir.AtomicRMW); !ok || rmw.Op() != ir.AtomicMax {
		t.Errorf("emitted %v, want atomic max", got.IRValue())
	}
	unsigned := newFixture(t)
	uptr := unsigned.value(unsigned.ctx.PointerTo(unsigned.ctx.Uint32(), 1))
	got, err = dispatch.AtomicMin(uptr, unsigned.value(unsigned.ctx.Uint32()), nil, unsigned.ctx, unsigned.b)
	if err != nil {
		t.Fatal(err)
	}
	if rmw, ok := got.IRValue().(*ir.AtomicRMW); !ok || rmw.Op() != ir.AtomicUMin {
		t.Errorf("emitted %v, want atomic umin", got.IRValue())
	}
}

// Float atomic max is emulated with two integer atomics on the
// bit-reinterpreted pointer: a signed max on non-negative lanes, an
// unsigned min on negative lanes, combined with a select on the sign
// of the value.
func TestAtomicMaxFloat(t *testing.T) {
	f := newFixture(t)
	ptr := f.block(t, f.ctx.PointerTo(f.ctx.FP32(), 1), 8)
	val := f.block(t, f.ctx.FP32(), 8)
	mask := f.block(t, f.ctx.Int1(), 8)
	got, err := dispatch.AtomicMax(ptr, val, mask, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	rmws := atomicRMWs(f)
	if len(rmws) != 2 {
		t.Fatalf("emitted %d atomic rmws, want 2", len(rmws))
	}
	if rmws[0].Op() != ir.AtomicMax || rmws[1].Op() != ir.AtomicUMin {
		t.Errorf("rmw operations: got %s and %s, want max and umin", rmws[0].Op(), rmws[1].Op())
	}
	// both operate on the pointer bitcast to int32
	for _, rmw := range rmws {
		cast, ok := rmw.Operands()[0].(*ir.Cast)
		if !ok || cast.CastKind() != ir.BitCast {
			t.Errorf("rmw pointer is not the bit-reinterpreted pointer: %T", rmw.Operands()[0])
			continue
		}
		if cast.Type().Scalar().PointerElem() != f.irctx.Int32Ty() {
			t.Errorf("reinterpreted pointee: got %s, want i32", cast.Type().Scalar().PointerElem())
		}
	}
	if _, ok := got.IRValue().(*ir.Select); !ok {
		t.Errorf("results are not combined with a select: %T", got.IRValue())
	}
}

func TestAtomicMinFloatInvertsDirections(t *testing.T) {
	f := newFixture(t)
	ptr := f.value(f.ctx.PointerTo(f.ctx.FP32(), 1))
	val := f.value(f.ctx.FP32())
	_, err := dispatch.AtomicMin(ptr, val, nil, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	rmws := atomicRMWs(f)
	if len(rmws) != 2 {
		t.Fatalf("emitted %d atomic rmws, want 2", len(rmws))
	}
	if rmws[0].Op() != ir.AtomicMin || rmws[1].Op() != ir.AtomicUMax {
		t.Errorf("rmw operations: got %s and %s, want min and umax", rmws[0].Op(), rmws[1].Op())
	}
}

func TestAtomicValCastToPointee(t *testing.T) {
	f := newFixture(t)
	ptr := f.value(f.ctx.PointerTo(f.ctx.Int64(), 1))
	got, err := dispatch.AtomicXchg(ptr, f.value(f.ctx.Int32()), nil, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	rmw := got.IRValue().(*ir.AtomicRMW)
	if cast, ok := rmw.Operands()[1].(*ir.Cast); !ok || cast.CastKind() != ir.SExt {
		t.Errorf("value was not cast to the pointee type: %v", rmw.Operands()[1])
	}
	if got.Type() != f.ctx.Int64() {
		t.Errorf("result type: got %s, want int64", got.Type())
	}
}

func TestAtomicRejectsNonPointer(t *testing.T) {
	f := newFixture(t)
	ops := []func(ptr, val, mask *ast.Value, ctx *ast.Context, b *ir.Builder) (*ast.Value, error){
		dispatch.AtomicAdd, dispatch.AtomicAnd, dispatch.AtomicOr,
		dispatch.AtomicXor, dispatch.AtomicXchg, dispatch.AtomicMax, dispatch.AtomicMin,
	}
	for _, op := range ops {
		if _, err := op(f.value(f.ctx.Int32()), f.value(f.ctx.Int32()), nil, f.ctx, f.b); !semerr.IsSemantic(err) {
			t.Errorf("atomic through an int: got %v, want a semantic error", err)
		}
	}
}

func TestAtomicBlockDefaultMask(t *testing.T) {
	f := newFixture(t)
	ptr := f.block(t, f.ctx.PointerTo(f.ctx.Int32(), 1), 8)
	got, err := dispatch.AtomicOr(ptr, f.block(t, f.ctx.Int32(), 8), nil, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	rmw := got.IRValue().(*ir.AtomicRMW)
	splat, ok := rmw.Operands()[2].(*ir.Splat)
	if !ok {
		t.Fatalf("default block mask is not a splat: %T", rmw.Operands()[2])
	}
	if one, ok := splat.Operands()[0].(*ir.ConstantInt); !ok || one.Value() != 1 {
		t.Errorf("default mask lanes are not true: %v", splat.Operands()[0])
	}
}
