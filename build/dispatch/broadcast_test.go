package dispatch_test

import (
	"testing"

	"github.com/apd10/triton/build/dispatch"
	"github.com/apd10/triton/build/ir"
	"github.com/apd10/triton/build/semerr"
	"github.com/google/go-cmp/cmp"
)

func TestBroadcastSplatsScalar(t *testing.T) {
	f := newFixture(t)
	v := f.value(f.ctx.Uint32())
	got, err := dispatch.Broadcast(v, ir.Shape{4, 8}, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.last(t).(*ir.Splat); !ok {
		t.Fatalf("emitted %T, want a splat", f.last(t))
	}
	if !cmp.Equal(got.Type().BlockShape(), ir.Shape{4, 8}) {
		t.Errorf("result shape: got %v", got.Type().BlockShape())
	}
	if got.Type().ScalarType() != f.ctx.Uint32() {
		t.Errorf("splat lost the signedness of its input")
	}
}

func TestBroadcastSameShapeIsNoOp(t *testing.T) {
	f := newFixture(t)
	v := f.block(t, f.ctx.Int32(), 4, 8)
	got, err := dispatch.Broadcast(v, ir.Shape{4, 8}, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("broadcast to the same shape minted a new value")
	}
	if len(f.insts()) != 0 {
		t.Errorf("broadcast to the same shape emitted %d instructions", len(f.insts()))
	}
}

func TestBroadcastExtendsUnitDims(t *testing.T) {
	f := newFixture(t)
	v := f.block(t, f.ctx.Int32(), 1, 8)
	got, err := dispatch.Broadcast(v, ir.Shape{4, 8}, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.last(t).(*ir.Broadcast); !ok {
		t.Fatalf("emitted %T, want a broadcast", f.last(t))
	}
	if !cmp.Equal(got.Type().BlockShape(), ir.Shape{4, 8}) {
		t.Errorf("result shape: got %v", got.Type().BlockShape())
	}
}

func TestBroadcastRejectsShapeMismatch(t *testing.T) {
	f := newFixture(t)
	if _, err := dispatch.Broadcast(f.block(t, f.ctx.Int32(), 3, 8), ir.Shape{4, 8}, f.ctx, f.b); !semerr.IsSemantic(err) {
		t.Errorf("incompatible dimension: got %v, want a semantic error", err)
	}
	if _, err := dispatch.Broadcast(f.block(t, f.ctx.Int32(), 8), ir.Shape{4, 8}, f.ctx, f.b); !semerr.IsSemantic(err) {
		t.Errorf("rank mismatch: got %v, want a semantic error", err)
	}
}

// Two blocks of shapes [1, 8] and [4, 1] share the common shape
// [4, 8]; both sides receive a broadcast instruction.
func TestBroadcastPairCommonShape(t *testing.T) {
	f := newFixture(t)
	lhs := f.block(t, f.ctx.Int32(), 1, 8)
	rhs := f.block(t, f.ctx.Int32(), 4, 1)
	gotL, gotR, err := dispatch.BroadcastPair(lhs, rhs, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Shape{4, 8}
	if !cmp.Equal(gotL.Type().BlockShape(), want) || !cmp.Equal(gotR.Type().BlockShape(), want) {
		t.Errorf("common shape: got %v and %v, want %v", gotL.Type().BlockShape(), gotR.Type().BlockShape(), want)
	}
	insts := f.insts()
	if len(insts) != 2 {
		t.Fatalf("emitted %d instructions, want 2 broadcasts", len(insts))
	}
	for _, inst := range insts {
		if _, ok := inst.(*ir.Broadcast); !ok {
			t.Errorf("emitted %T, want a broadcast", inst)
		}
	}
}

func TestBroadcastPairScalarAndBlock(t *testing.T) {
	f := newFixture(t)
	lhs := f.value(f.ctx.FP32())
	rhs := f.block(t, f.ctx.FP32(), 16)
	gotL, gotR, err := dispatch.BroadcastPair(lhs, rhs, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if gotR != rhs {
		t.Errorf("block side was rebuilt")
	}
	if !cmp.Equal(gotL.Type().BlockShape(), ir.Shape{16}) {
		t.Errorf("scalar side shape: got %v", gotL.Type().BlockShape())
	}
	if _, ok := f.last(t).(*ir.Splat); !ok {
		t.Errorf("emitted %T, want a splat", f.last(t))
	}
}

func TestBroadcastPairScalars(t *testing.T) {
	f := newFixture(t)
	lhs, rhs := f.value(f.ctx.Int32()), f.value(f.ctx.Int32())
	gotL, gotR, err := dispatch.BroadcastPair(lhs, rhs, f.ctx, f.b)
	if err != nil {
		t.Fatal(err)
	}
	if gotL != lhs || gotR != rhs || len(f.insts()) != 0 {
		t.Errorf("scalar pair broadcast is not a no-op")
	}
}

func TestBroadcastPairIncompatible(t *testing.T) {
	f := newFixture(t)
	lhs := f.block(t, f.ctx.Int32(), 3, 8)
	rhs := f.block(t, f.ctx.Int32(), 4, 8)
	if _, _, err := dispatch.BroadcastPair(lhs, rhs, f.ctx, f.b); !semerr.IsSemantic(err) {
		t.Errorf("incompatible blocks: got %v, want a semantic error", err)
	}
}
