package ir_test

import (
	"testing"

	"github.com/apd10/triton/build/ir"
	"github.com/google/go-cmp/cmp"
)

func TestTypeCanonicalization(t *testing.T) {
	ctx := ir.NewContext()
	if ctx.Int32Ty() != ctx.Int32Ty() {
		t.Errorf("two int32 look-ups returned different types")
	}
	if ctx.IntTy(32) != ctx.Int32Ty() {
		t.Errorf("IntTy(32) is not Int32Ty")
	}
	p1 := ctx.PointerTy(ctx.FP32Ty(), 1)
	p2 := ctx.PointerTy(ctx.FP32Ty(), 1)
	if p1 != p2 {
		t.Errorf("two pointer look-ups returned different types")
	}
	if ctx.PointerTy(ctx.FP32Ty(), 0) == p1 {
		t.Errorf("pointers in different address spaces share a type")
	}
	b1 := ctx.BlockTy(ctx.Int32Ty(), ir.Shape{4, 8})
	b2 := ctx.BlockTy(ctx.Int32Ty(), ir.Shape{4, 8})
	if b1 != b2 {
		t.Errorf("two block look-ups returned different types")
	}
	if ctx.BlockTy(ctx.Int32Ty(), ir.Shape{8, 4}) == b1 {
		t.Errorf("blocks of different shapes share a type")
	}
}

func TestTypeAccessors(t *testing.T) {
	ctx := ir.NewContext()
	tests := []struct {
		ty       *ir.Type
		mantissa int64
		size     int64
		str      string
	}{
		{ty: ctx.FP8Ty(), mantissa: 3, size: 8, str: "fp8"},
		{ty: ctx.FP16Ty(), mantissa: 10, size: 16, str: "fp16"},
		{ty: ctx.BF16Ty(), mantissa: 7, size: 16, str: "bf16"},
		{ty: ctx.FP32Ty(), mantissa: 23, size: 32, str: "fp32"},
		{ty: ctx.FP64Ty(), mantissa: 52, size: 64, str: "fp64"},
	}
	for _, test := range tests {
		if got := test.ty.MantissaWidth(); got != test.mantissa {
			t.Errorf("%s mantissa width: got %d, want %d", test.str, got, test.mantissa)
		}
		if got := test.ty.PrimitiveSizeInBits(); got != test.size {
			t.Errorf("%s primitive size: got %d, want %d", test.str, got, test.size)
		}
		if got := test.ty.String(); got != test.str {
			t.Errorf("type string: got %s, want %s", got, test.str)
		}
	}
	block := ctx.BlockTy(ctx.Int16Ty(), ir.Shape{4, 8})
	if got := block.PrimitiveSizeInBits(); got != 4*8*16 {
		t.Errorf("block primitive size: got %d, want %d", got, 4*8*16)
	}
	if got := block.NumElements(); got != 32 {
		t.Errorf("block elements: got %d, want 32", got)
	}
	if block.Scalar() != ctx.Int16Ty() {
		t.Errorf("block scalar projection is not the element type")
	}
	if ctx.Int16Ty().Scalar() != ctx.Int16Ty() {
		t.Errorf("scalar projection of a scalar is not itself")
	}
	if got := block.String(); got != "i16[4, 8]" {
		t.Errorf("block string: got %s", got)
	}
	ptr := ctx.PointerTy(ctx.FP32Ty(), 1)
	if got := ptr.String(); got != "fp32 addrspace(1)*" {
		t.Errorf("pointer string: got %s", got)
	}
	if !cmp.Equal(block.BlockShape(), ir.Shape{4, 8}) {
		t.Errorf("block shape: got %v", block.BlockShape())
	}
}

func TestShape(t *testing.T) {
	s := ir.Shape{4, 8}
	if got := s.NumElements(); got != 32 {
		t.Errorf("NumElements: got %d, want 32", got)
	}
	if !s.Equal(ir.Shape{4, 8}) || s.Equal(ir.Shape{8, 4}) || s.Equal(ir.Shape{4}) {
		t.Errorf("shape equality is broken for %v", s)
	}
	if got := s.String(); got != "[4, 8]" {
		t.Errorf("shape string: got %s", got)
	}
}
