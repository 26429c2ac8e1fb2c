package ir_test

import (
	"strings"
	"testing"

	"github.com/apd10/triton/build/ir"
)

func newTestFunc(t *testing.T) (*ir.Context, *ir.Module, *ir.Function, *ir.BasicBlock, *ir.Builder) {
	t.Helper()
	ctx := ir.NewContext()
	mod := ir.NewModule(ctx)
	fty := ctx.FuncTy(ctx.Int32Ty(), []*ir.Type{ctx.Int32Ty(), ctx.Int32Ty()})
	fn := mod.NewFunction("f", fty)
	entry := ir.NewBlock("entry", fn)
	b := ir.NewBuilder(ctx)
	b.SetInsertPointAtEnd(entry)
	return ctx, mod, fn, entry, b
}

func TestSplitBefore(t *testing.T) {
	_, _, fn, entry, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	mul := b.CreateMul(add, args[0])
	b.CreateRet(mul)
	pre := entry.SplitBefore(mul, "pre")
	if got := len(fn.Blocks()); got != 2 {
		t.Fatalf("blocks after split: got %d, want 2", got)
	}
	if fn.Blocks()[0] != pre || fn.Blocks()[1] != entry {
		t.Errorf("split block is not inserted before the original block")
	}
	if got := len(pre.Instructions()); got != 2 {
		t.Fatalf("prefix instructions: got %d, want 2 (add, branch)", got)
	}
	br, ok := pre.Terminator().(*ir.Branch)
	if !ok || br.Target() != entry {
		t.Errorf("prefix does not fall through to the suffix")
	}
	if add.Parent() != pre {
		t.Errorf("moved instruction keeps its old parent")
	}
	if entry.Instructions()[0] != mul {
		t.Errorf("suffix does not start at the split instruction")
	}
	if succs := pre.Successors(); len(succs) != 1 || succs[0] != entry {
		t.Errorf("prefix successors: got %v", succs)
	}
}

func TestReplaceUsesOfWith(t *testing.T) {
	_, _, fn, _, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[0])
	add.ReplaceUsesOfWith(args[0], args[1])
	for _, op := range add.Operands() {
		if op != args[1] {
			t.Errorf("operand not replaced: got %v", op)
		}
	}
}

func TestCloneIsParentless(t *testing.T) {
	_, _, fn, _, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	add.SetMetadata(ir.MetadataMultipleOf, 16)
	clone := add.Clone()
	if clone.Parent() != nil {
		t.Errorf("clone has a parent")
	}
	if clone.Operands()[0] != args[0] || clone.Operands()[1] != args[1] {
		t.Errorf("clone does not share its source operands")
	}
	clone.ReplaceUsesOfWith(args[0], args[1])
	if add.Operands()[0] != args[0] {
		t.Errorf("replacing on the clone mutated the source instruction")
	}
	if v, ok := clone.Metadata(ir.MetadataMultipleOf); !ok || v != 16 {
		t.Errorf("clone lost its metadata")
	}
}

func TestEraseFromParent(t *testing.T) {
	_, _, fn, entry, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	b.CreateRet(add)
	add.EraseFromParent()
	if got := len(entry.Instructions()); got != 1 {
		t.Errorf("instructions after erase: got %d, want 1", got)
	}
	if add.Parent() != nil {
		t.Errorf("erased instruction keeps its parent")
	}
}

func TestPhiIncomings(t *testing.T) {
	ctx, _, fn, entry, b := newTestFunc(t)
	args := fn.Args()
	left := ir.NewBlock("left", fn)
	right := ir.NewBlock("right", fn)
	phi := b.CreatePhi(ctx.Int32Ty())
	phi.AddIncoming(args[0], left)
	phi.AddIncoming(args[1], right)
	b.CreateRet(phi)
	if got := phi.NumIncoming(); got != 2 {
		t.Fatalf("incomings: got %d, want 2", got)
	}
	v, blk := phi.Incoming(0)
	if v != args[0] || blk != left {
		t.Errorf("first incoming: got (%v, %v)", v, blk)
	}
	if entry.FirstNonPhi() != entry.Instructions()[1] {
		t.Errorf("FirstNonPhi did not skip the phi")
	}
}

func TestVerify(t *testing.T) {
	_, mod, fn, _, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	b.CreateRet(add)
	if err := ir.Verify(mod); err != nil {
		t.Fatalf("verify on a well-formed module: %v", err)
	}
}

func TestVerifyDetectsDefects(t *testing.T) {
	_, mod, fn, _, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	err := ir.Verify(mod)
	if err == nil {
		t.Fatalf("verify accepts a block without terminator")
	}
	if !strings.Contains(err.Error(), "terminator") {
		t.Errorf("error does not mention the missing terminator: %v", err)
	}
	b.CreateRet(add)
	ir.NewBlock("empty", fn)
	err = ir.Verify(mod)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("verify does not report the empty block: %v", err)
	}
}

func TestVerifyRejectsCallToRemovedFunction(t *testing.T) {
	ctx, mod, fn, _, b := newTestFunc(t)
	fty := ctx.FuncTy(ctx.Int32Ty(), nil)
	callee := mod.NewFunction("callee", fty)
	calleeEntry := ir.NewBlock("entry", callee)
	b.SetInsertPointAtEnd(calleeEntry)
	b.CreateRet(b.GetInt32(0))
	b.SetInsertPointAtEnd(fn.Blocks()[0])
	call := b.CreateCall(callee)
	b.CreateRet(call)
	if err := ir.Verify(mod); err != nil {
		t.Fatalf("verify before removal: %v", err)
	}
	mod.RemoveFunction(callee)
	if err := ir.Verify(mod); err == nil {
		t.Errorf("verify accepts a call to a function removed from the module")
	}
}

func TestModuleString(t *testing.T) {
	_, mod, fn, _, b := newTestFunc(t)
	args := fn.Args()
	add := b.CreateAdd(args[0], args[1])
	add.SetMetadata(ir.MetadataMultipleOf, 8)
	b.CreateRet(add)
	want := `def @f(i32 %arg0, i32 %arg1) {
entry:
  %0 = add %arg0, %arg1 : i32 ; multiple_of=8
  ret %0
}
`
	if got := mod.String(); got != want {
		t.Errorf("module dump:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
