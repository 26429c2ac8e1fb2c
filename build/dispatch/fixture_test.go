package dispatch_test

import (
	"testing"

	"github.com/apd10/triton/build/ast"
	"github.com/apd10/triton/build/ir"
)

// fixture holds one compilation: an IR module with a single function
// the builder emits into, and the frontend context minting values.
type fixture struct {
	irctx *ir.Context
	mod   *ir.Module
	ctx   *ast.Context
	b     *ir.Builder
	entry *ir.BasicBlock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	irctx := ir.NewContext()
	mod := ir.NewModule(irctx)
	fn := mod.NewFunction("kernel", irctx.FuncTy(irctx.VoidTy(), nil))
	entry := ir.NewBlock("entry", fn)
	b := ir.NewBuilder(irctx)
	b.SetInsertPointAtEnd(entry)
	return &fixture{
		irctx: irctx,
		mod:   mod,
		ctx:   ast.NewContext(irctx),
		b:     b,
		entry: entry,
	}
}

// value mints a frontend value of the given type over an undefined
// IR value, which is not an instruction.
func (f *fixture) value(ty *ast.Type) *ast.Value {
	return f.ctx.NewValue(ir.NewUndef(ty.IRType()), ty)
}

// block mints a block value with the given element type and shape.
func (f *fixture) block(t *testing.T, elem *ast.Type, shape ...int64) *ast.Value {
	t.Helper()
	ty, err := f.ctx.BlockOf(elem, ir.Shape(shape))
	if err != nil {
		t.Fatal(err)
	}
	return f.value(ty)
}

// insts returns the instructions emitted so far.
func (f *fixture) insts() []ir.Instruction {
	return f.entry.Instructions()
}

// last returns the last emitted instruction.
func (f *fixture) last(t *testing.T) ir.Instruction {
	t.Helper()
	insts := f.insts()
	if len(insts) == 0 {
		t.Fatal("no instruction emitted")
	}
	return insts[len(insts)-1]
}
