package resource

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/cl-interop/errors"
)

func TestObject_Lifecycle(t *testing.T) {
	ctx := New(KindContext)
	if ctx.ReferenceCount() != 1 || !ctx.IsValid() {
		t.Fatal("new object must be valid with one reference")
	}

	prog, err := ctx.NewChild(KindProgram)
	if err != nil {
		t.Fatal(err)
	}
	if prog.Parent() != ctx || prog.Kind() != KindProgram || prog.Handle() == 0 {
		t.Fatalf("bad child linkage: %+v", prog)
	}
	if got := ctx.Children(KindProgram); len(got) != 1 || got[0] != prog {
		t.Fatalf("Children = %v", got)
	}

	if err := prog.Retain(); err != nil {
		t.Fatal(err)
	}
	if err := prog.Release(); err != nil {
		t.Fatal(err)
	}
	if !prog.IsValid() || len(ctx.Children(KindProgram)) != 1 {
		t.Fatal("object must stay valid while referenced")
	}

	if err := prog.Release(); err != nil {
		t.Fatal(err)
	}
	if prog.IsValid() {
		t.Fatal("object must be invalid at zero references")
	}
	if len(ctx.Children(KindProgram)) != 0 {
		t.Fatal("released child must leave the parent's registry")
	}
}

func TestObject_ReleaseInvalid(t *testing.T) {
	ev := New(KindEvent)
	if err := ev.Release(); err != nil {
		t.Fatal(err)
	}

	invalid := &errors.Error{Phase: errors.PhaseRelease, Kind: errors.KindInvalidObject}
	if err := ev.Release(); !stderrors.Is(err, invalid) {
		t.Fatalf("second Release: err = %v", err)
	}
	if err := ev.Retain(); !stderrors.Is(err, invalid) {
		t.Fatalf("Retain after release: err = %v", err)
	}
	if _, err := ev.NewChild(KindEvent); !stderrors.Is(err, invalid) {
		t.Fatalf("NewChild on released parent: err = %v", err)
	}
}

func TestObject_ChildrenEmpty(t *testing.T) {
	q := New(KindCommandQueue)
	if got := q.Children(KindEvent); len(got) != 0 {
		t.Fatalf("Children = %v, want empty", got)
	}
	if !q.Registry(KindEvent).IsEmpty() {
		t.Fatal("fresh registry must be empty")
	}
}
