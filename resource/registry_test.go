package resource

import (
	"sync"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnRegistryEvent(e Event) {
	o.events = append(o.events, e)
}

func TestRegistry_Basic(t *testing.T) {
	reg := NewRegistry[string](KindProgram)

	h := reg.Register("prog")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := reg.Get(h)
	if !ok || val != "prog" {
		t.Fatalf("Get = %q, %v", val, ok)
	}

	val, ok = reg.Unregister(h)
	if !ok || val != "prog" {
		t.Fatalf("Unregister = %q, %v", val, ok)
	}

	if _, ok := reg.Get(h); ok {
		t.Fatal("Expected Get to fail after Unregister")
	}
	if _, ok := reg.Unregister(h); ok {
		t.Fatal("Expected second Unregister to fail")
	}
	if !reg.IsEmpty() {
		t.Fatal("Expected empty registry")
	}
}

func TestRegistry_InvalidHandles(t *testing.T) {
	reg := NewRegistry[int](KindEvent)

	if _, ok := reg.Get(0); ok {
		t.Error("handle 0 must be invalid")
	}
	if _, ok := reg.Get(99); ok {
		t.Error("out of range handle must be invalid")
	}
	if _, ok := reg.Unregister(0); ok {
		t.Error("Unregister(0) must fail")
	}
}

func TestRegistry_HandleReuse(t *testing.T) {
	reg := NewRegistry[int](KindMem)

	h1 := reg.Register(1)
	h2 := reg.Register(2)
	reg.Unregister(h1)

	h3 := reg.Register(3)
	if h3 != h1 {
		t.Fatalf("Expected freed handle %d to be reused, got %d", h1, h3)
	}
	if v, _ := reg.Get(h2); v != 2 {
		t.Fatalf("Get(h2) = %d", v)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
}

func TestRegistry_SnapshotIsStable(t *testing.T) {
	reg := NewRegistry[int](KindKernel)
	handles := []Handle{reg.Register(10), reg.Register(20), reg.Register(30)}

	snap := reg.Snapshot()

	for _, h := range handles {
		reg.Unregister(h)
	}
	reg.Register(40)

	if len(snap) != 3 || snap[0] != 10 || snap[1] != 20 || snap[2] != 30 {
		t.Fatalf("Snapshot = %v, want [10 20 30]", snap)
	}
}

func TestRegistry_Each(t *testing.T) {
	reg := NewRegistry[string](KindSampler)
	reg.Register("a")
	reg.Register("b")
	reg.Register("c")

	var seen []string
	reg.Each(func(h Handle, v string) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("Each visited %v", seen)
	}
}

func TestRegistry_Observer(t *testing.T) {
	reg := NewRegistry[string](KindCommandQueue)
	obs := &testObserver{}
	reg.Subscribe(obs)

	h := reg.Register("q")
	if len(obs.events) != 1 || obs.events[0].Type != EventRegistered {
		t.Fatalf("events = %+v", obs.events)
	}
	if obs.events[0].Handle != h || obs.events[0].Kind != KindCommandQueue {
		t.Fatal("Wrong handle or kind in event")
	}

	reg.Unregister(h)
	if len(obs.events) != 2 || obs.events[1].Type != EventUnregistered {
		t.Fatalf("events = %+v", obs.events)
	}

	reg.Unsubscribe(obs)
	reg.Register("q2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry[int](KindEvent)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h := reg.Register(n*1000 + j)
				reg.Snapshot()
				reg.Unregister(h)
			}
		}(i)
	}
	wg.Wait()

	if reg.Len() != 0 {
		t.Fatalf("Len = %d, want 0", reg.Len())
	}
}

func TestKind_String(t *testing.T) {
	if KindCommandQueue.String() != "command-queue" {
		t.Errorf("String = %q", KindCommandQueue.String())
	}
	if Kind(200).String() != "unknown" || Kind(200).Valid() {
		t.Error("out of range kind must be unknown")
	}
	if len(Kinds()) != int(kindCount) {
		t.Errorf("Kinds() = %v", Kinds())
	}
}
