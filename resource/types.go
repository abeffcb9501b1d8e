package resource

// Handle identifies an entry in a Registry.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Kind identifies the kind of a native object.
type Kind uint8

const (
	KindDevice Kind = iota
	KindSubDevice
	KindContext
	KindCommandQueue
	KindMem
	KindSampler
	KindProgram
	KindKernel
	KindEvent

	kindCount
)

var kindNames = [kindCount]string{
	KindDevice:       "device",
	KindSubDevice:    "sub-device",
	KindContext:      "context",
	KindCommandQueue: "command-queue",
	KindMem:          "mem",
	KindSampler:      "sampler",
	KindProgram:      "program",
	KindKernel:       "kernel",
	KindEvent:        "event",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// EventType is the type of a registry lifecycle notification.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventUnregistered
)

// Event represents a registry lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about registry lifecycle events.
type Observer interface {
	OnRegistryEvent(Event)
}
