package state

import "fmt"

// SignalKind tells the event loop what a Signal asks for.
type SignalKind uint8

const (
	// SignalRedraw asks for a new frame.
	SignalRedraw SignalKind = iota
	// SignalSharedUpdated reports that the cell at Signal.Addr was written.
	SignalSharedUpdated
)

func (k SignalKind) String() string {
	switch k {
	case SignalRedraw:
		return "Redraw"
	case SignalSharedUpdated:
		return "SharedUpdated"
	default:
		return fmt.Sprintf("SignalKind(%d)", uint8(k))
	}
}

// Signal is a one-shot notification consumed by the event loop.
// Addr is only meaningful for SignalSharedUpdated.
type Signal struct {
	Kind SignalKind
	Addr Address
}

// Redraw returns a redraw request.
func Redraw() Signal { return Signal{Kind: SignalRedraw} }

// SharedUpdated returns the invalidation signal for addr.
func SharedUpdated(addr Address) Signal {
	return Signal{Kind: SignalSharedUpdated, Addr: addr}
}

func (s Signal) String() string {
	if s.Kind == SignalSharedUpdated {
		return fmt.Sprintf("SharedUpdated(%v)", s.Addr)
	}
	return s.Kind.String()
}
