package state

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/btree"
)

// Address identifies a shared cell for its whole lifetime.
// Addresses are totally ordered and never reused within a process.
type Address uint64

var lastAddress atomic.Uint64

func newAddress() Address {
	return Address(lastAddress.Add(1))
}

// String formats the address like a heap pointer.
func (a Address) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

// btreeDegree keeps nodes small; address sets rarely exceed a few dozen items.
const btreeDegree = 8

// AddressSet is an ordered set of addresses.
//
// The zero value is an empty set ready for reads; Add allocates on demand.
// Copies share storage, so a set handed to InvalidateCaches must not be
// modified by the callee.
type AddressSet struct {
	tree *btree.BTreeG[Address]
}

// NewAddressSet returns a set holding addrs.
func NewAddressSet(addrs ...Address) AddressSet {
	var s AddressSet
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

// Add inserts a and reports whether it was not already present.
func (s *AddressSet) Add(a Address) bool {
	if s.tree == nil {
		s.tree = btree.NewOrderedG[Address](btreeDegree)
	}
	_, replaced := s.tree.ReplaceOrInsert(a)
	return !replaced
}

// Has reports whether a is in the set.
func (s AddressSet) Has(a Address) bool {
	return s.tree != nil && s.tree.Has(a)
}

// Len returns the number of addresses.
func (s AddressSet) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Empty reports whether the set holds no address.
func (s AddressSet) Empty() bool { return s.Len() == 0 }

// Each calls fn for every address in ascending order until fn returns false.
func (s AddressSet) Each(fn func(Address) bool) {
	if s.tree == nil {
		return
	}
	s.tree.Ascend(btree.ItemIteratorG[Address](fn))
}

// Intersects reports whether s and other share at least one address.
func (s AddressSet) Intersects(other AddressSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	found := false
	small.Each(func(a Address) bool {
		found = large.Has(a)
		return !found
	})
	return found
}

// Union adds every address of other to s.
func (s *AddressSet) Union(other AddressSet) {
	other.Each(func(a Address) bool {
		s.Add(a)
		return true
	})
}

// Slice returns the addresses in ascending order.
func (s AddressSet) Slice() []Address {
	out := make([]Address, 0, s.Len())
	s.Each(func(a Address) bool {
		out = append(out, a)
		return true
	})
	return out
}

func (s AddressSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, a := range s.Slice() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte('}')
	return b.String()
}
