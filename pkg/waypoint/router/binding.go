package router

// Binding is a get/set accessor pair into a single optional destination slot.
//
// A child router receives a Binding to the slot its parent presented it from,
// which lets the child clear itself without holding the parent.
type Binding[D any] struct {
	get func() (D, bool)
	set func(D, bool)
}

// NewBinding creates a Binding from a getter and a setter.
// The setter receives present=false when the slot is being cleared.
func NewBinding[D any](get func() (D, bool), set func(value D, present bool)) Binding[D] {
	return Binding[D]{get: get, set: set}
}

// Constant returns a Binding that always reads as empty and ignores writes.
// It is the binding of a root router, which has no parent slot to clear.
func Constant[D any]() Binding[D] {
	return Binding[D]{}
}

// Get returns the slot value and whether it is present.
func (b Binding[D]) Get() (D, bool) {
	if b.get == nil {
		var zero D
		return zero, false
	}
	return b.get()
}

// Set stores value in the slot.
func (b Binding[D]) Set(value D) {
	if b.set != nil {
		b.set(value, true)
	}
}

// Clear empties the slot.
func (b Binding[D]) Clear() {
	if b.set != nil {
		var zero D
		b.set(zero, false)
	}
}

// IsConstant reports whether the binding is backed by no slot at all.
func (b Binding[D]) IsConstant() bool {
	return b.get == nil && b.set == nil
}
