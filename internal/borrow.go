package internal

import "fmt"

// Guard is a runtime-checked borrow flag for one container.
// Any number of shared borrows may coexist, an exclusive borrow excludes everything else.
// Conflicts panic with ErrBorrowConflict instead of letting aliased access through.
type Guard struct {
	name string

	shared    int
	exclusive bool
}

func NewGuard(name string) Guard {
	return Guard{name: name}
}

// Borrow takes a shared borrow and returns its release func.
//
//	defer g.Borrow()()
func (g *Guard) Borrow() func() {
	if g.exclusive {
		panic(fmt.Errorf("%w: %s is already mutably borrowed", ErrBorrowConflict, g.name))
	}

	g.shared++
	return func() { g.shared-- }
}

// BorrowMut takes an exclusive borrow and returns its release func.
func (g *Guard) BorrowMut() func() {
	if g.exclusive {
		panic(fmt.Errorf("%w: %s is already mutably borrowed", ErrBorrowConflict, g.name))
	}
	if g.shared > 0 {
		panic(fmt.Errorf("%w: %s is already borrowed", ErrBorrowConflict, g.name))
	}

	g.exclusive = true
	return func() { g.exclusive = false }
}

// Borrowed reports whether any borrow is outstanding.
func (g *Guard) Borrowed() bool {
	return g.exclusive || g.shared > 0
}
