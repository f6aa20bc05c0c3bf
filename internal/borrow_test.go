package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	t.Run("shared borrows coexist", func(t *testing.T) {
		g := NewGuard("test")

		release1 := g.Borrow()
		release2 := g.Borrow()
		assert.True(t, g.Borrowed())

		release1()
		release2()
		assert.False(t, g.Borrowed())
	})

	t.Run("exclusive excludes shared", func(t *testing.T) {
		g := NewGuard("test")

		release := g.BorrowMut()
		assert.PanicsWithError(t, "sig: borrow conflict: test is already mutably borrowed", func() { g.Borrow() })
		assert.PanicsWithError(t, "sig: borrow conflict: test is already mutably borrowed", func() { g.BorrowMut() })

		release()
		assert.NotPanics(t, func() { g.Borrow()() })
	})

	t.Run("shared excludes exclusive", func(t *testing.T) {
		g := NewGuard("test")

		release := g.Borrow()
		assert.PanicsWithError(t, "sig: borrow conflict: test is already borrowed", func() { g.BorrowMut() })

		release()
		assert.NotPanics(t, func() { g.BorrowMut()() })
	})
}
