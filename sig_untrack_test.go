package sig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		rt := New()
		log := []string{}

		count := NewSignal(rt, 0)

		rt.NewEffect(func() {
			c := Untrack(rt, count.Get)
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Set(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("tracks again afterwards", func(t *testing.T) {
		rt := New()
		runs := 0

		a := NewSignal(rt, 0)
		b := NewSignal(rt, 0)

		rt.NewEffect(func() {
			runs++
			Untrack(rt, a.Get)
			b.Get()
		})

		a.Set(1)
		b.Set(1)

		assert.Equal(t, 2, runs)
	})

	t.Run("keeps self exclusion", func(t *testing.T) {
		rt := New()
		runs := 0

		count := NewSignal(rt, 0)

		rt.NewEffect(func() {
			runs++
			count.Get()
			Untrack(rt, func() struct{} {
				count.Set(count.Get() + 1)
				return struct{}{}
			})
		})

		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, count.Get())
	})

	t.Run("effects created while untracked still track", func(t *testing.T) {
		rt := New()

		count := NewSignal(rt, 0)

		var inner EffectID
		rt.NewEffect(func() {
			Untrack(rt, func() EffectID {
				inner = rt.NewEffect(func() { count.Get() })
				return inner
			})
		})

		assert.Equal(t, []EffectID{inner}, rt.Subscribers(count.ID()))
	})
}
