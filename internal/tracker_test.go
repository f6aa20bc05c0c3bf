package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	t.Run("nested runs restore the outer effect", func(t *testing.T) {
		tr := NewTracker()
		log := []EffectID{}

		record := func() {
			id, ok := tr.Tracking()
			assert.True(t, ok)
			log = append(log, id)
		}

		tr.RunWithEffect(1, func() {
			record()
			tr.RunWithEffect(2, func() {
				record()
				tr.RunWithEffect(3, record)
				record()
			})
			record()
		})

		assert.Equal(t, []EffectID{1, 2, 3, 2, 1}, log)
		assert.Equal(t, 0, tr.Depth())
	})

	t.Run("untracked keeps the running effect", func(t *testing.T) {
		tr := NewTracker()

		tr.RunWithEffect(4, func() {
			tr.RunUntracked(func() {
				_, tracking := tr.Tracking()
				assert.False(t, tracking)

				running, ok := tr.Running()
				assert.True(t, ok)
				assert.Equal(t, EffectID(4), running)
			})

			_, tracking := tr.Tracking()
			assert.True(t, tracking)
		})
	})

	t.Run("untracked outside effects", func(t *testing.T) {
		tr := NewTracker()

		tr.RunUntracked(func() {
			_, ok := tr.Running()
			assert.False(t, ok)
		})
	})

	t.Run("unwinds on panic", func(t *testing.T) {
		tr := NewTracker()

		assert.Panics(t, func() {
			tr.RunWithEffect(1, func() {
				tr.RunWithEffect(2, func() { panic("boom") })
			})
		})

		_, ok := tr.Running()
		assert.False(t, ok)
		assert.Equal(t, 0, tr.Depth())
	})
}
