package builtin_test

import (
	"testing"

	"github.com/fwojciec/anvil/builtin"
	"github.com/stretchr/testify/assert"
)

func TestFileLineTracker(t *testing.T) {
	t.Parallel()

	t.Run("first write attributes existing lines to the user", func(t *testing.T) {
		t.Parallel()
		tr := builtin.NewFileLineTracker()
		assert.True(t, tr.IsFirstWrite)

		tr.RecordWrite(10, 14)

		assert.False(t, tr.IsFirstWrite)
		assert.Equal(t, 0, tr.PrevWriteLines)
		assert.Equal(t, 10, tr.BeforeWriteLines)
		assert.Equal(t, 14, tr.AfterWriteLines)
		assert.Equal(t, 4, tr.LinesAddedByAgent)
		assert.Equal(t, 0, tr.LinesRemovedByAgent)
		assert.Equal(t, 10, tr.LinesByUser())
		assert.Equal(t, 4, tr.LinesByAgent())
	})

	t.Run("later writes roll the previous after-count forward", func(t *testing.T) {
		t.Parallel()
		tr := builtin.NewFileLineTracker()
		tr.RecordWrite(0, 10)

		// The user added 5 lines between writes; the agent then removed 3.
		tr.RecordWrite(15, 12)

		assert.Equal(t, 10, tr.PrevWriteLines)
		assert.Equal(t, 15, tr.BeforeWriteLines)
		assert.Equal(t, 12, tr.AfterWriteLines)
		assert.Equal(t, 0, tr.LinesAddedByAgent)
		assert.Equal(t, 3, tr.LinesRemovedByAgent)
		assert.Equal(t, 5, tr.LinesByUser())
		assert.Equal(t, 3, tr.LinesByAgent())
	})

	t.Run("user removals yield a negative user delta", func(t *testing.T) {
		t.Parallel()
		tr := builtin.NewFileLineTracker()
		tr.RecordWrite(0, 10)
		tr.RecordWrite(6, 8)

		assert.Equal(t, -4, tr.LinesByUser())
	})
}

func TestSessionState(t *testing.T) {
	t.Parallel()

	s := builtin.NewSessionState()
	a := s.Tracker("/tmp/a.txt")
	b := s.Tracker("/tmp/b.txt")

	assert.NotSame(t, a, b)
	assert.Same(t, a, s.Tracker("/tmp/a.txt"))
}
