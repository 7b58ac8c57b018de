package diffselect_test

import (
	"testing"

	"github.com/fwojciec/diffselect"
	"github.com/stretchr/testify/assert"
)

// rangeStub is a minimal Ranger for sort and patch tests.
type rangeStub struct {
	low, high diffselect.Position
}

func (r rangeStub) Range() (diffselect.Position, diffselect.Position) {
	return r.low, r.high
}

func TestSortAscending(t *testing.T) {
	t.Parallel()

	t.Run("orders by the low endpoint of each range", func(t *testing.T) {
		t.Parallel()

		sels := []rangeStub{
			{low: diffselect.HunkPos(1, 0), high: diffselect.HunkPos(1, 0)},
			{low: diffselect.HunkPos(0, 2), high: diffselect.HunkPos(0, 2)},
			{low: diffselect.HunkPos(0, 1), high: diffselect.HunkPos(0, 2)},
		}

		got := diffselect.SortAscending(sels)

		lows := make([]diffselect.Position, len(got))
		for i, s := range got {
			lows[i], _ = s.Range()
		}
		assert.Equal(t, []diffselect.Position{
			diffselect.HunkPos(0, 1),
			diffselect.HunkPos(0, 2),
			diffselect.HunkPos(1, 0),
		}, lows)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		t.Parallel()

		sels := []rangeStub{
			{low: diffselect.HunkPos(1, 0), high: diffselect.HunkPos(1, 0)},
			{low: diffselect.HunkPos(0, 0), high: diffselect.HunkPos(0, 0)},
		}

		_ = diffselect.SortAscending(sels)

		assert.Equal(t, diffselect.HunkPos(1, 0), sels[0].low, "input order should be unchanged")
	})

	t.Run("preserves registration order for equal lows", func(t *testing.T) {
		t.Parallel()

		a := rangeStub{low: diffselect.HunkPos(0, 0), high: diffselect.HunkPos(0, 1)}
		b := rangeStub{low: diffselect.HunkPos(0, 0), high: diffselect.HunkPos(0, 2)}

		got := diffselect.SortAscending([]rangeStub{a, b})

		assert.Equal(t, a, got[0], "stable sort should keep the first equal element first")
		assert.Equal(t, b, got[1])
	})
}

func TestSortDescending(t *testing.T) {
	t.Parallel()

	sels := []rangeStub{
		{low: diffselect.HunkPos(1, 0), high: diffselect.HunkPos(1, 0)},
		{low: diffselect.HunkPos(0, 2), high: diffselect.HunkPos(0, 2)},
		{low: diffselect.HunkPos(0, 1), high: diffselect.HunkPos(0, 2)},
	}

	got := diffselect.SortDescending(sels)

	lows := make([]diffselect.Position, len(got))
	for i, s := range got {
		lows[i], _ = s.Range()
	}
	assert.Equal(t, []diffselect.Position{
		diffselect.HunkPos(1, 0),
		diffselect.HunkPos(0, 2),
		diffselect.HunkPos(0, 1),
	}, lows)
}

func TestSort_WorksWithSelections(t *testing.T) {
	t.Parallel()

	d := navDiff()
	first := diffselect.New(staticProvider(d), diffselect.WithHead(diffselect.HunkPos(1, 0)))
	second := diffselect.New(staticProvider(d), diffselect.WithHead(diffselect.HunkPos(0, 0)))

	got := diffselect.SortAscending([]*diffselect.Selection{first, second})

	low, _ := got[0].Range()
	assert.Equal(t, diffselect.HunkPos(0, 0), low)
}
