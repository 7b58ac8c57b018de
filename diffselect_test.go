package diffselect_test

import (
	"testing"

	"github.com/fwojciec/diffselect"
	"github.com/stretchr/testify/assert"
)

func TestFileDiff_Stats(t *testing.T) {
	t.Parallel()

	t.Run("counts added and deleted lines", func(t *testing.T) {
		t.Parallel()

		file := diffselect.FileDiff{
			Hunks: []diffselect.Hunk{
				{
					Lines: []diffselect.Line{
						{Type: diffselect.LineContext},
						{Type: diffselect.LineDeleted},
						{Type: diffselect.LineAdded},
						{Type: diffselect.LineAdded},
						{Type: diffselect.LineContext},
					},
				},
			},
		}

		added, deleted := file.Stats()

		assert.Equal(t, 2, added)
		assert.Equal(t, 1, deleted)
	})

	t.Run("counts across multiple hunks", func(t *testing.T) {
		t.Parallel()

		file := diffselect.FileDiff{
			Hunks: []diffselect.Hunk{
				{
					Lines: []diffselect.Line{
						{Type: diffselect.LineDeleted},
						{Type: diffselect.LineAdded},
					},
				},
				{
					Lines: []diffselect.Line{
						{Type: diffselect.LineDeleted},
						{Type: diffselect.LineDeleted},
						{Type: diffselect.LineAdded},
					},
				},
			},
		}

		added, deleted := file.Stats()

		assert.Equal(t, 2, added)
		assert.Equal(t, 3, deleted)
	})

	t.Run("returns zero for empty hunks", func(t *testing.T) {
		t.Parallel()

		file := diffselect.FileDiff{}

		added, deleted := file.Stats()

		assert.Equal(t, 0, added)
		assert.Equal(t, 0, deleted)
	})
}

func TestLineType_Changed(t *testing.T) {
	t.Parallel()

	assert.True(t, diffselect.LineAdded.Changed())
	assert.True(t, diffselect.LineDeleted.Changed())
	assert.False(t, diffselect.LineContext.Changed())
}

func TestProviderFunc(t *testing.T) {
	t.Parallel()

	d := &diffselect.Diff{}
	p := diffselect.ProviderFunc(func() *diffselect.Diff { return d })

	assert.Same(t, d, p.Diff())
}
