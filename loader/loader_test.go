package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeList(t *testing.T) {
	t.Run("ParsesEdges", func(t *testing.T) {
		in := "# triangle plus tail\n1 2 3\n\n3 4\n"

		edges, err := EdgeList(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, [][]int64{{1, 2, 3}, {3, 4}}, edges)
	})

	t.Run("Empty", func(t *testing.T) {
		edges, err := EdgeList(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("RejectsSingleton", func(t *testing.T) {
		_, err := EdgeList(strings.NewReader("1 2\n7\n"))
		var pe *ErrParse
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Line)
		assert.Equal(t, "7", pe.Token)
	})

	t.Run("RejectsNonInteger", func(t *testing.T) {
		_, err := EdgeList(strings.NewReader("1 two\n"))
		var pe *ErrParse
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Line)
		assert.Equal(t, "two", pe.Token)
		assert.Error(t, errors.Unwrap(pe))
	})
}

func TestSimplices(t *testing.T) {
	t.Run("ParsesStream", func(t *testing.T) {
		nverts := "3\n2\n"
		ids := "1\n2\n3\n3\n4\n"

		edges, err := Simplices(strings.NewReader(nverts), strings.NewReader(ids))
		require.NoError(t, err)
		assert.Equal(t, [][]int64{{1, 2, 3}, {3, 4}}, edges)
	})

	t.Run("SkipsComments", func(t *testing.T) {
		nverts := "# sizes\n2\n"
		ids := "# members\n5\n6\n"

		edges, err := Simplices(strings.NewReader(nverts), strings.NewReader(ids))
		require.NoError(t, err)
		assert.Equal(t, [][]int64{{5, 6}}, edges)
	})

	t.Run("RejectsSizeBelowTwo", func(t *testing.T) {
		_, err := Simplices(strings.NewReader("1\n"), strings.NewReader("9\n"))
		var pe *ErrParse
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "1", pe.Token)
	})

	t.Run("RejectsShortStream", func(t *testing.T) {
		_, err := Simplices(strings.NewReader("3\n"), strings.NewReader("1\n2\n"))
		var pe *ErrParse
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Line)
	})
}
