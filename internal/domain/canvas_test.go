package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_StrokeLifecycle(t *testing.T) {
	var c Canvas

	require.NoError(t, c.Begin(Point{X: 0, Y: 0}))
	assert.True(t, c.Drawing())
	assert.ErrorIs(t, c.Begin(Point{X: 9, Y: 9}), ErrAlreadyDrawing)

	require.NoError(t, c.Extend(Point{X: 1, Y: 1}))
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, c.InProgress())

	points, ok, err := c.End()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, points)
	assert.False(t, c.Drawing())
	assert.Nil(t, c.InProgress())
}

func TestCanvas_ShortGestureDiscarded(t *testing.T) {
	var c Canvas
	require.NoError(t, c.Begin(Point{X: 4, Y: 4}))

	points, ok, err := c.End()

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, points)
	assert.False(t, c.Drawing())
	assert.Zero(t, c.Len())
}

func TestCanvas_ExtendAndEndWithoutStroke(t *testing.T) {
	var c Canvas

	assert.ErrorIs(t, c.Extend(Point{}), ErrNotDrawing)
	_, _, err := c.End()
	assert.ErrorIs(t, err, ErrNotDrawing)
}

func TestCanvas_UndoOnce(t *testing.T) {
	var c Canvas
	_, err := c.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.False(t, c.UndoUsed())

	c.Commit(Stroke{ID: "a"})
	c.Commit(Stroke{ID: "b"})

	last, err := c.Undo()
	require.NoError(t, err)
	assert.Equal(t, "b", last.ID)
	assert.Equal(t, 1, c.Len())

	_, err = c.Undo()
	assert.ErrorIs(t, err, ErrUndoUsed)
	assert.Equal(t, 1, c.Len())
}

func TestCanvas_StrokesIsACopy(t *testing.T) {
	var c Canvas
	c.Commit(Stroke{ID: "a", Points: []Point{{1, 1}, {2, 2}}})

	strokes := c.Strokes()
	strokes[0].Points[0] = Point{X: 99, Y: 99}

	assert.Equal(t, Point{X: 1, Y: 1}, c.Strokes()[0].Points[0])
}

func TestStrokeID(t *testing.T) {
	assert.Equal(t, "p-3-7", StrokeID("p-3", 7))
}
